package population

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitRange(t *testing.T) {
	tests := []struct {
		name           string
		start, stop, k int
		want           []AgeGroup
	}{
		{"even split", 0, 10, 2, []AgeGroup{{0, 5}, {5, 10}}},
		{"remainder goes to leading groups", 0, 10, 3, []AgeGroup{{0, 4}, {4, 7}, {7, 10}}},
		{"single group", 18, 65, 1, []AgeGroup{{18, 65}}},
		{"one value per group", 20, 23, 3, []AgeGroup{{20, 21}, {21, 22}, {22, 23}}},
		{"adult ranges", 18, 90, 5, []AgeGroup{{18, 33}, {33, 48}, {48, 62}, {62, 76}, {76, 90}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitRange(tt.start, tt.stop, tt.k)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitRange_SizesDifferByAtMostOne(t *testing.T) {
	groups, err := SplitRange(0, 101, 7)
	require.NoError(t, err)

	minLen, maxLen := groups[0].Len(), groups[0].Len()
	for i, g := range groups {
		minLen = min(minLen, g.Len())
		maxLen = max(maxLen, g.Len())
		if i > 0 {
			assert.Equal(t, groups[i-1].Stop, g.Start, "groups must be contiguous")
		}
	}
	assert.LessOrEqual(t, maxLen-minLen, 1)
	assert.Equal(t, 0, groups[0].Start)
	assert.Equal(t, 101, groups[len(groups)-1].Stop)
}

func TestGenerateAgeDistribution_SmallScenario(t *testing.T) {
	ages, err := GenerateAgeDistribution(NewRand(5), 6, 2, 0, 10, []float64{0.5, 0.5})
	require.NoError(t, err)
	require.Len(t, ages, 6)
	for _, a := range ages {
		assert.GreaterOrEqual(t, a, 0)
		assert.Less(t, a, 10)
	}
}

func TestGenerateAgeDistribution_Converges(t *testing.T) {
	prob := []float64{0.1, 0.2, 0.3, 0.4}
	ages, err := GenerateAgeDistribution(NewRand(21), 100000, 4, 18, 98, prob)
	require.NoError(t, err)

	groups, err := SplitRange(18, 98, 4)
	require.NoError(t, err)

	counts := make([]int, len(groups))
	for _, a := range ages {
		require.True(t, a >= 18 && a < 98, "age %d out of range", a)
		for i, g := range groups {
			if g.Contains(a) {
				counts[i]++
			}
		}
	}
	for i, p := range prob {
		assert.InDelta(t, p, float64(counts[i])/float64(len(ages)), 0.02, "group %s", groups[i])
	}
}

func TestGenerateAgeDistribution_UniformWithinGroup(t *testing.T) {
	ages, err := GenerateAgeDistribution(NewRand(8), 50000, 1, 0, 5, []float64{1})
	require.NoError(t, err)

	got := shares(ages)
	for age := 0; age < 5; age++ {
		assert.InDelta(t, 0.2, got[age], 0.02, "age %d", age)
	}
}

func TestGenerateAgeDistribution_PicksFromSelectedGroup(t *testing.T) {
	// Float64 near 1 selects the last group; Intn(3) returns 2.
	ages, err := GenerateAgeDistribution(fixedRand{float: 0.99, intn: 2}, 3, 3, 0, 9, []float64{0.2, 0.3, 0.5})
	require.NoError(t, err)
	assert.Equal(t, []int{8, 8, 8}, ages)
}

func TestGenerateAgeDistribution_InvalidArguments(t *testing.T) {
	tests := []struct {
		name            string
		nPeople, groups int
		start, stop     int
		prob            []float64
		wantMsg         string
	}{
		{"probability count mismatch", 10, 3, 0, 90, []float64{0.5, 0.5}, "got 2 probabilities for 3 age groups"},
		{"probabilities do not sum to one", 10, 2, 0, 90, []float64{0.5, 0.6}, "must sum to 1"},
		{"negative probability", 10, 2, 0, 90, []float64{1.5, -0.5}, "finite non-negative"},
		{"zero groups", 10, 0, 0, 90, nil, "number of age groups must be positive"},
		{"empty range", 10, 1, 50, 50, []float64{1}, "is empty"},
		{"inverted range", 10, 1, 60, 50, []float64{1}, "is empty"},
		{"more groups than ages", 10, 4, 0, 3, []float64{0.25, 0.25, 0.25, 0.25}, "non-empty groups"},
		{"zero population", 0, 1, 0, 10, []float64{1}, "population size must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ages, err := GenerateAgeDistribution(NewRand(1), tt.nPeople, tt.groups, tt.start, tt.stop, tt.prob)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Nil(t, ages)
		})
	}
}
