package population

import (
	"fmt"
	"math"
)

// probabilityTolerance bounds how far age group probabilities may sum from 1.
const probabilityTolerance = 1e-8

// AgeGroup is the half-open age interval [Start, Stop).
type AgeGroup struct {
	Start int
	Stop  int
}

// Len returns the number of ages in the group.
func (g AgeGroup) Len() int { return g.Stop - g.Start }

// Contains reports whether age falls inside the group.
func (g AgeGroup) Contains(age int) bool { return age >= g.Start && age < g.Stop }

func (g AgeGroup) String() string { return fmt.Sprintf("[%d, %d)", g.Start, g.Stop) }

// SplitRange partitions [start, stop) into k contiguous groups whose sizes
// differ by at most one. The first (stop-start) mod k groups get the extra
// element.
func SplitRange(start, stop, k int) ([]AgeGroup, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: number of age groups must be positive, got %d", ErrInvalidArgument, k)
	}
	if stop <= start {
		return nil, fmt.Errorf("%w: age range [%d, %d) is empty", ErrInvalidArgument, start, stop)
	}
	span := stop - start
	if span < k {
		return nil, fmt.Errorf("%w: age range [%d, %d) cannot be split into %d non-empty groups", ErrInvalidArgument, start, stop, k)
	}

	size, extra := span/k, span%k
	groups := make([]AgeGroup, k)
	lo := start
	for i := range groups {
		hi := lo + size
		if i < extra {
			hi++
		}
		groups[i] = AgeGroup{Start: lo, Stop: hi}
		lo = hi
	}
	return groups, nil
}

// GenerateAgeDistribution returns nPeople ages in [start, stop). Each draw
// picks an age group with probability prob[i], then an age uniformly inside
// that group. prob must hold one probability per group and sum to 1; unlike
// the categorical generators it is not renormalized.
func GenerateAgeDistribution(rng Rand, nPeople, nAgeGroups, start, stop int, prob []float64) ([]int, error) {
	if err := validatePopulationSize(nPeople); err != nil {
		return nil, err
	}
	groups, err := SplitRange(start, stop, nAgeGroups)
	if err != nil {
		return nil, err
	}
	cumulative, err := validateProbabilities(prob, nAgeGroups)
	if err != nil {
		return nil, err
	}

	ages := make([]int, nPeople)
	for i := range ages {
		g := groups[weightedIndex(rng, cumulative)]
		ages[i] = g.Start + rng.Intn(g.Len())
	}
	return ages, nil
}

func validateProbabilities(prob []float64, nAgeGroups int) ([]float64, error) {
	if len(prob) != nAgeGroups {
		return nil, fmt.Errorf("%w: got %d probabilities for %d age groups", ErrInvalidArgument, len(prob), nAgeGroups)
	}
	cumulative, err := cumulativeWeights(prob)
	if err != nil {
		return nil, err
	}
	if sum := cumulative[len(cumulative)-1]; math.Abs(sum-1) > probabilityTolerance {
		return nil, fmt.Errorf("%w: age group probabilities must sum to 1, got %v", ErrInvalidArgument, sum)
	}
	return cumulative, nil
}
