package population

import (
	"fmt"
	"math"
	"sort"
)

// GenerateCategoricalDistribution draws nPeople labels independently, with
// replacement. Weights are relative: they are normalized by their sum, so
// (5, 3, 2) and (0.5, 0.3, 0.2) are equivalent.
func GenerateCategoricalDistribution[T ~string](rng Rand, nPeople int, labels []T, weights []float64) ([]T, error) {
	if err := validatePopulationSize(nPeople); err != nil {
		return nil, err
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("%w: at least one category is required", ErrInvalidArgument)
	}
	if len(labels) != len(weights) {
		return nil, fmt.Errorf("%w: got %d weights for %d categories", ErrInvalidArgument, len(weights), len(labels))
	}

	cumulative, err := cumulativeWeights(weights)
	if err != nil {
		return nil, err
	}

	out := make([]T, nPeople)
	for i := range out {
		out[i] = labels[weightedIndex(rng, cumulative)]
	}
	return out, nil
}

// GenerateEducationalAttainmentDistribution samples Low/Medium/High with the
// given relative weights.
func GenerateEducationalAttainmentDistribution(rng Rand, nPeople int, low, medium, high float64) ([]Education, error) {
	return GenerateCategoricalDistribution(rng, nPeople,
		[]Education{EducationLow, EducationMedium, EducationHigh},
		[]float64{low, medium, high})
}

// GenerateEmploymentDistribution samples employment status with the given
// relative weights.
func GenerateEmploymentDistribution(rng Rand, nPeople int, yes, noSeeking, noOther float64) ([]Employment, error) {
	return GenerateCategoricalDistribution(rng, nPeople,
		[]Employment{EmploymentYes, EmploymentNoSeeking, EmploymentNoOther},
		[]float64{yes, noSeeking, noOther})
}

// GeneratePartnershipStatusDistribution samples partnership status with the
// given relative weights.
func GeneratePartnershipStatusDistribution(rng Rand, nPeople int, single, married, liveInPartner, inRelationshipNoCohabitation, other float64) ([]Partnership, error) {
	return GenerateCategoricalDistribution(rng, nPeople,
		[]Partnership{
			PartnershipSingle,
			PartnershipMarried,
			PartnershipLiveInPartner,
			PartnershipInRelationshipNoCohabitation,
			PartnershipOther,
		},
		[]float64{single, married, liveInPartner, inRelationshipNoCohabitation, other})
}

// cumulativeWeights returns the running sum of weights. Weights must be
// finite and non-negative with a positive total.
func cumulativeWeights(weights []float64) ([]float64, error) {
	cumulative := make([]float64, len(weights))
	total := 0.0
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return nil, fmt.Errorf("%w: weight %d must be a finite non-negative number, got %v", ErrInvalidArgument, i, w)
		}
		total += w
		cumulative[i] = total
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w: weights must not all be zero", ErrInvalidArgument)
	}
	if math.IsInf(total, 0) {
		return nil, fmt.Errorf("%w: weights overflow when summed", ErrInvalidArgument)
	}
	return cumulative, nil
}

// weightedIndex picks an index with probability proportional to its weight.
// Zero-weight entries share their cumulative value with a predecessor and are
// never selected, because the search returns the first bound above the target.
func weightedIndex(rng Rand, cumulative []float64) int {
	total := cumulative[len(cumulative)-1]
	target := rng.Float64() * total
	idx := sort.Search(len(cumulative), func(i int) bool { return cumulative[i] > target })
	// Float rounding can leave target equal to total.
	if idx == len(cumulative) {
		idx = len(cumulative) - 1
		for idx > 0 && cumulative[idx] == cumulative[idx-1] {
			idx--
		}
	}
	return idx
}
