package population

import "fmt"

// GenerateBinaryDistribution returns nPeople values in {0, 1}. Exactly
// floor(nPeople*percentage/100) of them are 0, at uniformly random positions.
func GenerateBinaryDistribution(rng Rand, nPeople, percentage int) ([]int, error) {
	if err := validatePopulationSize(nPeople); err != nil {
		return nil, err
	}
	if err := validatePercentage(percentage); err != nil {
		return nil, err
	}

	column := make([]int, nPeople)
	zeros := nPeople * percentage / 100
	for i := zeros; i < nPeople; i++ {
		column[i] = 1
	}
	rng.Shuffle(len(column), func(i, j int) {
		column[i], column[j] = column[j], column[i]
	})
	return column, nil
}

// GenerateGenderDistribution samples gender codes (0 = male, 1 = female).
// percentage is the share of males.
func GenerateGenderDistribution(rng Rand, nPeople, percentage int) ([]int, error) {
	return GenerateBinaryDistribution(rng, nPeople, percentage)
}

// GenerateDepressionDistribution samples the pre-existing depression flag.
// percentage is the share assigned 0.
func GenerateDepressionDistribution(rng Rand, nPeople, percentage int) ([]int, error) {
	return GenerateBinaryDistribution(rng, nPeople, percentage)
}

// GenerateBurnoutDistribution samples the pre-existing burnout flag.
// percentage is the share assigned 0.
func GenerateBurnoutDistribution(rng Rand, nPeople, percentage int) ([]int, error) {
	return GenerateBinaryDistribution(rng, nPeople, percentage)
}

// GenerateAddictionDistribution samples the pre-existing addiction flag.
// percentage is the share assigned 0.
func GenerateAddictionDistribution(rng Rand, nPeople, percentage int) ([]int, error) {
	return GenerateBinaryDistribution(rng, nPeople, percentage)
}

// GenerateChronicFatigueDistribution samples the pre-existing chronic fatigue
// flag. percentage is the share assigned 0.
func GenerateChronicFatigueDistribution(rng Rand, nPeople, percentage int) ([]int, error) {
	return GenerateBinaryDistribution(rng, nPeople, percentage)
}

// GenerateHadChildDistribution samples parenthood. percentage is the share
// assigned 0.
func GenerateHadChildDistribution(rng Rand, nPeople, percentage int) ([]int, error) {
	return GenerateBinaryDistribution(rng, nPeople, percentage)
}

// GenerateLivingWithChildrenDistribution samples whether a person lives with
// a child. percentage is the share assigned 0.
func GenerateLivingWithChildrenDistribution(rng Rand, nPeople, percentage int) ([]int, error) {
	return GenerateBinaryDistribution(rng, nPeople, percentage)
}

func validatePopulationSize(nPeople int) error {
	if nPeople <= 0 {
		return fmt.Errorf("%w: population size must be positive, got %d", ErrInvalidArgument, nPeople)
	}
	return nil
}

func validatePercentage(percentage int) error {
	if percentage < 0 || percentage > 100 {
		return fmt.Errorf("%w: percentage must be between 0 and 100, got %d", ErrInvalidArgument, percentage)
	}
	return nil
}
