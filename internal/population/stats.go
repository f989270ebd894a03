package population

import (
	"fmt"
	"sort"
)

// Report summarizes the observed feature frequencies of a population.
type Report struct {
	Size        int
	FemaleShare float64

	AgeMin, AgeMax int
	AgeMean        float64
	// AgeGroupShares is indexed like the age groups passed to Describe.
	AgeGroups      []AgeGroup
	AgeGroupShares []float64

	Education   map[Education]float64
	Employment  map[Employment]float64
	Partnership map[Partnership]float64
	// Flags maps a boolean feature name to the share of agents where it is true.
	Flags map[string]float64
}

// Describe computes observed frequencies. ageGroups may be nil, in which case
// no per-group shares are reported.
func Describe(agents []Agent, ageGroups []AgeGroup) Report {
	r := Report{
		Size:           len(agents),
		AgeGroups:      ageGroups,
		AgeGroupShares: make([]float64, len(ageGroups)),
		Education:      make(map[Education]float64),
		Employment:     make(map[Employment]float64),
		Partnership:    make(map[Partnership]float64),
		Flags:          make(map[string]float64),
	}
	if len(agents) == 0 {
		return r
	}

	n := float64(len(agents))
	unit := 1 / n
	ageSum := 0
	r.AgeMin, r.AgeMax = agents[0].Features.Age, agents[0].Features.Age
	for _, a := range agents {
		f := a.Features
		if f.Gender == Female {
			r.FemaleShare += unit
		}

		ageSum += f.Age
		r.AgeMin = min(r.AgeMin, f.Age)
		r.AgeMax = max(r.AgeMax, f.Age)
		for i, g := range ageGroups {
			if g.Contains(f.Age) {
				r.AgeGroupShares[i] += unit
				break
			}
		}

		r.Education[f.Education] += unit
		r.Employment[f.Employed] += unit
		r.Partnership[f.PartnershipStatus] += unit
		for name, set := range flagValues(f) {
			if set {
				r.Flags[name] += unit
			} else if _, ok := r.Flags[name]; !ok {
				r.Flags[name] = 0
			}
		}
	}
	r.AgeMean = float64(ageSum) / n
	return r
}

func flagValues(f Features) map[string]bool {
	return map[string]bool{
		"pre_existing_depression":      f.PreExistingDepression,
		"pre_existing_burnout":         f.PreExistingBurnout,
		"pre_existing_addiction":       f.PreExistingAddiction,
		"pre_existing_chronic_fatigue": f.PreExistingChronicFatigue,
		"parenthood":                   f.Parenthood,
		"living_with_child":            f.LivingWithChild,
		"single_parent":                f.SingleParent,
		"housing_difficulties":         f.HousingDifficulties,
		"finance_difficulties":         f.FinanceDifficulties,
		"pre_existing_health_issues":   f.PreExistingHealthIssues,
		"partner_difficulties":         f.PartnerDifficulties,
	}
}

// Lines renders the report as sorted "<key>: <value>" lines.
func (r Report) Lines() []string {
	lines := []string{
		fmt.Sprintf("size: %d", r.Size),
		fmt.Sprintf("female_share: %.4f", r.FemaleShare),
		fmt.Sprintf("age_min: %d", r.AgeMin),
		fmt.Sprintf("age_max: %d", r.AgeMax),
		fmt.Sprintf("age_mean: %.2f", r.AgeMean),
	}
	for i, g := range r.AgeGroups {
		lines = append(lines, fmt.Sprintf("age_group %s: %.4f", g, r.AgeGroupShares[i]))
	}
	lines = append(lines, shareLines("education", r.Education)...)
	lines = append(lines, shareLines("employed", r.Employment)...)
	lines = append(lines, shareLines("partnership_status", r.Partnership)...)
	lines = append(lines, shareLines("", r.Flags)...)
	return lines
}

func shareLines[K ~string](prefix string, shares map[K]float64) []string {
	keys := make([]string, 0, len(shares))
	for k := range shares {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		label := k
		if prefix != "" {
			label = prefix + " " + k
		}
		lines = append(lines, fmt.Sprintf("%s: %.4f", label, shares[K(k)]))
	}
	return lines
}
