package population

import "fmt"

// Profile holds every parameter needed to synthesize a population.
//
// Percentages follow the binary generator contract: they give the share of
// the population assigned 0, which for the health and family flags is the
// share without the condition. Categorical weights are relative.
type Profile struct {
	Size int
	// GenderPct is the share of males.
	GenderPct   int
	Age         AgeProfile
	Education   EducationWeights
	Employment  EmploymentWeights
	Partnership PartnershipWeights
	Flags       FlagProfile
}

// AgeProfile configures the age generator.
type AgeProfile struct {
	Groups        int
	Start         int
	Stop          int
	Probabilities []float64
}

// EducationWeights are the relative weights of each attainment level.
type EducationWeights struct {
	Low, Medium, High float64
}

// EmploymentWeights are the relative weights of each employment status.
type EmploymentWeights struct {
	Yes, NoSeeking, NoOther float64
}

// PartnershipWeights are the relative weights of each partnership status.
type PartnershipWeights struct {
	Single, Married, LiveInPartner, InRelationshipNoCohabitation, Other float64
}

// FlagProfile holds the share, in percent, of people without each condition.
type FlagProfile struct {
	Depression          int
	Burnout             int
	Addiction           int
	ChronicFatigue      int
	Parenthood          int
	LivingWithChild     int
	SingleParent        int
	HousingDifficulties int
	FinanceDifficulties int
	HealthIssues        int
	PartnerDifficulties int
}

// named returns the flag percentages keyed by feature name, in declaration order.
func (f FlagProfile) named() []namedPercentage {
	return []namedPercentage{
		{"pre_existing_depression", f.Depression},
		{"pre_existing_burnout", f.Burnout},
		{"pre_existing_addiction", f.Addiction},
		{"pre_existing_chronic_fatigue", f.ChronicFatigue},
		{"parenthood", f.Parenthood},
		{"living_with_child", f.LivingWithChild},
		{"single_parent", f.SingleParent},
		{"housing_difficulties", f.HousingDifficulties},
		{"finance_difficulties", f.FinanceDifficulties},
		{"pre_existing_health_issues", f.HealthIssues},
		{"partner_difficulties", f.PartnerDifficulties},
	}
}

type namedPercentage struct {
	feature    string
	percentage int
}

// AgeGroups returns the partition of the configured age range.
func (p Profile) AgeGroups() ([]AgeGroup, error) {
	return SplitRange(p.Age.Start, p.Age.Stop, p.Age.Groups)
}

// Validate checks every parameter up front so that a build either succeeds
// completely or does not start.
func (p Profile) Validate() error {
	if err := validatePopulationSize(p.Size); err != nil {
		return err
	}
	if err := validatePercentage(p.GenderPct); err != nil {
		return fmt.Errorf("gender: %w", err)
	}
	if _, err := p.AgeGroups(); err != nil {
		return fmt.Errorf("age: %w", err)
	}
	if _, err := validateProbabilities(p.Age.Probabilities, p.Age.Groups); err != nil {
		return fmt.Errorf("age: %w", err)
	}
	if _, err := cumulativeWeights([]float64{p.Education.Low, p.Education.Medium, p.Education.High}); err != nil {
		return fmt.Errorf("education: %w", err)
	}
	if _, err := cumulativeWeights([]float64{p.Employment.Yes, p.Employment.NoSeeking, p.Employment.NoOther}); err != nil {
		return fmt.Errorf("employed: %w", err)
	}
	pw := p.Partnership
	if _, err := cumulativeWeights([]float64{pw.Single, pw.Married, pw.LiveInPartner, pw.InRelationshipNoCohabitation, pw.Other}); err != nil {
		return fmt.Errorf("partnership_status: %w", err)
	}
	for _, f := range p.Flags.named() {
		if err := validatePercentage(f.percentage); err != nil {
			return fmt.Errorf("%s: %w", f.feature, err)
		}
	}
	return nil
}
