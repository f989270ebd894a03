// File: internal/config/population_config.go
// This file defines the PopulationConfig struct, which holds every parameter
// of the synthetic population generators: the population size, the seed of
// the random source, and the probabilities behind each feature column.
//
// Binary feature percentages give the share of the population assigned 0
// (male for gender, "condition absent" for the health and family flags).
// Categorical weights are relative and need not sum to 1. Age group
// probabilities must sum to 1.
package config

import (
	"github.com/spf13/viper"
	"github.com/xkilldash9x/smallworld/internal/population"
)

// PopulationConfig configures population synthesis.
type PopulationConfig struct {
	Size int `mapstructure:"size" yaml:"size"`
	// Seed of the random source. Zero selects a time-based seed.
	Seed        int64                   `mapstructure:"seed" yaml:"seed"`
	GenderPct   int                     `mapstructure:"gender_pct" yaml:"gender_pct"`
	Age         AgeConfig               `mapstructure:"age" yaml:"age"`
	Education   EducationWeightsConfig  `mapstructure:"education" yaml:"education"`
	Employment  EmploymentWeightsConfig `mapstructure:"employment" yaml:"employment"`
	Partnership PartnershipConfig       `mapstructure:"partnership" yaml:"partnership"`
	Flags       FlagsConfig             `mapstructure:"flags" yaml:"flags"`
}

// AgeConfig configures the bucketed age generator.
type AgeConfig struct {
	Groups        int       `mapstructure:"groups" yaml:"groups"`
	Start         int       `mapstructure:"start" yaml:"start"`
	Stop          int       `mapstructure:"stop" yaml:"stop"`
	Probabilities []float64 `mapstructure:"probabilities" yaml:"probabilities"`
}

// EducationWeightsConfig holds relative weights per attainment level.
type EducationWeightsConfig struct {
	Low    float64 `mapstructure:"low" yaml:"low"`
	Medium float64 `mapstructure:"medium" yaml:"medium"`
	High   float64 `mapstructure:"high" yaml:"high"`
}

// EmploymentWeightsConfig holds relative weights per employment status.
type EmploymentWeightsConfig struct {
	Yes       float64 `mapstructure:"yes" yaml:"yes"`
	NoSeeking float64 `mapstructure:"no_seeking" yaml:"no_seeking"`
	NoOther   float64 `mapstructure:"no_other" yaml:"no_other"`
}

// PartnershipConfig holds relative weights per partnership status.
type PartnershipConfig struct {
	Single                       float64 `mapstructure:"single" yaml:"single"`
	Married                      float64 `mapstructure:"married" yaml:"married"`
	LiveInPartner                float64 `mapstructure:"live_in_partner" yaml:"live_in_partner"`
	InRelationshipNoCohabitation float64 `mapstructure:"in_relationship_no_cohabitation" yaml:"in_relationship_no_cohabitation"`
	Other                        float64 `mapstructure:"other" yaml:"other"`
}

// FlagsConfig holds, per binary feature, the percentage of people without it.
type FlagsConfig struct {
	Depression          int `mapstructure:"pre_existing_depression" yaml:"pre_existing_depression"`
	Burnout             int `mapstructure:"pre_existing_burnout" yaml:"pre_existing_burnout"`
	Addiction           int `mapstructure:"pre_existing_addiction" yaml:"pre_existing_addiction"`
	ChronicFatigue      int `mapstructure:"pre_existing_chronic_fatigue" yaml:"pre_existing_chronic_fatigue"`
	Parenthood          int `mapstructure:"parenthood" yaml:"parenthood"`
	LivingWithChild     int `mapstructure:"living_with_child" yaml:"living_with_child"`
	SingleParent        int `mapstructure:"single_parent" yaml:"single_parent"`
	HousingDifficulties int `mapstructure:"housing_difficulties" yaml:"housing_difficulties"`
	FinanceDifficulties int `mapstructure:"finance_difficulties" yaml:"finance_difficulties"`
	HealthIssues        int `mapstructure:"pre_existing_health_issues" yaml:"pre_existing_health_issues"`
	PartnerDifficulties int `mapstructure:"partner_difficulties" yaml:"partner_difficulties"`
}

// setPopulationDefaults registers the default population profile.
func setPopulationDefaults(v *viper.Viper) {
	v.SetDefault("population.size", 1000)
	v.SetDefault("population.seed", 0)
	v.SetDefault("population.gender_pct", 50)

	// -- Age: five adult groups over [18, 90) --
	v.SetDefault("population.age.groups", 5)
	v.SetDefault("population.age.start", 18)
	v.SetDefault("population.age.stop", 90)
	v.SetDefault("population.age.probabilities", []float64{0.22, 0.24, 0.22, 0.18, 0.14})

	// -- Categorical weights --
	v.SetDefault("population.education.low", 0.30)
	v.SetDefault("population.education.medium", 0.45)
	v.SetDefault("population.education.high", 0.25)

	v.SetDefault("population.employment.yes", 0.68)
	v.SetDefault("population.employment.no_seeking", 0.07)
	v.SetDefault("population.employment.no_other", 0.25)

	v.SetDefault("population.partnership.single", 0.35)
	v.SetDefault("population.partnership.married", 0.40)
	v.SetDefault("population.partnership.live_in_partner", 0.12)
	v.SetDefault("population.partnership.in_relationship_no_cohabitation", 0.08)
	v.SetDefault("population.partnership.other", 0.05)

	// -- Binary flags (share without the condition) --
	v.SetDefault("population.flags.pre_existing_depression", 92)
	v.SetDefault("population.flags.pre_existing_burnout", 88)
	v.SetDefault("population.flags.pre_existing_addiction", 95)
	v.SetDefault("population.flags.pre_existing_chronic_fatigue", 96)
	v.SetDefault("population.flags.parenthood", 45)
	v.SetDefault("population.flags.living_with_child", 62)
	v.SetDefault("population.flags.single_parent", 94)
	v.SetDefault("population.flags.housing_difficulties", 90)
	v.SetDefault("population.flags.finance_difficulties", 82)
	v.SetDefault("population.flags.pre_existing_health_issues", 70)
	v.SetDefault("population.flags.partner_difficulties", 88)
}

// Profile converts the configuration into a generator profile.
func (p PopulationConfig) Profile() population.Profile {
	return population.Profile{
		Size:      p.Size,
		GenderPct: p.GenderPct,
		Age: population.AgeProfile{
			Groups:        p.Age.Groups,
			Start:         p.Age.Start,
			Stop:          p.Age.Stop,
			Probabilities: p.Age.Probabilities,
		},
		Education: population.EducationWeights{
			Low:    p.Education.Low,
			Medium: p.Education.Medium,
			High:   p.Education.High,
		},
		Employment: population.EmploymentWeights{
			Yes:       p.Employment.Yes,
			NoSeeking: p.Employment.NoSeeking,
			NoOther:   p.Employment.NoOther,
		},
		Partnership: population.PartnershipWeights{
			Single:                       p.Partnership.Single,
			Married:                      p.Partnership.Married,
			LiveInPartner:                p.Partnership.LiveInPartner,
			InRelationshipNoCohabitation: p.Partnership.InRelationshipNoCohabitation,
			Other:                        p.Partnership.Other,
		},
		Flags: population.FlagProfile{
			Depression:          p.Flags.Depression,
			Burnout:             p.Flags.Burnout,
			Addiction:           p.Flags.Addiction,
			ChronicFatigue:      p.Flags.ChronicFatigue,
			Parenthood:          p.Flags.Parenthood,
			LivingWithChild:     p.Flags.LivingWithChild,
			SingleParent:        p.Flags.SingleParent,
			HousingDifficulties: p.Flags.HousingDifficulties,
			FinanceDifficulties: p.Flags.FinanceDifficulties,
			HealthIssues:        p.Flags.HealthIssues,
			PartnerDifficulties: p.Flags.PartnerDifficulties,
		},
	}
}

// Validate checks the profile with the generators' own argument rules.
func (p PopulationConfig) Validate() error {
	return p.Profile().Validate()
}
