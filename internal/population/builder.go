package population

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Builder synthesizes populations from a Profile.
//
// Columns are generated one feature at a time in a fixed order from a single
// random source, so the same seed and profile always produce the same agents.
// Columns are independent of each other.
type Builder struct {
	logger *zap.Logger
	rng    *rand.Rand
}

// NewBuilder creates a Builder. A nil logger is replaced by a no-op logger and
// a nil rng by a time-seeded source.
func NewBuilder(logger *zap.Logger, rng *rand.Rand) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	if rng == nil {
		rng = NewRand(0)
	}
	return &Builder{
		logger: logger.Named("population"),
		rng:    rng,
	}
}

// Build generates profile.Size agents. It returns no agents on error.
func (b *Builder) Build(profile Profile) ([]Agent, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()
	n := profile.Size

	gender, err := b.intColumn("gender", func() ([]int, error) {
		return GenerateGenderDistribution(b.rng, n, profile.GenderPct)
	})
	if err != nil {
		return nil, err
	}

	age, err := b.intColumn("age", func() ([]int, error) {
		a := profile.Age
		return GenerateAgeDistribution(b.rng, n, a.Groups, a.Start, a.Stop, a.Probabilities)
	})
	if err != nil {
		return nil, err
	}

	ew := profile.Education
	education, err := GenerateEducationalAttainmentDistribution(b.rng, n, ew.Low, ew.Medium, ew.High)
	if err != nil {
		return nil, fmt.Errorf("generating education: %w", err)
	}
	b.logger.Debug("Generated feature column", zap.String("feature", "education"), zap.Int("size", n))

	mw := profile.Employment
	employed, err := GenerateEmploymentDistribution(b.rng, n, mw.Yes, mw.NoSeeking, mw.NoOther)
	if err != nil {
		return nil, fmt.Errorf("generating employed: %w", err)
	}
	b.logger.Debug("Generated feature column", zap.String("feature", "employed"), zap.Int("size", n))

	pw := profile.Partnership
	partnership, err := GeneratePartnershipStatusDistribution(b.rng, n,
		pw.Single, pw.Married, pw.LiveInPartner, pw.InRelationshipNoCohabitation, pw.Other)
	if err != nil {
		return nil, fmt.Errorf("generating partnership_status: %w", err)
	}
	b.logger.Debug("Generated feature column", zap.String("feature", "partnership_status"), zap.Int("size", n))

	flagGenerators := map[string]func(Rand, int, int) ([]int, error){
		"pre_existing_depression":      GenerateDepressionDistribution,
		"pre_existing_burnout":         GenerateBurnoutDistribution,
		"pre_existing_addiction":       GenerateAddictionDistribution,
		"pre_existing_chronic_fatigue": GenerateChronicFatigueDistribution,
		"parenthood":                   GenerateHadChildDistribution,
		"living_with_child":            GenerateLivingWithChildrenDistribution,
	}
	flags := make(map[string][]int)
	for _, f := range profile.Flags.named() {
		gen, ok := flagGenerators[f.feature]
		if !ok {
			gen = GenerateBinaryDistribution
		}
		pct := f.percentage
		col, err := b.intColumn(f.feature, func() ([]int, error) {
			return gen(b.rng, n, pct)
		})
		if err != nil {
			return nil, err
		}
		flags[f.feature] = col
	}

	agents := make([]Agent, n)
	for i := range agents {
		id, err := uuid.NewRandomFromReader(b.rng)
		if err != nil {
			return nil, fmt.Errorf("generating name: %w", err)
		}
		flag := func(feature string) bool { return FlagFromColumn(flags[feature][i]) }
		agents[i] = NewAgent(NewFeatures(
			"agent-"+id.String(),
			Gender(gender[i]),
			age[i],
			education[i],
			employed[i],
			partnership[i],
			flag("pre_existing_depression"),
			flag("pre_existing_burnout"),
			flag("pre_existing_addiction"),
			flag("pre_existing_chronic_fatigue"),
			flag("parenthood"),
			flag("living_with_child"),
			flag("single_parent"),
			flag("housing_difficulties"),
			flag("finance_difficulties"),
			flag("pre_existing_health_issues"),
			flag("partner_difficulties"),
		))
	}

	b.logger.Info("Population generated",
		zap.Int("size", n),
		zap.Duration("duration", time.Since(start)))
	return agents, nil
}

func (b *Builder) intColumn(feature string, gen func() ([]int, error)) ([]int, error) {
	col, err := gen()
	if err != nil {
		return nil, fmt.Errorf("generating %s: %w", feature, err)
	}
	b.logger.Debug("Generated feature column", zap.String("feature", feature), zap.Int("size", len(col)))
	return col, nil
}
