// File: cmd/generate.go
package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/smallworld/api/schemas"
	"github.com/xkilldash9x/smallworld/internal/config"
	"github.com/xkilldash9x/smallworld/internal/observability"
	"github.com/xkilldash9x/smallworld/internal/population"
)

const (
	formatJSONL   = "jsonl"
	formatSummary = "summary"
)

// populationFlags are the profile overrides shared by generate and describe.
type populationFlags struct {
	size int
	seed int64
}

func (f *populationFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.size, "size", "n", 0, "number of agents to generate (overrides population.size)")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "random seed, 0 for a time-based seed (overrides population.seed)")
}

// apply copies explicitly set flags onto cfg.
func (f *populationFlags) apply(cmd *cobra.Command, cfg config.Interface) {
	if cmd.Flags().Changed("size") {
		cfg.SetPopulationSize(f.size)
	}
	if cmd.Flags().Changed("seed") {
		cfg.SetPopulationSeed(f.seed)
	}
}

func newGenerateCmd() *cobra.Command {
	var flags populationFlags
	var format string

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic population",
		Long: `Builds a population from the configured profile and writes it to stdout,
either as JSON Lines (one agent per line) or as per-agent summaries.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := observability.GetLogger()

			cfg, err := getConfigFromContext(ctx)
			if err != nil {
				return err
			}
			flags.apply(cmd, cfg)

			return runGenerate(ctx, logger, cfg, cmd.OutOrStdout(), format)
		},
	}

	flags.register(generateCmd)
	generateCmd.Flags().StringVarP(&format, "format", "f", formatJSONL, "output format: 'jsonl' or 'summary'")
	return generateCmd
}

// runGenerate contains the core, testable logic of the generate command.
func runGenerate(ctx context.Context, logger *zap.Logger, cfg config.Interface, w io.Writer, format string) error {
	if format != formatJSONL && format != formatSummary {
		return fmt.Errorf("unsupported output format %q (want %q or %q)", format, formatJSONL, formatSummary)
	}

	agents, err := buildPopulation(ctx, logger, cfg)
	if err != nil {
		return err
	}

	if format == formatSummary {
		return writeSummaries(w, agents)
	}
	if err := schemas.EncodeJSONLines(w, schemas.NewAgentRecords(agents)); err != nil {
		return fmt.Errorf("failed to write population: %w", err)
	}
	return nil
}

// buildPopulation runs the builder over the configured profile.
func buildPopulation(ctx context.Context, logger *zap.Logger, cfg config.Interface) ([]population.Agent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	popCfg := cfg.Population()
	builder := population.NewBuilder(logger, population.NewRand(popCfg.Seed))
	agents, err := builder.Build(popCfg.Profile())
	if err != nil {
		return nil, fmt.Errorf("failed to build population: %w", err)
	}
	return agents, nil
}

// writeSummaries prints each agent's summary, separated by blank lines.
func writeSummaries(w io.Writer, agents []population.Agent) error {
	for i, a := range agents {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := a.WriteSummary(w); err != nil {
			return fmt.Errorf("failed to write summary of %s: %w", a.Features.Name, err)
		}
	}
	return nil
}
