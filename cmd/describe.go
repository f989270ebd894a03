// File: cmd/describe.go
package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/smallworld/internal/config"
	"github.com/xkilldash9x/smallworld/internal/observability"
	"github.com/xkilldash9x/smallworld/internal/population"
)

func newDescribeCmd() *cobra.Command {
	var flags populationFlags

	describeCmd := &cobra.Command{
		Use:   "describe",
		Short: "Generate a population and print its aggregate statistics",
		Long: `Builds a population from the configured profile and prints the realized
shares of every feature instead of the agents themselves. Useful for
checking a profile before generating records.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := observability.GetLogger()

			cfg, err := getConfigFromContext(ctx)
			if err != nil {
				return err
			}
			flags.apply(cmd, cfg)

			return runDescribe(ctx, logger, cfg, cmd.OutOrStdout())
		},
	}

	flags.register(describeCmd)
	return describeCmd
}

// runDescribe contains the core, testable logic of the describe command.
func runDescribe(ctx context.Context, logger *zap.Logger, cfg config.Interface, w io.Writer) error {
	agents, err := buildPopulation(ctx, logger, cfg)
	if err != nil {
		return err
	}

	groups, err := cfg.Population().Profile().AgeGroups()
	if err != nil {
		return fmt.Errorf("failed to compute age groups: %w", err)
	}

	report := population.Describe(agents, groups)
	for _, line := range report.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	logger.Debug("Population described", zap.Int("size", report.Size))
	return nil
}
