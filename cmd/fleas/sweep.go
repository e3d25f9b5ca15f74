package main

import (
	"fmt"

	"fleas/internal/config"
	"fleas/internal/logging"
	"fleas/pkg/core"
	"fleas/pkg/sims/fleas"

	"github.com/spf13/cobra"
)

func newSweepCmd(flagged *config.Config) *cobra.Command {
	var from, to int
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Estimate empty squares for a range of ring counts",
		Long: `sweep prints one estimate per ring count in [from, to]. Every estimate
starts from a fresh random source seeded with --seed, so each line matches
a plain run with the same --steps. --to defaults to the resolved --steps.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Resolve(cmd.Flags(), flagged)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("to") {
				to = cfg.Steps
			}
			if from < 0 || to < from {
				return fmt.Errorf("invalid ring range [%d, %d]", from, to)
			}
			logger := logging.NewLogger(cfg.LogLevel, cmd.ErrOrStderr())

			nb, err := fleas.BuildNeighbors(cfg.Size)
			if err != nil {
				return err
			}
			sim := cfg.Sim()
			sim.Visualize = false
			for steps := from; steps <= to; steps++ {
				sim.Steps = steps
				sum, err := fleas.Estimate(sim, nb, core.NewRNG(sim.Seed), fleas.Hooks{})
				if err != nil {
					return err
				}
				logger.Debug("sweep point", "steps", steps, "expected", sum.Expected, "stddev", sum.StdDev)
				writeEstimate(cmd.OutOrStdout(), sum)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&from, "from", 0, "first ring count")
	cmd.Flags().IntVar(&to, "to", 0, "last ring count (default --steps)")
	return cmd
}
