package main

import (
	"errors"
	"fmt"
	"os"

	"fleas/internal/config"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errViewerUnavailable) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flagged := config.Default()
	rootCmd := &cobra.Command{
		Use:   "fleas",
		Short: "Flea random walk simulation on a square grid",
		Long: `fleas places one flea on every cell of a square grid and rings a bell:
on each ring every flea jumps to a random orthogonal neighbor. It estimates
the expected number of empty cells after a number of rings by averaging
independent trials drawn from a single seeded random source.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Resolve(cmd.Flags(), flagged)
			if err != nil {
				return err
			}
			return runEstimate(cmd, cfg)
		},
	}
	flagged.Bind(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newVersionCmd(),
		newSweepCmd(flagged),
		newViewCmd(flagged),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fleas version %s\n", version)
		},
	}
}
