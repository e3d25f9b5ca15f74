package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"fleas/internal/config"
	"fleas/internal/logging"
	"fleas/pkg/core"
	"fleas/pkg/sims/fleas"

	"github.com/spf13/cobra"
)

func runEstimate(cmd *cobra.Command, cfg *config.Config) error {
	logger := logging.NewLogger(cfg.LogLevel, cmd.ErrOrStderr())
	out := cmd.OutOrStdout()
	sim := cfg.Sim()

	nb, err := fleas.BuildNeighbors(sim.Size)
	if err != nil {
		return err
	}
	logger.Debug("starting estimate",
		"size", sim.Size, "cells", nb.Cells(), "steps", sim.Steps,
		"trials", sim.Trials, "seed", sim.Seed, "visualize", sim.Visualize)

	ctx := context.Background()
	hooks := fleas.Hooks{
		Sample: func(res fleas.Result) {
			writeSample(out, res, sim.Size)
		},
		Trial: func(i, empty int) {
			logger.Log(ctx, logging.LevelTrace, "trial finished", "trial", i, "empty", empty)
		},
	}

	start := time.Now()
	sum, err := fleas.Estimate(sim, nb, core.NewRNG(sim.Seed), hooks)
	if err != nil {
		return err
	}
	logger.Debug("estimate finished",
		"expected", sum.Expected, "stddev", sum.StdDev, "elapsed", time.Since(start))

	writeEstimate(out, sum)
	return nil
}

func writeSample(w io.Writer, res fleas.Result, side int) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Visualization (single trial):")
	fmt.Fprintln(w, fleas.RenderGrid(res.Counts, side))
	fmt.Fprintf(w, "Empty squares in this trial: %d\n\n", res.Empty)
}

func writeEstimate(w io.Writer, sum fleas.Summary) {
	fmt.Fprintf(w, "Expected empty squares after %d rings: %.6f\n", sum.Steps, sum.Expected)
}
