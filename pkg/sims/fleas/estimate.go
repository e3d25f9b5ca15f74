package fleas

import (
	"fmt"

	"fleas/pkg/core"

	"gonum.org/v1/gonum/stat"
)

// Hooks receives intermediate results of an estimate. Nil fields are skipped.
type Hooks struct {
	// Sample is called with the extra visualization trial when
	// Config.Visualize is set. The Counts slice is only valid during the call.
	Sample func(res Result)
	// Trial is called after each averaging trial with its zero-based index.
	Trial func(i int, empty int)
}

// Summary is the result of an estimate.
type Summary struct {
	Steps  int
	Trials int
	// Expected is the mean number of empty cells over the averaging trials.
	Expected float64
	// StdDev is the sample standard deviation of the per-trial empty counts,
	// zero for a single trial.
	StdDev float64
}

// Estimate runs the optional visualization trial followed by cfg.Trials
// averaging trials, all drawing from rng in sequence, and returns the mean
// empty-cell count. The visualization trial is never part of the mean.
func Estimate(cfg Config, nb *Neighbors, rng core.Chooser, hooks Hooks) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}
	if nb == nil || nb.Side() != cfg.Size {
		return Summary{}, fmt.Errorf("size %d: %w", cfg.Size, ErrTopologyMismatch)
	}

	sim := NewSimulator(nb)
	if cfg.Visualize {
		res, err := sim.Run(cfg.Steps, rng)
		if err != nil {
			return Summary{}, err
		}
		if hooks.Sample != nil {
			hooks.Sample(res)
		}
	}

	empties := make([]float64, cfg.Trials)
	for i := range empties {
		res, err := sim.Run(cfg.Steps, rng)
		if err != nil {
			return Summary{}, err
		}
		empties[i] = float64(res.Empty)
		if hooks.Trial != nil {
			hooks.Trial(i, res.Empty)
		}
	}

	sum := Summary{Steps: cfg.Steps, Trials: cfg.Trials, Expected: stat.Mean(empties, nil)}
	if len(empties) > 1 {
		sum.StdDev = stat.StdDev(empties, nil)
	}
	return sum, nil
}
