// Package fleas estimates, by Monte Carlo simulation, how many cells of a square
// grid are left empty after every flea on it has hopped a number of times.
package fleas

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrInvalidSize reports a grid side length below one.
	ErrInvalidSize = errors.New("grid size must be positive")
	// ErrInvalidSteps reports a negative ring count.
	ErrInvalidSteps = errors.New("steps must not be negative")
	// ErrInvalidTrials reports a trial count below one.
	ErrInvalidTrials = errors.New("trials must be at least 1")
	// ErrTopologyMismatch reports a neighbor table built for another grid.
	ErrTopologyMismatch = errors.New("neighbor table does not match grid size")
)

// Config holds the parameters of an estimate.
type Config struct {
	Size      int
	Steps     int
	Trials    int
	Seed      int64
	Visualize bool
}

// DefaultConfig returns the standard configuration: a 30x30 grid, 50 rings,
// 200 trials and seed 42.
func DefaultConfig() Config {
	return Config{Size: 30, Steps: 50, Trials: 200, Seed: 42}
}

// Cells returns the number of grid cells, which is also the number of fleas.
func (c Config) Cells() int { return c.Size * c.Size }

// Validate reports the first parameter that cannot be simulated.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("size %d: %w", c.Size, ErrInvalidSize)
	}
	if c.Steps < 0 {
		return fmt.Errorf("steps %d: %w", c.Steps, ErrInvalidSteps)
	}
	if c.Trials < 1 {
		return fmt.Errorf("trials %d: %w", c.Trials, ErrInvalidTrials)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Values that do not parse or are out of range keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["steps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Steps = parsed
		}
	}
	if v, ok := cfg["trials"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Trials = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["visualize"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Visualize = parsed
		}
	}
	return c
}
