// Package config resolves the run configuration of the fleas tools from
// defaults, an optional YAML file, the environment and command-line flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"fleas/internal/logging"
	"fleas/pkg/sims/fleas"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// EnvLogLevel overrides the log level from the environment.
const EnvLogLevel = "FLEAS_LOG_LEVEL"

// Config holds every setting of a run.
type Config struct {
	// Size is the grid side length.
	Size int `yaml:"size"`
	// Steps is the number of rings per trial.
	Steps int `yaml:"steps"`
	// Trials is the number of trials averaged into the estimate.
	Trials int `yaml:"trials"`
	// Seed seeds the single random source of the run.
	Seed int64 `yaml:"seed"`
	// Visualize prints one extra sample trial before the estimate.
	Visualize bool `yaml:"visualize"`
	// LogLevel is "info" (default), "debug" or "trace".
	LogLevel string `yaml:"log_level"`

	Viewer ViewerConfig `yaml:"viewer"`

	// Path is the YAML file the config was read from, if any.
	Path string `yaml:"-"`
}

// ViewerConfig configures the interactive viewer.
type ViewerConfig struct {
	// Scale is the pixel size of one cell.
	Scale int `yaml:"scale"`
	// Rate is the number of rings played per second.
	Rate int `yaml:"rate"`
}

// Default returns a Config populated with the standard simulation defaults.
func Default() *Config {
	sim := fleas.DefaultConfig()
	return &Config{
		Size:      sim.Size,
		Steps:     sim.Steps,
		Trials:    sim.Trials,
		Seed:      sim.Seed,
		Visualize: sim.Visualize,
		LogLevel:  "info",
		Viewer:    ViewerConfig{Scale: 16, Rate: 4},
	}
}

// Sim returns the simulation parameters of the config.
func (c *Config) Sim() fleas.Config {
	return fleas.Config{
		Size:      c.Size,
		Steps:     c.Steps,
		Trials:    c.Trials,
		Seed:      c.Seed,
		Visualize: c.Visualize,
	}
}

// Validate checks the simulation parameters, log level and viewer settings.
func (c *Config) Validate() error {
	if err := c.Sim().Validate(); err != nil {
		return err
	}
	if err := logging.CheckLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Viewer.Scale <= 0 {
		return fmt.Errorf("viewer scale %d must be positive", c.Viewer.Scale)
	}
	if c.Viewer.Rate <= 0 {
		return fmt.Errorf("viewer rate %d must be positive", c.Viewer.Rate)
	}
	return nil
}

// Bind attaches the simulation settings to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "grid side length")
	fs.IntVar(&c.Steps, "steps", c.Steps, "number of bell rings")
	fs.IntVar(&c.Trials, "trials", c.Trials, "Monte Carlo trials")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed")
	fs.BoolVar(&c.Visualize, "visualize", c.Visualize, "print one sample grid before the estimate")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: info, debug or trace")
	fs.StringVar(&c.Path, "config", c.Path, "YAML file with default settings")
}

// BindViewer attaches the viewer settings to the provided FlagSet.
func (c *Config) BindViewer(fs *pflag.FlagSet) {
	fs.IntVar(&c.Viewer.Scale, "scale", c.Viewer.Scale, "pixel scale multiplier")
	fs.IntVar(&c.Viewer.Rate, "rate", c.Viewer.Rate, "rings per second")
}

// LoadFromFile reads a YAML config on top of the defaults. Unknown keys are
// rejected.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Resolve layers the configuration: defaults, then the file named by
// flagged.Path, then FLEAS_LOG_LEVEL, then every flag explicitly set on fs.
// flagged must be the Config that was bound to fs.
func Resolve(fs *pflag.FlagSet, flagged *Config) (*Config, error) {
	cfg := Default()
	if flagged.Path != "" {
		loaded, err := LoadFromFile(flagged.Path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if lvl, ok := os.LookupEnv(EnvLogLevel); ok && lvl != "" {
		cfg.LogLevel = lvl
	}
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "size":
			cfg.Size = flagged.Size
		case "steps":
			cfg.Steps = flagged.Steps
		case "trials":
			cfg.Trials = flagged.Trials
		case "seed":
			cfg.Seed = flagged.Seed
		case "visualize":
			cfg.Visualize = flagged.Visualize
		case "log-level":
			cfg.LogLevel = flagged.LogLevel
		case "scale":
			cfg.Viewer.Scale = flagged.Viewer.Scale
		case "rate":
			cfg.Viewer.Rate = flagged.Viewer.Rate
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
