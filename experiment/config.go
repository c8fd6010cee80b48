// SPDX-License-Identifier: MIT

package experiment

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/borderband/matrix"
)

// Scenario selects how matrices are drawn and which cells are measured.
type Scenario string

const (
	ScenarioMeanError    Scenario = "mean-error"
	ScenarioEveryK       Scenario = "every-k"
	ScenarioDominantBand Scenario = "dominant-band"
)

// Scenarios lists the built-in scenarios.
func Scenarios() []Scenario {
	return []Scenario{ScenarioMeanError, ScenarioEveryK, ScenarioDominantBand}
}

// Range is a half-open integer range [Min, Max).
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// BandRanges sets per-vector ranges for the dominant-band scenario.
type BandRanges struct {
	A Range `yaml:"a"`
	B Range `yaml:"b"`
	C Range `yaml:"c"`
}

// Config describes one harness run.
type Config struct {
	Scenario Scenario `yaml:"scenario"`

	// Sizes are the matrix orders to measure.
	Sizes []int `yaml:"sizes"`

	// Trials per cell.
	Trials int `yaml:"trials"`

	// Workers bounds concurrent trials; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`

	// Seed of the run; trial streams are derived from it.
	Seed int64 `yaml:"seed"`

	// Epsilon is the solver's singular-pivot bound.
	Epsilon float64 `yaml:"epsilon"`

	// MaxResamples bounds redraws after a singular pivot, per trial.
	MaxResamples int `yaml:"max_resamples"`

	// Values is the range of matrix entries (border entries in dominant-band).
	Values Range `yaml:"values"`

	// X is the range of the exact solution entries.
	X Range `yaml:"x"`

	// Band is used by the dominant-band scenario only.
	Band BandRanges `yaml:"band"`
}

// DefaultConfig returns the settings of scenario s.
// An unknown scenario yields a config that fails Validate.
func DefaultConfig(s Scenario) Config {
	cfg := Config{
		Scenario:     s,
		Trials:       10,
		Seed:         matrix.DefaultSeed,
		Epsilon:      matrix.DefaultEpsilon,
		MaxResamples: 100,
		Values:       Range{Min: 1, Max: 99},
		X:            Range{Min: 1, Max: 99},
	}

	switch s {
	case ScenarioMeanError:
		cfg.Sizes = []int{10, 100, 1_000, 10_000, 100_000}
	case ScenarioEveryK:
		cfg.Sizes = []int{3, 4, 5, 6, 7, 8, 9, 10}
		cfg.Trials = 1
		cfg.Values = Range{Min: 1, Max: 10}
		cfg.X = Range{Min: 1, Max: 9}
	case ScenarioDominantBand:
		cfg.Sizes = []int{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
		cfg.Values = Range{Min: 1, Max: 100}
		cfg.Band = BandRanges{
			A: Range{Min: 1, Max: 100},
			B: Range{Min: 1, Max: 100},
			C: Range{Min: 100, Max: 400},
		}
	}

	return cfg
}

// LoadConfig reads a YAML file on top of the defaults of the scenario it
// names (mean-error when it names none) and validates the result.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var probe struct {
		Scenario Scenario `yaml:"scenario"`
	}
	if err = yaml.Unmarshal(data, &probe); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if probe.Scenario == "" {
		probe.Scenario = ScenarioMeanError
	}

	cfg := DefaultConfig(probe.Scenario)
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (r Range) validate(name string) error {
	if err := matrix.ValidateRange(r.Min, r.Max); err != nil {
		return fmt.Errorf("%w: %s [%d,%d): %w", ErrInvalidConfig, name, r.Min, r.Max, err)
	}

	return nil
}

// Validate checks every field.
func (c Config) Validate() error {
	switch c.Scenario {
	case ScenarioMeanError, ScenarioEveryK, ScenarioDominantBand:
	default:
		return fmt.Errorf("%w: unknown scenario %q", ErrInvalidConfig, c.Scenario)
	}
	if len(c.Sizes) == 0 {
		return fmt.Errorf("%w: no sizes", ErrInvalidConfig)
	}
	for _, n := range c.Sizes {
		if err := matrix.ValidateBandSize(n); err != nil {
			return fmt.Errorf("%w: size %d: %w", ErrInvalidConfig, n, err)
		}
	}
	if c.Trials < 1 {
		return fmt.Errorf("%w: trials must be >= 1", ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0", ErrInvalidConfig)
	}
	if c.MaxResamples < 0 {
		return fmt.Errorf("%w: max_resamples must be >= 0", ErrInvalidConfig)
	}
	if c.Epsilon < 0 {
		return fmt.Errorf("%w: epsilon must be >= 0", ErrInvalidConfig)
	}
	if err := c.Values.validate("values"); err != nil {
		return err
	}
	if err := c.X.validate("x"); err != nil {
		return err
	}
	if c.Scenario == ScenarioDominantBand {
		for _, r := range []struct {
			name string
			rng  Range
		}{{"band.a", c.Band.A}, {"band.b", c.Band.B}, {"band.c", c.Band.C}} {
			if err := r.rng.validate(r.name); err != nil {
				return err
			}
		}
	}

	return nil
}
