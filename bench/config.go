package bench

import "fmt"

// Config drives the benchmark harness.
type Config struct {
	Sizes         []int   `json:"sizes"`
	Trials        int     `json:"trials"`
	Warmup        int     `json:"warmup"`
	Seed          int64   `json:"seed"`
	Destination   float64 `json:"destination"`
	SpacingFactor float64 `json:"spacing_factor"`
	SweepSize     int     `json:"sweep_size"`
	SweepSteps    int     `json:"sweep_steps"`
	OutDir        string  `json:"out_dir"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if len(c.Sizes) == 0 {
		c.Sizes = []int{1000, 10000, 100000}
	}
	if c.Trials <= 0 {
		c.Trials = 5
	}
	if c.Warmup <= 0 {
		c.Warmup = 1
	}
	if c.Seed == 0 {
		c.Seed = 42
	}
	if c.Destination <= 0 {
		c.Destination = 1e6
	}
	if c.SpacingFactor <= 1 {
		c.SpacingFactor = 2.5
	}
	if c.SweepSize <= 0 {
		c.SweepSize = 1000
	}
	if c.SweepSteps <= 1 {
		c.SweepSteps = 12
	}
	if c.OutDir == "" {
		c.OutDir = "results"
	}
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	for _, n := range c.Sizes {
		if n <= 0 {
			return fmt.Errorf("sizes must be positive, got %d", n)
		}
	}
	if c.SpacingFactor <= 1 {
		return fmt.Errorf("spacing_factor must exceed 1 to keep instances feasible, got %g", c.SpacingFactor)
	}
	return nil
}
