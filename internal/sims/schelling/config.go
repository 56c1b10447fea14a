package schelling

import (
	"flag"
	"fmt"
	"strconv"
)

// MaxRaces bounds the number of agent types; race values share a byte with
// the empty marker in the display buffer.
const MaxRaces = 255

// Config controls one simulation run. It is never mutated after a World is
// constructed from it.
type Config struct {
	Width  int
	Height int

	// EmptyRatio is the fraction of cells left vacant at populate time.
	EmptyRatio float64
	// SimilarityThreshold is the minimum like-neighbor fraction an agent
	// needs to stay put.
	SimilarityThreshold float64
	// MaxIterations caps the number of relocation rounds per Update.
	MaxIterations int
	// Races is the number of distinct agent types.
	Races int

	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:               50,
		Height:              50,
		EmptyRatio:          0.3,
		SimilarityThreshold: 0.3,
		MaxIterations:       500,
		Races:               2,
		Seed:                1337,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Malformed or out-of-range values are ignored and the default is kept.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["empty_ratio"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.EmptyRatio = parsed
		}
	}
	if v, ok := cfg["threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.SimilarityThreshold = parsed
		}
	}
	if v, ok := cfg["max_iterations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.MaxIterations = parsed
		}
	}
	if v, ok := cfg["races"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 && parsed <= MaxRaces {
			c.Races = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width")
	fs.IntVar(&c.Height, "h", c.Height, "grid height")
	fs.Float64Var(&c.EmptyRatio, "empty-ratio", c.EmptyRatio, "fraction of cells left vacant")
	fs.Float64Var(&c.SimilarityThreshold, "threshold", c.SimilarityThreshold, "minimum like-neighbor fraction for satisfaction")
	fs.IntVar(&c.MaxIterations, "max-iterations", c.MaxIterations, "maximum relocation rounds")
	fs.IntVar(&c.Races, "races", c.Races, "number of agent types")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed")
}

// Validate reports whether the configuration can drive a simulation.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.EmptyRatio < 0 || c.EmptyRatio > 1:
		return fmt.Errorf("%w: empty ratio %v not in [0,1]", ErrInvalidConfig, c.EmptyRatio)
	case c.SimilarityThreshold < 0 || c.SimilarityThreshold > 1:
		return fmt.Errorf("%w: similarity threshold %v not in [0,1]", ErrInvalidConfig, c.SimilarityThreshold)
	case c.MaxIterations < 0:
		return fmt.Errorf("%w: max iterations %d", ErrInvalidConfig, c.MaxIterations)
	case c.Races < 1 || c.Races > MaxRaces:
		return fmt.Errorf("%w: races %d not in [1,%d]", ErrInvalidConfig, c.Races, MaxRaces)
	}
	return nil
}
