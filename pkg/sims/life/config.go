package life

import (
	"fmt"
	"strconv"
)

// Config holds the construction parameters for a Terrain.
type Config struct {
	Size    int
	Density float64
	Seed    int64

	// History is the number of recent checksums kept for cycle detection.
	History int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Size: 500, Density: 0.25, Seed: 42, History: DefaultHistory}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable values keep their defaults; range checks are left to Validate.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Size = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Density = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["history"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.History = parsed
		}
	}
	return c
}

// Validate reports ErrInvalidConfig for a non-positive size or a density
// outside [0, 1].
func (c Config) Validate() error {
	return validate(c.Size, c.Density)
}

func validate(size int, density float64) error {
	if size <= 0 {
		return fmt.Errorf("%w: size %d must be positive", ErrInvalidConfig, size)
	}
	if !(density >= 0 && density <= 1) {
		return fmt.Errorf("%w: density %v must be within [0, 1]", ErrInvalidConfig, density)
	}
	return nil
}
