package app

import (
	"flag"

	"lifeterrain/pkg/sims/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Size    int
	Density float64
	Seed    int64
	History int

	Scale int
	TPS   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := life.DefaultConfig()
	return &Config{
		Size:    d.Size,
		Density: d.Density,
		Seed:    d.Seed,
		History: d.History,
		Scale:   2,
		TPS:     60,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "terrain width and height in cells")
	fs.Float64Var(&c.Density, "density", c.Density, "initial live-cell probability in [0,1]")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for terrain resets")
	fs.IntVar(&c.History, "history", c.History, "checksums remembered for cycle detection")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "display refreshes per second")
}

// Life returns the terrain configuration.
func (c *Config) Life() life.Config {
	return life.Config{Size: c.Size, Density: c.Density, Seed: c.Seed, History: c.History}
}
