package app

import (
	"flag"

	"mad-life/internal/ui"
	"mad-life/pkg/control"
	"mad-life/pkg/sims/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Rows       int
	Cols       int
	CellSize   int
	TPS        int
	Seed       int64
	Density    float64
	IntervalMs int
	Randomize  bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	lc := life.DefaultConfig()
	cc := control.DefaultConfig()
	return &Config{
		Rows:       lc.Rows,
		Cols:       lc.Cols,
		CellSize:   ui.DefaultCellSize,
		TPS:        60,
		Seed:       lc.Seed,
		Density:    cc.Density,
		IntervalMs: cc.IntervalMs,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fills")
	fs.Float64Var(&c.Density, "density", c.Density, "probability a cell starts alive on randomize")
	fs.IntVar(&c.IntervalMs, "interval", c.IntervalMs, "milliseconds between generations (50-1000)")
	fs.BoolVar(&c.Randomize, "random", c.Randomize, "start with a random board")
}

// LifeConfig returns the grid configuration.
func (c *Config) LifeConfig() life.Config {
	return life.Config{Rows: c.Rows, Cols: c.Cols, Seed: c.Seed, Density: c.Density}
}

// ControlConfig returns the playback configuration.
func (c *Config) ControlConfig() control.Config {
	return control.Config{IntervalMs: c.IntervalMs, Density: c.Density}
}
