package app

import (
	"flag"
	"time"

	"sketchlife/internal/session"
)

const (
	// FrontendWindow renders into an ebiten window.
	FrontendWindow = "window"
	// FrontendTerminal renders into the controlling terminal.
	FrontendTerminal = "terminal"
)

// Config represents the command-line parameters for the application.
type Config struct {
	ConfigPath string `yaml:"-"`

	Frontend string        `yaml:"frontend"`
	Width    int           `yaml:"width"`
	Height   int           `yaml:"height"`
	CellSize int           `yaml:"cellSize"`
	Tick     time.Duration `yaml:"tick"`
	TPS      int           `yaml:"tps"`
	Seed     int64         `yaml:"seed"`
	Density  float64       `yaml:"density"`
	HUD      bool          `yaml:"hud"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	opts := session.DefaultOptions()
	return &Config{
		Frontend: FrontendWindow,
		Width:    opts.Width,
		Height:   opts.Height,
		CellSize: opts.CellSize,
		Tick:     opts.Tick,
		TPS:      60,
		Seed:     opts.Seed,
		Density:  opts.Density,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "optional YAML config file; explicit flags take precedence")
	fs.StringVar(&c.Frontend, "frontend", c.Frontend, "frontend to run: window or terminal")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.DurationVar(&c.Tick, "tick", c.Tick, "simulated time between generations")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random soups")
	fs.Float64Var(&c.Density, "density", c.Density, "live cell density of random soups")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the status overlay")
}

// SessionOptions converts the configuration into session options.
func (c *Config) SessionOptions() session.Options {
	return session.Options{
		Width:    c.Width,
		Height:   c.Height,
		CellSize: c.CellSize,
		Tick:     c.Tick,
		Seed:     c.Seed,
		Density:  c.Density,
	}
}
