package app

import (
	"flag"
	"log"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const maxCells = 4096

// ErrNoWindow reports that the window frontend was not compiled in.
var ErrNoWindow = errors.New("the window frontend requires building with the 'ebiten' tag")

// LoadFile overlays the YAML document at path onto c. Keys missing from the
// file keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "[LoadConfig] failed to read file: %s", path)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %s", path)
	}
	return nil
}

// Validate rejects configurations no frontend can run.
func (c *Config) Validate() error {
	switch c.Frontend {
	case FrontendWindow, FrontendTerminal:
	default:
		return errors.Errorf("unknown frontend %q", c.Frontend)
	}
	if c.Width <= 0 || c.Height <= 0 || c.Width > maxCells || c.Height > maxCells {
		return errors.Errorf("grid size %dx%d out of range (1..%d)", c.Width, c.Height, maxCells)
	}
	if c.CellSize <= 0 {
		return errors.Errorf("cell size must be positive, got %d", c.CellSize)
	}
	if c.Tick <= 0 {
		return errors.Errorf("tick must be positive, got %v", c.Tick)
	}
	if c.TPS <= 0 {
		return errors.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.Density < 0 || c.Density > 1 {
		return errors.Errorf("density must be within [0,1], got %v", c.Density)
	}
	return nil
}

// Parse binds a fresh Config to fs, parses args and, when -config is given,
// loads the file underneath any flags set explicitly on the command line.
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := NewConfig()
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.ConfigPath != "" {
		explicit := map[string]string{}
		fs.Visit(func(f *flag.Flag) {
			explicit[f.Name] = f.Value.String()
		})
		if err := cfg.LoadFile(cfg.ConfigPath); err != nil {
			return nil, err
		}
		for name, value := range explicit {
			if err := fs.Set(name, value); err != nil {
				return nil, errors.Wrapf(err, "reapply -%s", name)
			}
		}
		log.Printf("[Config] loaded %s", cfg.ConfigPath)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}
