// Package config loads session settings for the lifegrid commands.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"lifegrid/internal/core"
	"lifegrid/internal/life"
	"lifegrid/internal/save"
	"lifegrid/internal/topology"
)

// ErrInvalid reports a configuration value outside its allowed range.
var ErrInvalid = errors.New("invalid config")

// Stamp places a named pattern when the session starts.
type Stamp struct {
	Pattern string `yaml:"pattern"`
	Row     int    `yaml:"row"`
	Col     int    `yaml:"col"`
}

// Config is the full session file. All keys must be listed here: unknown keys
// are rejected.
type Config struct {
	Rows     int               `yaml:"rows"`
	Cols     int               `yaml:"cols"`
	CellSize int               `yaml:"cell_size"`
	Boundary topology.Boundary `yaml:"boundary"`
	DelayMS  int               `yaml:"delay_ms"`
	SavePath string            `yaml:"save_path"`
	LogLevel string            `yaml:"log_level"`
	Seed     int64             `yaml:"seed"`
	Density  float64           `yaml:"density"`
	Stamps   []Stamp           `yaml:"stamps"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Rows:     80,
		Cols:     80,
		CellSize: 10,
		Boundary: topology.Periodic,
		DelayMS:  1,
		SavePath: save.DefaultPath,
		LogLevel: "warn",
		Density:  life.DefaultDensity,
	}
}

// Load reads a YAML session file on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field range.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("grid %dx%d must be positive: %w", c.Rows, c.Cols, ErrInvalid)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("cell_size %d must be positive: %w", c.CellSize, ErrInvalid)
	}
	if c.DelayMS <= 0 {
		return fmt.Errorf("delay_ms %d must be positive: %w", c.DelayMS, ErrInvalid)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level %q: %w", c.LogLevel, ErrInvalid)
	}
	if !c.Boundary.Valid() {
		return fmt.Errorf("boundary %s: %w", c.Boundary, ErrInvalid)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("density %v outside [0,1]: %w", c.Density, ErrInvalid)
	}
	for i, s := range c.Stamps {
		if _, err := life.LookupPattern(s.Pattern); err != nil {
			return fmt.Errorf("stamps[%d]: %v: %w", i, err, ErrInvalid)
		}
		if s.Row < 0 || s.Row >= c.Rows || s.Col < 0 || s.Col >= c.Cols {
			return fmt.Errorf("stamps[%d] anchor (%d,%d) outside grid: %w", i, s.Row, s.Col, ErrInvalid)
		}
	}
	return nil
}

// Delay returns the minimum time between generations.
func (c Config) Delay() time.Duration { return time.Duration(c.DelayMS) * time.Millisecond }

// Params renders the engine settings as the string map the sim registry
// factories accept.
func (c Config) Params() map[string]string {
	return map[string]string{
		"rows":     strconv.Itoa(c.Rows),
		"cols":     strconv.Itoa(c.Cols),
		"boundary": c.Boundary.String(),
		"seed":     strconv.FormatInt(c.Seed, 10),
		"density":  strconv.FormatFloat(c.Density, 'g', -1, 64),
	}
}

// Build constructs the grid through the sim registry, seeds it and places the
// configured stamps.
func (c Config) Build() (*life.Life, error) {
	factory, ok := core.Sims()[life.SimName]
	if !ok {
		return nil, fmt.Errorf("sim %q not registered (have %v)", life.SimName, core.SimNames())
	}
	sim, err := factory(c.Params())
	if err != nil {
		return nil, err
	}
	g, ok := sim.(*life.Life)
	if !ok {
		return nil, fmt.Errorf("sim %q built %T, want *life.Life", life.SimName, sim)
	}
	logrus.Debugf("config: built %s grid %dx%d", g.Name(), g.Size().H, g.Size().W)
	for _, s := range c.Stamps {
		if _, err := g.Stamp(s.Row, s.Col, s.Pattern); err != nil {
			return nil, fmt.Errorf("stamp %s at (%d,%d): %w", s.Pattern, s.Row, s.Col, err)
		}
	}
	return g, nil
}
