package life

import (
	"strconv"

	"lifegrid/internal/core"
	"lifegrid/internal/topology"
)

// DefaultDensity is the live-cell probability used by Reset.
const DefaultDensity = 0.25

// SimName is the key the engine is registered under in the core registry.
const SimName = "life"

// Config holds parameters for a Life grid.
type Config struct {
	Rows     int
	Cols     int
	Boundary topology.Boundary
	Seed     int64
	Density  float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Rows: 80, Cols: 80, Boundary: topology.Periodic, Density: DefaultDensity}
}

// FromMap populates a Config from a string map. Unparseable or out-of-range
// values fall back to the defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["boundary"]; ok {
		if parsed, err := topology.ParseBoundary(v); err == nil {
			c.Boundary = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	return c
}

// NewWithConfig builds a grid from cfg and seeds it.
func NewWithConfig(cfg Config) (*Life, error) {
	l, err := New(cfg.Rows, cfg.Cols, cfg.Boundary)
	if err != nil {
		return nil, err
	}
	if err := l.Randomize(cfg.Seed, cfg.Density); err != nil {
		return nil, err
	}
	return l, nil
}

func init() {
	core.Register(SimName, func(cfg map[string]string) (core.Sim, error) {
		l, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return l, nil
	})
}
