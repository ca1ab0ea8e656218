package app

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"lifegrid/internal/config"
	"lifegrid/internal/editor"
	"lifegrid/internal/life"
	"lifegrid/internal/save"
)

// Session bundles a grid with the controls a front end drives: the edit tool,
// the animation loop and the save file. Front ends own the Session; the grid
// holds no reference back to them.
type Session struct {
	Grid  *life.Life
	Loop  *Loop
	Store *save.Store

	Tool     editor.Tool
	CellSize int

	seed    int64
	canLoad bool
}

// NewSession builds the grid described by cfg.
func NewSession(cfg config.Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	s := &Session{
		Grid:     g,
		Loop:     NewLoop(g, cfg.Delay()),
		Store:    save.NewStore(cfg.SavePath),
		Tool:     editor.SwitchCell,
		CellSize: cfg.CellSize,
		seed:     cfg.Seed,
	}
	s.canLoad = s.Store.Available(g)
	return s, nil
}

// Click applies the active tool at pixel (x, y). Clicks outside the grid are
// ignored.
func (s *Session) Click(x, y int) ([]int, error) {
	row, col, ok := editor.CellAt(s.Grid, x, y, s.CellSize)
	if !ok {
		return nil, nil
	}
	return editor.Apply(s.Grid, s.Tool, row, col)
}

// SelectTool makes t the active tool.
func (s *Session) SelectTool(t editor.Tool) { s.Tool = t }

// ClearAll kills every cell.
func (s *Session) ClearAll() { s.Grid.Clear() }

// Reseed replaces the grid with a fresh random soup from the next seed and
// returns that seed. Seed 0 is skipped since it means an empty grid.
func (s *Session) Reseed() int64 {
	s.seed++
	if s.seed == 0 {
		s.seed++
	}
	s.Grid.Reset(s.seed)
	logrus.Infof("session: reseeded %s with seed %d", s.Grid.Name(), s.seed)
	return s.seed
}

// GridPixels returns the pixel size of the drawn grid.
func (s *Session) GridPixels() (w, h int) {
	size := s.Grid.Size()
	return size.W * s.CellSize, size.H * s.CellSize
}

// CycleBoundary switches to the next boundary policy.
func (s *Session) CycleBoundary() error {
	return s.Grid.SetBoundary(s.Grid.Boundary().Next())
}

// SetDelayMS changes the loop delay; non-positive values are ignored.
func (s *Session) SetDelayMS(ms int) bool {
	return s.Loop.SetDelay(time.Duration(ms) * time.Millisecond)
}

// CanLoad reports whether a compatible save was found or written.
func (s *Session) CanLoad() bool { return s.canLoad }

// Save writes the grid to the save file.
func (s *Session) Save() error {
	if err := s.Store.Save(s.Grid); err != nil {
		return err
	}
	s.canLoad = true
	return nil
}

// Load restores the grid from the save file.
func (s *Session) Load() error {
	if err := s.Store.Load(s.Grid); err != nil {
		s.canLoad = s.Store.Available(s.Grid)
		return fmt.Errorf("load: %w", err)
	}
	logrus.Infof("session: loaded %d live cells from %s", s.Grid.Population(), s.Store.Path)
	return nil
}
