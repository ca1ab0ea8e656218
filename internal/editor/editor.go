// Package editor applies drawing tools to a Life grid.
package editor

import (
	"fmt"

	"lifegrid/internal/life"
)

// Tool selects what a click on the grid does.
type Tool uint8

const (
	// SwitchCell toggles the clicked cell.
	SwitchCell Tool = iota
	// PlaceGlider stamps a glider anchored at the clicked cell.
	PlaceGlider
	// PlaceGun stamps a glider gun anchored at the clicked cell.
	PlaceGun
	// PlaceFirework stamps a firework anchored at the clicked cell.
	PlaceFirework
)

// Tools lists every tool in palette order.
var Tools = []Tool{SwitchCell, PlaceGlider, PlaceGun, PlaceFirework}

func (t Tool) String() string {
	switch t {
	case SwitchCell:
		return "switch"
	case PlaceGlider:
		return "glider"
	case PlaceGun:
		return "gun"
	case PlaceFirework:
		return "firework"
	default:
		return fmt.Sprintf("tool(%d)", uint8(t))
	}
}

// Pattern returns the name of the pattern the tool stamps, or "" for SwitchCell.
func (t Tool) Pattern() string {
	switch t {
	case PlaceGlider:
		return life.PatternGlider
	case PlaceGun:
		return life.PatternGliderGun
	case PlaceFirework:
		return life.PatternFirework
	}
	return ""
}

// ParseTool converts a tool name into a Tool.
func ParseTool(s string) (Tool, error) {
	for _, t := range Tools {
		if t.String() == s || (t.Pattern() != "" && t.Pattern() == s) {
			return t, nil
		}
	}
	return SwitchCell, fmt.Errorf("unknown tool %q: %w", s, life.ErrInvalidArgument)
}

// Apply uses tool at (row, col) and returns the flat indices it touched.
func Apply(g *life.Life, tool Tool, row, col int) ([]int, error) {
	switch tool {
	case SwitchCell:
		idx, err := g.Index(row, col)
		if err != nil {
			return nil, err
		}
		if _, err := g.Toggle(idx); err != nil {
			return nil, err
		}
		return []int{idx}, nil
	case PlaceGlider, PlaceGun, PlaceFirework:
		return g.Stamp(row, col, tool.Pattern())
	}
	return nil, fmt.Errorf("%s: %w", tool, life.ErrInvalidArgument)
}

// CellAt converts a pixel position into a (row, col) pair for cells drawn
// cellSize pixels wide. ok is false when the point lies outside the grid.
func CellAt(g *life.Life, x, y, cellSize int) (row, col int, ok bool) {
	if cellSize <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = (y-y%cellSize)/cellSize, (x-x%cellSize)/cellSize
	return row, col, g.Dims().Contains(row, col)
}
