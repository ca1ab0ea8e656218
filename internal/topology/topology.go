// Package topology computes cell neighborhoods under the supported boundary
// policies.
package topology

import (
	"fmt"
	"strings"

	"lifegrid/internal/core"
)

// Boundary selects how the grid edges are treated.
type Boundary uint8

const (
	// Periodic wraps both axes so the grid forms a torus.
	Periodic Boundary = iota
	// Finite clamps the grid: cells beyond an edge do not exist.
	Finite
)

// Boundaries lists every supported policy in selector order.
var Boundaries = []Boundary{Periodic, Finite}

func (b Boundary) String() string {
	switch b {
	case Periodic:
		return "periodic"
	case Finite:
		return "finite"
	default:
		return fmt.Sprintf("boundary(%d)", uint8(b))
	}
}

// Valid reports whether b is a known policy.
func (b Boundary) Valid() bool { return b == Periodic || b == Finite }

// Next returns the policy following b in selector order.
func (b Boundary) Next() Boundary {
	if b == Periodic {
		return Finite
	}
	return Periodic
}

// ParseBoundary converts a policy name into a Boundary.
func ParseBoundary(s string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "periodic", "torus", "toroidal":
		return Periodic, nil
	case "finite", "clamped":
		return Finite, nil
	}
	return Periodic, fmt.Errorf("unknown boundary %q (want periodic or finite)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (b Boundary) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("unknown boundary %d", uint8(b))
	}
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Boundary) UnmarshalText(text []byte) error {
	parsed, err := ParseBoundary(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// offsets is the row-major scan of the Moore neighborhood.
var offsets = [8]core.Coord{
	{Row: -1, Col: -1}, {Row: -1, Col: 0}, {Row: -1, Col: 1},
	{Row: 0, Col: -1}, {Row: 0, Col: 1},
	{Row: 1, Col: -1}, {Row: 1, Col: 0}, {Row: 1, Col: 1},
}

// Neighbors returns the neighbor coordinates of (row, col) on a rows x cols
// grid. Periodic always yields 8 entries in row-major offset order; on grids
// narrower than 3 cells some of them alias each other or the cell itself.
// Finite yields the 3 to 8 entries that stay inside the grid.
func Neighbors(b Boundary, row, col, rows, cols int) []core.Coord {
	d := core.Dims{Rows: rows, Cols: cols}
	out := make([]core.Coord, 0, len(offsets))
	for _, off := range offsets {
		r, c := row+off.Row, col+off.Col
		switch b {
		case Periodic:
			r, c = d.Wrap(r, c)
		default:
			if !d.Contains(r, c) {
				continue
			}
		}
		out = append(out, core.Coord{Row: r, Col: c})
	}
	return out
}

// Table builds the neighborhood table for every cell of d: entry t holds the
// distinct flat indices adjacent to t, never t itself.
func Table(d core.Dims, b Boundary) [][]int {
	table := make([][]int, d.Len())
	for row := 0; row < d.Rows; row++ {
		for col := 0; col < d.Cols; col++ {
			t := d.Index(row, col)
			table[t] = neighborIndices(d, b, row, col, t)
		}
	}
	return table
}

func neighborIndices(d core.Dims, b Boundary, row, col, self int) []int {
	coords := Neighbors(b, row, col, d.Rows, d.Cols)
	out := make([]int, 0, len(coords))
	for _, c := range coords {
		u := d.Index(c.Row, c.Col)
		if u == self || containsInt(out, u) {
			continue
		}
		out = append(out, u)
	}
	return out
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
