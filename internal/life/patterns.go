package life

import (
	"fmt"
	"sort"

	"lifegrid/internal/core"
)

// Pattern is a fixed set of (row, col) offsets relative to an anchor cell.
type Pattern struct {
	Name    string
	Offsets []core.Coord
}

// Bounds returns the number of rows and columns spanned by the pattern.
func (p Pattern) Bounds() (rows, cols int) {
	for _, o := range p.Offsets {
		rows = max(rows, o.Row+1)
		cols = max(cols, o.Col+1)
	}
	return rows, cols
}

const (
	// PatternGlider is the name of the glider pattern.
	PatternGlider = "glider"
	// PatternGliderGun is the name of the Gosper glider gun pattern.
	PatternGliderGun = "glider-gun"
	// PatternFirework is the name of the firework pattern.
	PatternFirework = "firework"
)

func offsets(pairs ...[2]int) []core.Coord {
	out := make([]core.Coord, len(pairs))
	for i, p := range pairs {
		out[i] = core.Coord{Row: p[0], Col: p[1]}
	}
	return out
}

var patterns = map[string]Pattern{
	PatternGlider: {
		Name:    PatternGlider,
		Offsets: offsets([2]int{0, 2}, [2]int{1, 0}, [2]int{1, 2}, [2]int{2, 1}, [2]int{2, 2}),
	},
	// The gun fires south: rows run along its long axis.
	PatternGliderGun: {
		Name: PatternGliderGun,
		Offsets: offsets(
			[2]int{0, 4}, [2]int{0, 5}, [2]int{1, 4}, [2]int{1, 5}, [2]int{10, 4}, [2]int{10, 5},
			[2]int{10, 6}, [2]int{11, 3}, [2]int{11, 7}, [2]int{12, 2}, [2]int{12, 8}, [2]int{13, 2},
			[2]int{13, 8}, [2]int{14, 5}, [2]int{15, 3}, [2]int{15, 7}, [2]int{16, 4}, [2]int{16, 5},
			[2]int{16, 6}, [2]int{17, 5}, [2]int{20, 2}, [2]int{20, 3}, [2]int{20, 4}, [2]int{21, 2},
			[2]int{21, 3}, [2]int{21, 4}, [2]int{22, 1}, [2]int{22, 5}, [2]int{24, 0}, [2]int{24, 1},
			[2]int{24, 5}, [2]int{24, 6}, [2]int{34, 2}, [2]int{34, 3}, [2]int{35, 2}, [2]int{35, 3},
		),
	},
	PatternFirework: {
		Name: PatternFirework,
		Offsets: offsets(
			[2]int{0, 2}, [2]int{1, 0}, [2]int{1, 1}, [2]int{1, 3}, [2]int{1, 4}, [2]int{2, 1},
			[2]int{2, 3}, [2]int{3, 0}, [2]int{3, 1}, [2]int{3, 3}, [2]int{3, 4},
		),
	},
}

// LookupPattern returns the built-in pattern with the given name.
func LookupPattern(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return Pattern{}, fmt.Errorf("unknown pattern %q: %w", name, ErrInvalidArgument)
	}
	return p, nil
}

// PatternNames lists the built-in pattern names in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stamp births every cell of the named pattern anchored at (row, col).
func (l *Life) Stamp(row, col int, name string) ([]int, error) {
	p, err := LookupPattern(name)
	if err != nil {
		return nil, err
	}
	return l.StampPattern(row, col, p)
}

// StampPattern births every cell of p anchored at (row, col) and returns the
// flat indices it targeted. Placement always wraps around the grid edges,
// whatever the boundary policy, so a pattern anchored near an edge in Finite
// mode continues on the opposite side.
func (l *Life) StampPattern(row, col int, p Pattern) ([]int, error) {
	if !l.dims.Contains(row, col) {
		return nil, fmt.Errorf("anchor (%d,%d) outside %dx%d grid: %w", row, col, l.dims.Rows, l.dims.Cols, ErrInvalidArgument)
	}
	targets := make([]int, 0, len(p.Offsets))
	for _, o := range p.Offsets {
		r, c := l.dims.Wrap(row+o.Row, col+o.Col)
		targets = append(targets, l.dims.Index(r, c))
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, t := range targets {
		l.birth(t)
	}
	return targets, nil
}
