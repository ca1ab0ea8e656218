// Package life implements Conway's Game of Life with incrementally maintained
// live-neighbor counts and a selectable boundary policy.
package life

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"lifegrid/internal/core"
	"lifegrid/internal/topology"
)

// ErrInvalidArgument reports a call outside an operation's domain: an index or
// coordinate off the grid, non-positive dimensions, an unknown boundary or an
// unknown pattern. The grid is never modified when it is returned.
var ErrInvalidArgument = errors.New("invalid argument")

// Delta lists the cells that changed state during one generation.
type Delta struct {
	Born []int
	Died []int
}

// Empty reports whether the generation changed nothing.
func (d Delta) Empty() bool { return len(d.Born) == 0 && len(d.Died) == 0 }

// Life is the grid engine. alive and counts are owned exclusively by the
// engine; every exported method holds mu for its whole duration.
type Life struct {
	mu sync.Mutex

	dims     core.Dims
	boundary topology.Boundary

	alive     []bool
	counts    []uint8
	neighbors [][]int
	cells     []uint8

	population int
	generation int

	// scratch buffers reused across steps
	born []int
	died []int
}

// New returns an empty rows x cols grid using the given boundary policy.
func New(rows, cols int, boundary topology.Boundary) (*Life, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("grid %dx%d: %w", rows, cols, ErrInvalidArgument)
	}
	if !boundary.Valid() {
		return nil, fmt.Errorf("%s: %w", boundary, ErrInvalidArgument)
	}
	d := core.Dims{Rows: rows, Cols: cols}
	return &Life{
		dims:      d,
		boundary:  boundary,
		alive:     make([]bool, d.Len()),
		counts:    make([]uint8, d.Len()),
		neighbors: topology.Table(d, boundary),
		cells:     make([]uint8, d.Len()),
	}, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return SimName }

// Size returns the grid dimensions in screen terms (W = cols, H = rows).
func (l *Life) Size() core.Size { return core.Size{W: l.dims.Cols, H: l.dims.Rows} }

// Dimensions returns the row and column counts.
func (l *Life) Dimensions() (rows, cols int) { return l.dims.Rows, l.dims.Cols }

// Dims returns the grid geometry.
func (l *Life) Dims() core.Dims { return l.dims }

// Cells exposes the render buffer: 1 for a live cell, 0 otherwise. The slice
// is owned by the engine and must not be modified.
func (l *Life) Cells() []uint8 { return l.cells }

// Boundary returns the active boundary policy.
func (l *Life) Boundary() topology.Boundary {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.boundary
}

// Generation returns the number of steps applied since construction or the
// last Clear.
func (l *Life) Generation() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.generation
}

// Population returns the number of live cells.
func (l *Life) Population() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.population
}

// IsAlive reports whether cell t is alive.
func (l *Life) IsAlive(t int) (bool, error) {
	if err := l.checkIndex(t); err != nil {
		return false, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.alive[t], nil
}

// LiveNeighborCount returns the cached number of live neighbors of cell t.
func (l *Life) LiveNeighborCount(t int) (int, error) {
	if err := l.checkIndex(t); err != nil {
		return 0, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return int(l.counts[t]), nil
}

// Neighborhood returns a copy of the neighbor indices of cell t under the
// active boundary policy.
func (l *Life) Neighborhood(t int) ([]int, error) {
	if err := l.checkIndex(t); err != nil {
		return nil, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]int(nil), l.neighbors[t]...), nil
}

// LiveIndices returns the flat indices of all live cells in ascending order.
func (l *Life) LiveIndices() []int {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]int, 0, l.population)
	for t, a := range l.alive {
		if a {
			out = append(out, t)
		}
	}
	return out
}

// Index converts (row, col) into a flat index.
func (l *Life) Index(row, col int) (int, error) {
	if !l.dims.Contains(row, col) {
		return 0, fmt.Errorf("cell (%d,%d) outside %dx%d grid: %w", row, col, l.dims.Rows, l.dims.Cols, ErrInvalidArgument)
	}
	return l.dims.Index(row, col), nil
}

// Birth makes cell t alive. Calling it on a live cell is a no-op.
func (l *Life) Birth(t int) error {
	if err := l.checkIndex(t); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.birth(t)
	return nil
}

// Death makes cell t dead. Calling it on a dead cell is a no-op.
func (l *Life) Death(t int) error {
	if err := l.checkIndex(t); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.death(t)
	return nil
}

// Toggle flips the state of cell t and returns the new state.
func (l *Life) Toggle(t int) (bool, error) {
	if err := l.checkIndex(t); err != nil {
		return false, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.alive[t] {
		l.death(t)
	} else {
		l.birth(t)
	}
	return l.alive[t], nil
}

// BirthAll makes every listed cell alive. All indices are validated first, so
// either every birth is applied or none is.
func (l *Life) BirthAll(indices []int) error {
	for _, t := range indices {
		if err := l.checkIndex(t); err != nil {
			return err
		}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, t := range indices {
		l.birth(t)
	}
	return nil
}

// Replace clears the grid and then births every listed cell. Indices are
// validated before anything is cleared.
func (l *Life) Replace(indices []int) error {
	for _, t := range indices {
		if err := l.checkIndex(t); err != nil {
			return err
		}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.clear()
	for _, t := range indices {
		l.birth(t)
	}
	return nil
}

// Clear kills every cell and zeroes every count in a single pass. The
// dimensions and boundary policy are kept.
func (l *Life) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.clear()
	logrus.Debugf("life: cleared %dx%d grid", l.dims.Rows, l.dims.Cols)
}

// SetBoundary switches the boundary policy. The neighborhood table is rebuilt
// and the live-neighbor counts are recomputed under the new adjacency; the
// liveness of every cell is preserved.
func (l *Life) SetBoundary(b topology.Boundary) error {
	if !b.Valid() {
		return fmt.Errorf("%s: %w", b, ErrInvalidArgument)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if b == l.boundary {
		return nil
	}
	l.boundary = b
	l.neighbors = topology.Table(l.dims, b)
	l.recount()
	logrus.Debugf("life: boundary set to %s", b)
	return nil
}

// Advance computes and applies one generation and returns the cells that
// changed. The birth and death sets are both taken from the counts as they
// stood before the step; only then are they applied.
func (l *Life) Advance() Delta {
	l.mu.Lock()
	defer l.mu.Unlock()

	born, died := l.born[:0], l.died[:0]
	for t, count := range l.counts {
		switch count {
		case 3:
			if !l.alive[t] {
				born = append(born, t)
			}
		case 2:
		default:
			if l.alive[t] {
				died = append(died, t)
			}
		}
	}
	for _, t := range born {
		l.birth(t)
	}
	for _, t := range died {
		l.death(t)
	}
	l.born, l.died = born, died
	l.generation++

	return Delta{
		Born: append([]int(nil), born...),
		Died: append([]int(nil), died...),
	}
}

// Step advances the simulation by one generation.
func (l *Life) Step() { l.Advance() }

// Reset clears the grid and, for a non-zero seed, fills it with a random soup
// at the default density.
func (l *Life) Reset(seed int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.randomize(seed, DefaultDensity)
}

// Randomize clears the grid and births each cell with probability density.
// A zero seed leaves the grid empty.
func (l *Life) Randomize(seed int64, density float64) error {
	if density < 0 || density > 1 {
		return fmt.Errorf("density %v: %w", density, ErrInvalidArgument)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.randomize(seed, density)
	return nil
}

func (l *Life) randomize(seed int64, density float64) {
	l.clear()
	if seed == 0 {
		return
	}
	rng := core.NewRNG(seed)
	for t := range l.alive {
		if rng.Chance(density) {
			l.birth(t)
		}
	}
}

// Parameters exposes the engine settings for display.
func (l *Life) Parameters() core.ParameterSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("rows", "Rows", l.dims.Rows),
				core.IntParam("cols", "Columns", l.dims.Cols),
				core.StringParam("boundary", "Boundary", l.boundary.String()),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", l.generation),
				core.IntParam("population", "Population", l.population),
			},
		},
	}}
}

func (l *Life) birth(t int) {
	if l.alive[t] {
		return
	}
	l.alive[t] = true
	l.cells[t] = 1
	l.population++
	for _, u := range l.neighbors[t] {
		l.counts[u]++
	}
}

func (l *Life) death(t int) {
	if !l.alive[t] {
		return
	}
	l.alive[t] = false
	l.cells[t] = 0
	l.population--
	for _, u := range l.neighbors[t] {
		l.counts[u]--
	}
}

func (l *Life) clear() {
	for t := range l.alive {
		l.alive[t] = false
		l.counts[t] = 0
		l.cells[t] = 0
	}
	l.population = 0
	l.generation = 0
}

// recount rebuilds every count from liveness and the current neighbor table.
func (l *Life) recount() {
	for t := range l.counts {
		l.counts[t] = 0
	}
	for t, a := range l.alive {
		if !a {
			continue
		}
		for _, u := range l.neighbors[t] {
			l.counts[u]++
		}
	}
}

func (l *Life) checkIndex(t int) error {
	if !l.dims.ContainsIndex(t) {
		return fmt.Errorf("cell %d outside [0,%d): %w", t, l.dims.Len(), ErrInvalidArgument)
	}
	return nil
}
