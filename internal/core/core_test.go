package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDimsIndexAndCoordAgree(t *testing.T) {
	d := Dims{Rows: 4, Cols: 7}
	for row := 0; row < d.Rows; row++ {
		for col := 0; col < d.Cols; col++ {
			idx := d.Index(row, col)
			if got := d.Coord(idx); got != (Coord{Row: row, Col: col}) {
				t.Fatalf("Coord(%d) = %+v, want (%d,%d)", idx, got, row, col)
			}
		}
	}
	assert.Equal(t, 28, d.Len())
	assert.True(t, d.ContainsIndex(27))
	assert.False(t, d.ContainsIndex(28))
	assert.False(t, d.ContainsIndex(-1))
	assert.False(t, d.Contains(4, 0))
	assert.False(t, d.Contains(0, -1))
}

func TestDimsWrap(t *testing.T) {
	d := Dims{Rows: 5, Cols: 3}
	r, c := d.Wrap(-1, 3)
	assert.Equal(t, 4, r)
	assert.Equal(t, 0, c)
	r, c = d.Wrap(11, -7)
	assert.Equal(t, 1, r)
	assert.Equal(t, 2, c)
}

func TestFixedStepHonorsMinimumDelay(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(100 * time.Millisecond)
	fs.now = func() time.Time { return clock }

	assert.True(t, fs.ShouldStep(), "first call fires immediately")
	clock = clock.Add(50 * time.Millisecond)
	assert.False(t, fs.ShouldStep())
	clock = clock.Add(50 * time.Millisecond)
	assert.True(t, fs.ShouldStep())

	assert.False(t, fs.SetDelay(0))
	assert.False(t, fs.SetDelay(-time.Second))
	assert.Equal(t, 100*time.Millisecond, fs.Delay())

	assert.True(t, fs.SetDelay(time.Second))
	clock = clock.Add(500 * time.Millisecond)
	assert.False(t, fs.ShouldStep())
	fs.Rearm()
	assert.True(t, fs.ShouldStep())
}

func TestRegistryNamesSorted(t *testing.T) {
	saved := sims
	defer func() { sims = saved }()
	sims = map[string]Factory{}

	noop := func(map[string]string) (Sim, error) { return nil, nil }
	Register("zeta", noop)
	Register("alpha", noop)
	Register("", noop)
	Register("nil", nil)

	assert.Equal(t, []string{"alpha", "zeta"}, SimNames())
}

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "Grid", Params: []Parameter{IntParam("rows", "Rows", 8)}},
		{Name: "Rule", Params: []Parameter{StringParam("boundary", "Boundary", "finite")}},
	}}
	v, ok := snap.Lookup("boundary")
	assert.True(t, ok)
	assert.Equal(t, "finite", v)
	v, ok = snap.Lookup("rows")
	assert.True(t, ok)
	assert.Equal(t, "8", v)
	_, ok = snap.Lookup("missing")
	assert.False(t, ok)
}
