package life

import (
	"math/rand/v2"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifegrid/internal/core"
	"lifegrid/internal/topology"
)

func TestMain(m *testing.M) {
	// Set DEBUG_TESTS=1 to see engine logs.
	if os.Getenv("DEBUG_TESTS") == "" {
		logrus.SetLevel(logrus.WarnLevel)
	}
	os.Exit(m.Run())
}

func newGrid(t *testing.T, rows, cols int, b topology.Boundary) *Life {
	t.Helper()
	l, err := New(rows, cols, b)
	require.NoError(t, err)
	return l
}

func set(t *testing.T, l *Life, cells ...[2]int) {
	t.Helper()
	for _, c := range cells {
		idx, err := l.Index(c[0], c[1])
		require.NoError(t, err)
		require.NoError(t, l.Birth(idx))
	}
}

// assertCounts recomputes every live-neighbor count from liveness and
// compares it with the engine's cached value.
func assertCounts(t *testing.T, l *Life) {
	t.Helper()
	for idx := 0; idx < l.Dims().Len(); idx++ {
		nb, err := l.Neighborhood(idx)
		require.NoError(t, err)
		want := 0
		for _, u := range nb {
			if alive, _ := l.IsAlive(u); alive {
				want++
			}
		}
		got, err := l.LiveNeighborCount(idx)
		require.NoError(t, err)
		if got != want {
			t.Fatalf("cell %d: cached count %d, actual live neighbors %d", idx, got, want)
		}
	}
	assert.Equal(t, len(l.LiveIndices()), l.Population())
}

func liveSet(l *Life) map[core.Coord]bool {
	out := map[core.Coord]bool{}
	for _, idx := range l.LiveIndices() {
		out[l.Dims().Coord(idx)] = true
	}
	return out
}

func coords(cells ...[2]int) map[core.Coord]bool {
	out := map[core.Coord]bool{}
	for _, c := range cells {
		out[core.Coord{Row: c[0], Col: c[1]}] = true
	}
	return out
}

func TestBlinkerOscillation(t *testing.T) {
	life := newGrid(t, 5, 5, topology.Periodic)
	set(t, life, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})

	life.Step()
	cells := life.Cells()
	w := life.Size().W

	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}

	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			alive := cells[row*w+col] == 1
			_, shouldBeAlive := expects[[2]int{row, col}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", row, col, alive, shouldBeAlive)
			}
		}
	}
	assertCounts(t, life)

	life.Step()
	cells = life.Cells()

	expects = map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}

	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			alive := cells[row*w+col] == 1
			_, shouldBeAlive := expects[[2]int{row, col}]
			if shouldBeAlive != alive {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", row, col, alive, shouldBeAlive)
			}
		}
	}
	assertCounts(t, life)
	assert.Equal(t, 2, life.Generation())
}

func TestBlockStillLife(t *testing.T) {
	life := newGrid(t, 5, 5, topology.Periodic)
	set(t, life, [2]int{1, 1}, [2]int{1, 2}, [2]int{2, 1}, [2]int{2, 2})

	delta := life.Advance()

	assert.True(t, delta.Empty())
	assert.Equal(t, coords([2]int{1, 1}, [2]int{1, 2}, [2]int{2, 1}, [2]int{2, 2}), liveSet(life))
	assertCounts(t, life)
}

func TestIsolatedCellDies(t *testing.T) {
	life := newGrid(t, 5, 5, topology.Periodic)
	set(t, life, [2]int{3, 3})

	delta := life.Advance()

	assert.Empty(t, life.LiveIndices())
	assert.Equal(t, []int{18}, delta.Died)
	assert.Empty(t, delta.Born)
	assertCounts(t, life)
}

func TestAdvanceReportsDelta(t *testing.T) {
	life := newGrid(t, 5, 5, topology.Periodic)
	set(t, life, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})

	delta := life.Advance()

	assert.ElementsMatch(t, []int{7, 17}, delta.Born)
	assert.ElementsMatch(t, []int{11, 13}, delta.Died)
}

func TestGliderTranslatesOnTorus(t *testing.T) {
	life := newGrid(t, 8, 8, topology.Periodic)
	_, err := life.Stamp(6, 6, PatternGlider)
	require.NoError(t, err)
	before := liveSet(life)

	for i := 0; i < 4; i++ {
		life.Step()
		assertCounts(t, life)
	}

	want := map[core.Coord]bool{}
	for c := range before {
		r, col := life.Dims().Wrap(c.Row+1, c.Col+1)
		want[core.Coord{Row: r, Col: col}] = true
	}
	assert.Equal(t, want, liveSet(life))
}

func TestFiniteBlinkerAtEdgeDiffersFromPeriodic(t *testing.T) {
	periodic := newGrid(t, 5, 5, topology.Periodic)
	finite := newGrid(t, 5, 5, topology.Finite)
	for _, l := range []*Life{periodic, finite} {
		set(t, l, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3})
		l.Step()
		assertCounts(t, l)
	}

	assert.Equal(t, coords([2]int{4, 2}, [2]int{0, 2}, [2]int{1, 2}), liveSet(periodic))
	assert.Equal(t, coords([2]int{0, 2}, [2]int{1, 2}), liveSet(finite))

	finite.Step()
	assert.Empty(t, finite.LiveIndices())
}

func TestBirthAndDeathAreIdempotent(t *testing.T) {
	life := newGrid(t, 6, 6, topology.Periodic)
	require.NoError(t, life.Birth(14))
	once := append([]uint8(nil), life.counts...)
	require.NoError(t, life.Birth(14))
	assert.Equal(t, once, life.counts)
	assert.Equal(t, 1, life.Population())

	require.NoError(t, life.Death(14))
	require.NoError(t, life.Death(14))
	assert.Equal(t, make([]uint8, 36), life.counts)
	assert.Equal(t, 0, life.Population())
}

func TestToggleTwiceRestoresState(t *testing.T) {
	life := newGrid(t, 6, 6, topology.Finite)
	set(t, life, [2]int{0, 0}, [2]int{0, 1}, [2]int{1, 1})
	alive := liveSet(life)
	counts := append([]uint8(nil), life.counts...)

	for _, idx := range []int{0, 7, 35} {
		first, err := life.Toggle(idx)
		require.NoError(t, err)
		second, err := life.Toggle(idx)
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
		assert.Equal(t, alive, liveSet(life))
		assert.Equal(t, counts, life.counts)
	}
}

func TestClearResetsEverything(t *testing.T) {
	life := newGrid(t, 7, 9, topology.Periodic)
	require.NoError(t, life.Randomize(11, 0.5))
	life.Step()
	require.NotEmpty(t, life.LiveIndices())

	life.Clear()

	assert.Empty(t, life.LiveIndices())
	for idx := 0; idx < 63; idx++ {
		n, err := life.LiveNeighborCount(idx)
		require.NoError(t, err)
		assert.Zero(t, n)
	}
	assert.Zero(t, life.Generation())
	assert.Zero(t, life.Population())
	rows, cols := life.Dimensions()
	assert.Equal(t, 7, rows)
	assert.Equal(t, 9, cols)
	assert.Equal(t, topology.Periodic, life.Boundary())
}

func TestSetBoundaryPreservesLivenessAndRecounts(t *testing.T) {
	life := newGrid(t, 6, 6, topology.Periodic)
	set(t, life, [2]int{0, 0}, [2]int{0, 5}, [2]int{5, 0}, [2]int{5, 5}, [2]int{2, 3})
	before := liveSet(life)

	require.NoError(t, life.SetBoundary(topology.Finite))
	assert.Equal(t, before, liveSet(life))
	assertCounts(t, life)
	n, _ := life.LiveNeighborCount(0)
	assert.Zero(t, n, "corners are not adjacent without wrapping")

	require.NoError(t, life.SetBoundary(topology.Periodic))
	assert.Equal(t, before, liveSet(life))
	assertCounts(t, life)
	n, _ = life.LiveNeighborCount(0)
	assert.Equal(t, 3, n)

	assert.ErrorIs(t, life.SetBoundary(topology.Boundary(7)), ErrInvalidArgument)
}

func TestInvalidArgumentsLeaveGridUntouched(t *testing.T) {
	_, err := New(0, 5, topology.Periodic)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = New(5, -1, topology.Periodic)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = New(5, 5, topology.Boundary(3))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	life := newGrid(t, 4, 4, topology.Periodic)
	set(t, life, [2]int{1, 1})
	before := append([]uint8(nil), life.counts...)

	assert.ErrorIs(t, life.Birth(16), ErrInvalidArgument)
	assert.ErrorIs(t, life.Death(-1), ErrInvalidArgument)
	_, err = life.Toggle(99)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = life.IsAlive(16)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = life.LiveNeighborCount(-3)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = life.Index(4, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.ErrorIs(t, life.BirthAll([]int{2, 3, 16}), ErrInvalidArgument)
	assert.ErrorIs(t, life.Replace([]int{0, -1}), ErrInvalidArgument)
	assert.ErrorIs(t, life.Randomize(1, 1.5), ErrInvalidArgument)

	assert.Equal(t, before, life.counts)
	assert.Equal(t, []int{5}, life.LiveIndices())
}

func TestReplaceLoadsExactly(t *testing.T) {
	life := newGrid(t, 5, 5, topology.Periodic)
	set(t, life, [2]int{0, 0}, [2]int{4, 4})

	require.NoError(t, life.Replace([]int{6, 7, 8}))

	assert.Equal(t, []int{6, 7, 8}, life.LiveIndices())
	assertCounts(t, life)
}

func TestRandomizeDeterministic(t *testing.T) {
	a := newGrid(t, 20, 30, topology.Periodic)
	b := newGrid(t, 20, 30, topology.Finite)
	require.NoError(t, a.Randomize(42, 0.3))
	require.NoError(t, b.Randomize(42, 0.3))
	assert.Equal(t, a.LiveIndices(), b.LiveIndices())
	assert.NotEmpty(t, a.LiveIndices())
	assertCounts(t, a)
	assertCounts(t, b)

	a.Reset(0)
	assert.Empty(t, a.LiveIndices())
}

func TestResetUsesDefaultDensity(t *testing.T) {
	a := newGrid(t, 16, 16, topology.Periodic)
	b := newGrid(t, 16, 16, topology.Periodic)
	set(t, a, [2]int{0, 0})
	a.Step()

	a.Reset(11)
	require.NoError(t, b.Randomize(11, DefaultDensity))
	assert.Equal(t, b.LiveIndices(), a.LiveIndices())
	assert.NotEmpty(t, a.LiveIndices())
	assert.Zero(t, a.Generation())
	assertCounts(t, a)
}

// naiveStep computes the next generation directly from liveness, the way a
// double-buffered implementation would.
func naiveStep(l *Life) map[int]bool {
	next := map[int]bool{}
	for idx := 0; idx < l.Dims().Len(); idx++ {
		nb, _ := l.Neighborhood(idx)
		n := 0
		for _, u := range nb {
			if alive, _ := l.IsAlive(u); alive {
				n++
			}
		}
		alive, _ := l.IsAlive(idx)
		if (alive && (n == 2 || n == 3)) || (!alive && n == 3) {
			next[idx] = true
		}
	}
	return next
}

func TestInvariantUnderRandomOperations(t *testing.T) {
	for _, b := range topology.Boundaries {
		t.Run(b.String(), func(t *testing.T) {
			rng := rand.New(rand.NewPCG(7, uint64(b)))
			life := newGrid(t, 9, 11, b)
			size := life.Dims().Len()
			names := PatternNames()

			for op := 0; op < 400; op++ {
				switch rng.IntN(8) {
				case 0, 1:
					require.NoError(t, life.Birth(rng.IntN(size)))
				case 2:
					require.NoError(t, life.Death(rng.IntN(size)))
				case 3:
					_, err := life.Toggle(rng.IntN(size))
					require.NoError(t, err)
				case 4:
					_, err := life.Stamp(rng.IntN(9), rng.IntN(11), names[rng.IntN(len(names))])
					require.NoError(t, err)
				case 5:
					if rng.IntN(10) == 0 {
						life.Clear()
					}
				case 6:
					want := naiveStep(life)
					life.Step()
					got := map[int]bool{}
					for _, idx := range life.LiveIndices() {
						got[idx] = true
					}
					require.Equal(t, want, got, "op %d", op)
				case 7:
					require.NoError(t, life.SetBoundary(life.Boundary().Next()))
				}
				assertCounts(t, life)
			}
		})
	}
}

func TestSmallGridsKeepInvariant(t *testing.T) {
	for _, d := range []core.Dims{{Rows: 1, Cols: 1}, {Rows: 1, Cols: 4}, {Rows: 2, Cols: 2}, {Rows: 2, Cols: 3}} {
		for _, b := range topology.Boundaries {
			life := newGrid(t, d.Rows, d.Cols, b)
			require.NoError(t, life.Randomize(3, 0.6))
			for i := 0; i < 5; i++ {
				life.Step()
				assertCounts(t, life)
			}
		}
	}
}

func TestParametersSnapshot(t *testing.T) {
	life := newGrid(t, 3, 4, topology.Finite)
	set(t, life, [2]int{1, 1})
	life.Step()

	snap := life.Parameters()
	v, ok := snap.Lookup("boundary")
	require.True(t, ok)
	assert.Equal(t, "finite", v)
	v, _ = snap.Lookup("generation")
	assert.Equal(t, "1", v)
	v, _ = snap.Lookup("cols")
	assert.Equal(t, "4", v)
}
