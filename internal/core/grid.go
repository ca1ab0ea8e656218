package core

// Coord addresses a cell by row and column.
type Coord struct {
	Row, Col int
}

// Dims describes a fixed rows x cols grid stored in row-major order.
type Dims struct {
	Rows, Cols int
}

// Len returns the number of cells in the grid.
func (d Dims) Len() int { return d.Rows * d.Cols }

// Index returns the flat index for (row, col).
func (d Dims) Index(row, col int) int { return row*d.Cols + col }

// Coord returns the (row, col) pair for a flat index.
func (d Dims) Coord(t int) Coord { return Coord{Row: t / d.Cols, Col: t % d.Cols} }

// Contains reports whether (row, col) lies inside the grid.
func (d Dims) Contains(row, col int) bool {
	return row >= 0 && row < d.Rows && col >= 0 && col < d.Cols
}

// ContainsIndex reports whether t is a valid flat index.
func (d Dims) ContainsIndex(t int) bool { return t >= 0 && t < d.Len() }

// Wrap applies toroidal wrapping to the provided coordinates.
func (d Dims) Wrap(row, col int) (int, int) {
	row = (row%d.Rows + d.Rows) % d.Rows
	col = (col%d.Cols + d.Cols) % d.Cols
	return row, col
}
