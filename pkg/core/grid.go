package core

import "fmt"

// BoolGrid stores a 2D grid of alive/dead cells in row-major order.
type BoolGrid struct {
	Rows, Cols int
	data       []bool
}

// NewBoolGrid allocates a grid with every cell dead.
func NewBoolGrid(rows, cols int) (*BoolGrid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return &BoolGrid{Rows: rows, Cols: cols, data: make([]bool, rows*cols)}, nil
}

// Size returns the grid dimensions.
func (g *BoolGrid) Size() Size { return Size{Rows: g.Rows, Cols: g.Cols} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *BoolGrid) Cells() []bool { return g.data }

// Index returns the linear slice index for coordinates (row, col).
func (g *BoolGrid) Index(row, col int) int { return row*g.Cols + col }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *BoolGrid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Check returns ErrOutOfBounds, wrapped with the offending coordinate, when
// (row, col) is outside the grid.
func (g *BoolGrid) Check(row, col int) error {
	if !g.InBounds(row, col) {
		return fmt.Errorf("%w: %v outside %dx%d grid", ErrOutOfBounds, Coord{Row: row, Col: col}, g.Rows, g.Cols)
	}
	return nil
}

// At returns the state of an in-bounds cell. Off-grid coordinates read as dead.
func (g *BoolGrid) At(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	return g.data[g.Index(row, col)]
}

// Clear sets every cell to dead.
func (g *BoolGrid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}

// Count returns the number of live cells.
func (g *BoolGrid) Count() int {
	n := 0
	for _, alive := range g.data {
		if alive {
			n++
		}
	}
	return n
}
