package life

import (
	"strings"

	"mad-life/pkg/core"
)

// Snapshot is an immutable copy of one generation handed to renderers.
type Snapshot struct {
	rows, cols int
	cells      []bool
}

func newSnapshot(g *core.BoolGrid) Snapshot {
	return Snapshot{rows: g.Rows, cols: g.Cols, cells: append([]bool(nil), g.Cells()...)}
}

// Rows returns the number of grid rows.
func (s Snapshot) Rows() int { return s.rows }

// Cols returns the number of grid columns.
func (s Snapshot) Cols() int { return s.cols }

// Size returns the grid dimensions.
func (s Snapshot) Size() core.Size { return core.Size{Rows: s.rows, Cols: s.cols} }

// At reports whether the cell at (row, col) is alive. Off-grid coordinates
// read as dead.
func (s Snapshot) At(row, col int) bool {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return false
	}
	return s.cells[row*s.cols+col]
}

// Population returns the number of live cells.
func (s Snapshot) Population() int {
	n := 0
	for _, alive := range s.cells {
		if alive {
			n++
		}
	}
	return n
}

// Alive lists the coordinates of every live cell in row-major order.
func (s Snapshot) Alive() []core.Coord {
	var out []core.Coord
	for i, alive := range s.cells {
		if alive {
			out = append(out, core.Coord{Row: i / s.cols, Col: i % s.cols})
		}
	}
	return out
}

// Equal reports whether two snapshots hold the same dimensions and cells.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.rows != o.rows || s.cols != o.cols {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// String renders the snapshot with '#' for live and '.' for dead cells, one
// line per row.
func (s Snapshot) String() string {
	var b strings.Builder
	b.Grow((s.cols + 1) * s.rows)
	for row := 0; row < s.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < s.cols; col++ {
			if s.At(row, col) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}
