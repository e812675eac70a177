package core

import "fmt"

// Size describes the dimensions of a simulation grid.
type Size struct {
	Rows int
	Cols int
}

// Cells returns the number of cells a grid of this size holds.
func (s Size) Cells() int { return s.Rows * s.Cols }

// Coord addresses a single cell by row and column.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }
