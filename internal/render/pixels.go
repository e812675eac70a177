package render

import (
	"image/color"

	"mad-life/pkg/sims/life"
)

// fillCellsRGBA paints a snapshot into buf at full resolution. Each cell
// covers cellSize×cellSize pixels; the last pixel column and row of every
// cell is left as a gutter so neighbouring cells stay visually separate.
func fillCellsRGBA(buf []byte, snap life.Snapshot, cellSize int, on, off, gutter color.Color) {
	width := snap.Cols() * cellSize
	height := snap.Rows() * cellSize
	onPx := rgba8(on)
	offPx := rgba8(off)
	gutterPx := rgba8(gutter)
	for py := 0; py < height; py++ {
		row := py / cellSize
		rowGutter := py%cellSize == cellSize-1
		for px := 0; px < width; px++ {
			col := px / cellSize
			var c [4]uint8
			switch {
			case rowGutter || px%cellSize == cellSize-1:
				c = gutterPx
			case snap.At(row, col):
				c = onPx
			default:
				c = offPx
			}
			base := (py*width + px) * 4
			copy(buf[base:base+4], c[:])
		}
	}
}

func rgba8(c color.Color) [4]uint8 {
	r, g, b, a := c.RGBA()
	return [4]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
