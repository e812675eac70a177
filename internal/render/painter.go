//go:build ebiten

package render

import (
	"image"
	"image/color"

	"mad-life/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter uploads grid snapshots into a single RGBA image and draws it.
type GridPainter struct {
	rows, cols int
	cellSize   int
	img        *ebiten.Image
	buf        []byte

	On, Off, Gutter color.Color
}

// NewGridPainter allocates a painter for a rows×cols grid.
func NewGridPainter(rows, cols, cellSize int) *GridPainter {
	w, h := cols*cellSize, rows*cellSize
	return &GridPainter{
		rows:     rows,
		cols:     cols,
		cellSize: cellSize,
		img:      ebiten.NewImage(w, h),
		buf:      make([]byte, 4*w*h),
		On:       color.Black,
		Off:      color.White,
		Gutter:   color.Gray{Y: 0xdd},
	}
}

// Blit paints snap with its top-left corner at origin, framed by a one pixel
// border in the gutter color.
func (gp *GridPainter) Blit(dst *ebiten.Image, snap life.Snapshot, origin image.Point) {
	if snap.Rows() != gp.rows || snap.Cols() != gp.cols {
		return
	}
	w, h := gp.img.Bounds().Dx(), gp.img.Bounds().Dy()
	vector.DrawFilledRect(dst, float32(origin.X-1), float32(origin.Y-1), float32(w+2), float32(h+2), gp.Gutter, false)

	fillCellsRGBA(gp.buf, snap, gp.cellSize, gp.On, gp.Off, gp.Gutter)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(origin.X), float64(origin.Y))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.img.Bounds().Dx(), gp.img.Bounds().Dy() }
