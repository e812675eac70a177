//go:build ebiten

package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type neighborCounter interface {
	NeighborCounts(dst []uint8) []uint8
}

// Overlay optionally tints every cell by its live-neighbour count.
type Overlay struct {
	layout Layout
	show   bool

	img    *ebiten.Image
	buf    []byte
	counts []uint8
}

// NewOverlay constructs a hidden overlay for the provided layout.
func NewOverlay(l Layout) *Overlay {
	return &Overlay{
		layout: l,
		img:    ebiten.NewImage(l.Cols, l.Rows),
		buf:    make([]byte, 4*l.Rows*l.Cols),
	}
}

// Update toggles visibility on the 1 key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.show = !o.show
	}
}

// Visible reports whether the overlay is drawn.
func (o *Overlay) Visible() bool { return o.show }

// Draw paints the neighbour heat map over the grid when visible.
func (o *Overlay) Draw(screen *ebiten.Image, src neighborCounter) {
	if !o.show || src == nil {
		return
	}
	o.counts = src.NeighborCounts(o.counts)
	if len(o.counts) != o.layout.Rows*o.layout.Cols {
		return
	}
	fillHeatRGBA(o.buf, o.counts, HeatColor)
	o.img.WritePixels(o.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.layout.CellSize), float64(o.layout.CellSize))
	op.GeoM.Translate(float64(o.layout.Grid.Min.X), float64(o.layout.Grid.Min.Y))
	screen.DrawImage(o.img, op)
}
