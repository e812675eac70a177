//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"mad-life/pkg/control"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const hintText = "Click cells to toggle them on/off"

// HUD draws the playback buttons, speed slider and status text.
type HUD struct {
	layout Layout
	face   font.Face
	pixel  *ebiten.Image
}

// NewHUD constructs a HUD for the provided layout.
func NewHUD(l Layout) *HUD {
	h := &HUD{layout: l, face: basicfont.Face7x13}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Draw renders the controls for the given playback state.
func (h *HUD) Draw(screen *ebiten.Image, st control.State) {
	for _, b := range h.layout.Buttons {
		h.drawButton(screen, b.Rect, b.Label, b.Enabled(st.Running))
	}

	slider := h.layout.Slider
	h.fill(screen, slider, Gray)
	strokeRect(screen, slider, 1, Black)
	handle := h.layout.Handle(st.IntervalMs)
	h.fill(screen, handle, Indigo)
	strokeRect(screen, handle, 1, Black)

	h.drawText(screen, "Speed:", h.layout.SpeedLabelAt(), TextColor)
	h.drawText(screen, fmt.Sprintf("%dms", st.IntervalMs), h.layout.SpeedValueAt(), Indigo)
	h.drawText(screen, fmt.Sprintf("Generation: %d", st.Generation), h.layout.GenerationAt(), TextColor)
	h.drawText(screen, hintText, h.layout.HintAt(), TextColor)
}

func (h *HUD) drawButton(screen *ebiten.Image, rect image.Rectangle, label string, enabled bool) {
	bg, fg := ButtonColors(enabled)
	h.fill(screen, rect, bg)
	strokeRect(screen, rect, 2, Black)

	bounds := text.BoundString(h.face, label)
	textWidth := bounds.Dx()
	textHeight := bounds.Dy()
	x := rect.Min.X + (rect.Dx()-textWidth)/2
	y := rect.Min.Y + (rect.Dy()-textHeight)/2 + textHeight
	text.Draw(screen, label, h.face, x, y, fg)
}

// drawText places s with its top-left corner at p.
func (h *HUD) drawText(screen *ebiten.Image, s string, p image.Point, clr color.Color) {
	ascent := h.face.Metrics().Ascent.Ceil()
	text.Draw(screen, s, h.face, p.X, p.Y+ascent, clr)
}

func (h *HUD) fill(screen *ebiten.Image, rect image.Rectangle, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(h.pixel, op)
}

func strokeRect(screen *ebiten.Image, rect image.Rectangle, width float32, clr color.Color) {
	vector.StrokeRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), width, clr, false)
}
