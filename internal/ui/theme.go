package ui

import "image/color"

var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black      = color.RGBA{A: 255}
	Gray       = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	Indigo     = color.RGBA{R: 102, G: 126, B: 234, A: 255}
	GridBG     = color.RGBA{R: 221, G: 221, B: 221, A: 255}
	TextColor  = color.RGBA{R: 85, G: 85, B: 85, A: 255}
	HeatColor  = color.RGBA{R: 234, G: 102, B: 102, A: 255}
	Background = White
)

// ButtonColors returns the fill and caption colors for a button.
func ButtonColors(enabled bool) (fill, caption color.RGBA) {
	if enabled {
		return Indigo, White
	}
	return Gray, TextColor
}
