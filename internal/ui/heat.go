package ui

import "image/color"

// fillHeatRGBA converts per-cell neighbour counts into translucent pixels,
// one pixel per cell. Cells with no live neighbours stay transparent.
func fillHeatRGBA(buf []byte, counts []uint8, tint color.RGBA) {
	for i, n := range counts {
		base := i * 4
		if n == 0 {
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
			continue
		}
		if n > 8 {
			n = 8
		}
		a := uint32(n) * 200 / 8
		// ebiten expects premultiplied alpha.
		buf[base+0] = uint8(uint32(tint.R) * a / 255)
		buf[base+1] = uint8(uint32(tint.G) * a / 255)
		buf[base+2] = uint8(uint32(tint.B) * a / 255)
		buf[base+3] = uint8(a)
	}
}
