package ui

import (
	"image/color"
	"testing"
)

func TestFillHeatRGBA(t *testing.T) {
	counts := []uint8{0, 4, 8, 9}
	buf := make([]byte, 4*len(counts))
	for i := range buf {
		buf[i] = 0xff
	}
	fillHeatRGBA(buf, counts, color.RGBA{R: 255, A: 255})

	if buf[3] != 0 || buf[0] != 0 {
		t.Fatalf("zero count should be transparent, got %v", buf[0:4])
	}
	if buf[7] != 100 || buf[4] != 100 {
		t.Fatalf("four neighbours should be half strength, got %v", buf[4:8])
	}
	if buf[11] != 200 || buf[15] != 200 {
		t.Fatalf("eight or more neighbours should saturate, got %v %v", buf[8:12], buf[12:16])
	}
	if buf[9] != 0 || buf[10] != 0 {
		t.Fatalf("tint channels leaked: %v", buf[8:12])
	}
}
