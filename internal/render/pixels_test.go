package render

import (
	"image/color"
	"testing"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{{R: 1, G: 2, B: 3, A: 4}, {R: 9, G: 8, B: 7, A: 6}}
	cells := []uint8{0, 1, 5}
	buf := make([]byte, len(cells)*4)
	fillPaletteRGBA(buf, cells, palette)
	want := []byte{1, 2, 3, 4, 9, 8, 7, 6, 9, 8, 7, 6}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d = %d, want %d", i, buf[i], want[i])
		}
	}
}

func TestFillPaletteRGBAEmptyPalette(t *testing.T) {
	buf := []byte{1, 1, 1, 1, 1, 1, 1, 1}
	fillPaletteRGBA(buf, []uint8{2, 3}, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %d, want cleared", i, b)
		}
	}
}
