package render

import "image/color"

// DefaultPalette maps game cell values to colours: empty, body, head, apple
// and crashed head.
var DefaultPalette = []color.RGBA{
	{R: 0x10, G: 0x12, B: 0x18, A: 0xff},
	{R: 0x3c, G: 0xb3, B: 0x71, A: 0xff},
	{R: 0xb8, G: 0xf5, B: 0x8c, A: 0xff},
	{R: 0xe0, G: 0x3c, B: 0x31, A: 0xff},
	{R: 0xff, G: 0xd1, B: 0x3b, A: 0xff},
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
