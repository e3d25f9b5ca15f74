package render

import "image/color"

// fillPaletteRGBA converts shade indices into RGBA pixels in buf. Shades past
// the end of the palette use its last color; an empty palette clears the
// buffer to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		col := palette[min(int(c), last)]
		px := buf[i*4 : i*4+4]
		px[0], px[1], px[2], px[3] = col.R, col.G, col.B, col.A
	}
}
