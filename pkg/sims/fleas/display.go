package fleas

import (
	"image/color"
	"strings"
)

// MaxShade is the occupancy at which the grid symbols and palette saturate.
const MaxShade = 10

// Symbol returns the text glyph for a cell holding count fleas: '.' when
// empty, the digit for 1-9 and '+' for ten or more.
func Symbol(count int) byte {
	switch {
	case count <= 0:
		return '.'
	case count < MaxShade:
		return byte('0' + count)
	default:
		return '+'
	}
}

// RenderGrid lays out an occupancy histogram as side rows of space separated
// symbols joined by newlines, without a trailing newline.
func RenderGrid(counts []int, side int) string {
	var b strings.Builder
	b.Grow(len(counts) * 2)
	for r := 0; r < side; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < side; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(Symbol(counts[r*side+c]))
		}
	}
	return b.String()
}

// Shade clamps an occupancy count into a palette index.
func Shade(count int) uint8 {
	if count >= MaxShade {
		return MaxShade
	}
	if count < 0 {
		return 0
	}
	return uint8(count)
}

var occupancyPalette = buildOccupancyPalette()

// Palette exposes the colors used to draw occupancy, indexed by Shade.
func Palette() []color.RGBA {
	return occupancyPalette
}

func buildOccupancyPalette() []color.RGBA {
	palette := make([]color.RGBA, MaxShade+1)
	palette[0] = color.RGBA{R: 16, G: 16, B: 24, A: 255}
	cool := color.NRGBA{R: 60, G: 120, B: 200, A: 255}
	hot := color.NRGBA{R: 250, G: 210, B: 80, A: 255}
	for i := 1; i < MaxShade; i++ {
		t := float64(i-1) / float64(MaxShade-2)
		palette[i] = toRGBA(blendColors(cool, hot, t))
	}
	palette[MaxShade] = color.RGBA{R: 230, G: 60, B: 40, A: 255}
	return palette
}

func toRGBA(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func blendColors(a, b color.NRGBA, t float64) color.NRGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
