package texture

import "image/color"

// Color is an RGBA value with 8-bit channels. The zero value is fully
// transparent black.
type Color struct {
	R, G, B, A uint8
}

// Transparent is the colour of every pixel nothing has been drawn to.
var Transparent = Color{}

// RGBA builds a Color, clamping each channel into [0,255].
func RGBA(r, g, b, a int) Color {
	return Color{R: clamp8(r), G: clamp8(g), B: clamp8(b), A: clamp8(a)}
}

// Opaque builds a fully opaque Color from clamped channels.
func Opaque(r, g, b int) Color {
	return RGBA(r, g, b, 255)
}

// Gray builds a fully opaque gray with all three channels set to v.
func Gray(v int) Color {
	return RGBA(v, v, v, 255)
}

// NRGBA converts to the non-premultiplied image/color type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromNRGBA converts an image/color value back to a Color.
func FromNRGBA(c color.NRGBA) Color {
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RGB returns the colour channels as ints, for recipes that keep adjusting a
// colour after it has been clamped.
func (c Color) RGB() (r, g, b int) {
	return int(c.R), int(c.G), int(c.B)
}

func clamp8(v int) uint8 {
	return uint8(clampRange(v, 0, 255))
}

func clampRange(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
