package tvg

import "image/color"

// Color is a color with red, green, blue, and alpha components, each in
// [0, 1]. Channels are stored gamma-compressed (see internal/colorspace)
// and are clamped to a byte only at the final framebuffer write.
type Color struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) Color { return Color{R: r, G: g, B: b, A: 1.0} }

// RGBA creates a color from RGBA components.
func RGBA(r, g, b, a float64) Color { return Color{R: r, G: g, B: b, A: a} }

// Standard color.Color conversion, used by Pixmap to satisfy image.Image.
func (c Color) stdColor() color.Color {
	return color.NRGBA{
		R: clampByte(c.R * 255),
		G: clampByte(c.G * 255),
		B: clampByte(c.B * 255),
		A: clampByte(c.A * 255),
	}
}

func clampByte(x float64) uint8 {
	if x <= 0 {
		return 0
	}
	if x >= 255 {
		return 255
	}
	return uint8(x + 0.5)
}

// Common colors, mainly useful for tests.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = RGBA(0, 0, 0, 0)
)

// ColorTable is the immutable palette a render call resolves Style color
// indices against. It is borrowed read-only from the caller for the
// duration of a render.
type ColorTable []Color

// At returns the color at index i, or Transparent if i is out of range
// (defensive: a well-formed parser never produces an out-of-range index,
// but the renderer must not panic on an adversarial DrawCommand stream).
func (t ColorTable) At(i int) Color {
	if i < 0 || i >= len(t) {
		return Transparent
	}
	return t[i]
}
