package tvg

import (
	"image/color"
	"testing"
)

// Verify at compile time that Color's standard conversion yields a color.Color.
var _ color.Color = Color{}.stdColor()

func TestRGBA_ColorInterface(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		wantR, wantG, wantB, wantA uint32
	}{
		{
			name:  "opaque black",
			c:     Black,
			wantR: 0, wantG: 0, wantB: 0, wantA: 65535,
		},
		{
			name:  "opaque white",
			c:     White,
			wantR: 65535, wantG: 65535, wantB: 65535, wantA: 65535,
		},
		{
			name:  "opaque red",
			c:     Red,
			wantR: 65535, wantG: 0, wantB: 0, wantA: 65535,
		},
		{
			name:  "transparent",
			c:     RGBA(0, 0, 0, 0),
			wantR: 0, wantG: 0, wantB: 0, wantA: 0,
		},
		{
			// Alpha 0.5 is stored as the byte 128 (0x8080 in 16 bits).
			name:  "50% alpha red",
			c:     RGBA(1, 0, 0, 0.5),
			wantR: 32896, wantG: 0, wantB: 0, wantA: 32896,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.stdColor().RGBA()
			// Allow ±1 tolerance for floating point
			if diff(r, tt.wantR) > 1 || diff(g, tt.wantG) > 1 || diff(b, tt.wantB) > 1 || diff(a, tt.wantA) > 1 {
				t.Errorf("RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func TestRGBA_SetColor(t *testing.T) {
	var fb Framebuffer = NewPixmap(10, 10)
	// This must compile — proves RGBA-built colors can be written to a Framebuffer
	fb.SetPixel(0, 0, Black)
	fb.SetPixel(1, 0, Red)
	fb.SetPixel(2, 0, RGBA(0x34/255.0, 0x98/255.0, 0xdb/255.0, 1))
}

func TestRGBA_Roundtrip(t *testing.T) {
	// Color → color.Color (premultiplied 16-bit) → Color
	original := RGBA(0.8, 0.3, 0.5, 0.9)
	r, g, b, a := original.stdColor().RGBA()
	roundtripped := RGBA(
		float64(r)/float64(a),
		float64(g)/float64(a),
		float64(b)/float64(a),
		float64(a)/0xffff,
	)
	// stdColor keeps 8 bits per channel, so allow one byte step.
	const tolerance = 1.0 / 255
	if absDiff(original.R, roundtripped.R) > tolerance ||
		absDiff(original.G, roundtripped.G) > tolerance ||
		absDiff(original.B, roundtripped.B) > tolerance ||
		absDiff(original.A, roundtripped.A) > tolerance {
		t.Errorf("roundtrip: %v → %v", original, roundtripped)
	}
}

func diff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
