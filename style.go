package tvg

import (
	"github.com/tinyvg/tvgrender/internal/colorspace"
	"github.com/tinyvg/tvgrender/internal/geom"
)

// Style is a tagged union of the three ways a DrawCommand can be
// colored: a flat color-table lookup, a linear gradient, or a radial
// gradient. The concrete types are StyleFlat, StyleLinear, StyleRadial.
type Style interface {
	isStyle()
}

// StyleFlat resolves to a single entry of the color table.
type StyleFlat struct {
	ColorIndex int
}

func (StyleFlat) isStyle() {}

// StyleLinear interpolates between two color-table entries along the
// line from P0 to P1.
type StyleLinear struct {
	P0, P1      Point
	ColorIndex0 int
	ColorIndex1 int
}

func (StyleLinear) isStyle() {}

// StyleRadial interpolates between two color-table entries based on
// distance from P0, normalized by |P1 - P0|.
type StyleRadial struct {
	P0, P1      Point
	ColorIndex0 int
	ColorIndex1 int
}

func (StyleRadial) isStyle() {}

// sampleStyle resolves a style to a color at logical point p.
func sampleStyle(s Style, table ColorTable, p Point) Color {
	switch st := s.(type) {
	case StyleFlat:
		return table.At(st.ColorIndex)
	case StyleLinear:
		return sampleLinear(st, table, p)
	case StyleRadial:
		return sampleRadial(st, table, p)
	default:
		return Transparent
	}
}

func sampleLinear(s StyleLinear, table ColorTable, p Point) Color {
	c0 := table.At(s.ColorIndex0)
	c1 := table.At(s.ColorIndex1)

	p0, p1, pg := toGeomPoint(s.P0), toGeomPoint(s.P1), toGeomPoint(p)
	d := p1.Sub(p0)
	delta := pg.Sub(p0)

	if d.Dot(delta) <= 0 {
		return c0
	}
	if d.Dot(pg.Sub(p1)) >= 0 {
		return c1
	}

	dlen := d.Length()
	if dlen == 0 {
		return c0
	}
	t := absFloat(geom.Project(delta, d)) / dlen
	return lerpSRGB(c0, c1, t)
}

func sampleRadial(s StyleRadial, table ColorTable, p Point) Color {
	c0 := table.At(s.ColorIndex0)
	c1 := table.At(s.ColorIndex1)

	radius := s.P1.Distance(s.P0)
	if radius == 0 {
		return c0
	}
	t := p.Distance(s.P0) / radius
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return lerpSRGB(c0, c1, t)
}

// lerpSRGB interpolates two colors in gamma-aware linear-light space for
// r/g/b. Alpha is interpolated with a plain arithmetic lerp that reads
// c0.A on BOTH sides — a known quirk of the reference renderer this
// reproduces rather than the obviously-intended c1.A. Do not "fix"
// this; it is preserved deliberately to match reference output.
func lerpSRGB(c0, c1 Color, t float64) Color {
	return Color{
		R: colorspace.LerpChannel(c0.R, c1.R, t),
		G: colorspace.LerpChannel(c0.G, c1.G, t),
		B: colorspace.LerpChannel(c0.B, c1.B, t),
		A: lerpAlphaBug(c0.A, c0.A, t), // both args are c0.A: see doc comment
	}
}

// lerpAlphaBug is a plain linear interpolation, kept as its own function
// so the alpha-channel call site above reads as the deliberate quirk it
// is rather than a typo.
func lerpAlphaBug(a0, a1, t float64) float64 {
	return a0 + (a1-a0)*t
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
