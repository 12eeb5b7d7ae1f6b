// Package capsule rasterizes stroked line segments as rounded capsules
// with independent start/end radii, using an exact signed-distance
// function (no anti-aliasing; AA is achieved externally by
// super-sampling).
package capsule

import (
	"math"

	"github.com/tinyvg/tvgrender/internal/geom"
)

// hairlineFloor is the minimum capsule radius, guaranteeing
// single-pixel visibility for zero-width hairlines.
const hairlineFloor = 0.35

// Radius converts a stroke width to a capsule end radius.
func Radius(width float64) float64 {
	return math.Max(hairlineFloor, width/2)
}

// Distance computes the signed distance from p to the uneven capsule
// spanning pa (radius ra) to pb (radius rb). Negative inside, positive
// outside, zero on the boundary. This reproduces the Íñigo Quílez
// uneven-capsule formula verbatim.
func Distance(p, pa, pb geom.Point, ra, rb float64) float64 {
	pp := p.Sub(pa)
	pbv := pb.Sub(pa)
	h := pbv.Dot(pbv)
	if h < 1e-12 {
		// Degenerate (zero-length) segment: fall back to a single
		// circle of the larger radius.
		r := math.Max(ra, rb)
		return p.Distance(pa) - r
	}

	qx := pp.Dot(geom.Pt(pbv.Y, -pbv.X)) / h
	qy := pp.Dot(pbv) / h
	qx = math.Abs(qx)

	b := ra - rb
	cx := math.Sqrt(math.Max(0, h-b*b))
	cy := b

	k := cx*qy - cy*qx // cross(c, q)
	m := cx*qx + cy*qy // dot(c, q)
	n := qx*qx + qy*qy

	switch {
	case k < 0:
		return math.Sqrt(h*n) - ra
	case k > cx:
		return math.Sqrt(h*(n+1-2*qy)) - rb
	default:
		return m - ra
	}
}

// StrokeLine rasterizes one capsule, calling plot(x, y) for every
// covered framebuffer pixel. The bounding box is expanded by the
// larger of the two widths before scaling.
func StrokeLine(pa, pb geom.Point, widthStart, widthEnd, scaleX, scaleY float64, fbWidth, fbHeight int, plot func(x, y int)) {
	ra := Radius(widthStart)
	rb := Radius(widthEnd)
	expand := math.Max(widthStart, widthEnd)

	minX := math.Min(pa.X, pb.X) - expand
	maxX := math.Max(pa.X, pb.X) + expand
	minY := math.Min(pa.Y, pb.Y) - expand
	maxY := math.Max(pa.Y, pb.Y) + expand

	x0 := clampInt(int(math.Floor(minX*scaleX)), 0, fbWidth-1)
	x1 := clampInt(int(math.Ceil(maxX*scaleX)), 0, fbWidth-1)
	y0 := clampInt(int(math.Floor(minY*scaleY)), 0, fbHeight-1)
	y1 := clampInt(int(math.Ceil(maxY*scaleY)), 0, fbHeight-1)
	if x1 < x0 || y1 < y0 {
		return
	}

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			p := geom.Pt((float64(x)+0.5)/scaleX, (float64(y)+0.5)/scaleY)
			if Distance(p, pa, pb, ra, rb) <= 0 {
				plot(x, y)
			}
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
