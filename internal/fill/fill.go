// Package fill implements the scanline polygon filler: winding-rule
// fill of one or more polylines via horizontal ray crossings, bounded
// by an integer bounding box clipped to the framebuffer.
package fill

import (
	"math"

	"github.com/tinyvg/tvgrender/internal/geom"
)

// Rule selects how per-polyline inside/outside parity combines across
// multiple polylines.
type Rule int

const (
	// NonZero fills a pixel covered by at least one polyline.
	NonZero Rule = iota
	// EvenOdd fills a pixel covered by an odd number of polylines.
	EvenOdd
)

// Fill iterates the pixel-center-sampled bounding box of polylines and
// invokes plot(x, y) for every pixel the rule selects. polylines are in
// logical coordinates; scaleX/scaleY map logical to framebuffer pixels.
//
// Despite the name, this counts winding parity per polyline (not signed
// turning number): each polyline independently contributes 0 or 1 to a
// global inside count, which the rule then tests. This is correct for
// same-direction outer loops with opposite-direction holes; it is not a
// conventional signed non-zero rule for arbitrary mixed-direction
// sub-paths.
func Fill(polylines [][]geom.Point, scaleX, scaleY float64, fbWidth, fbHeight int, rule Rule, plot func(x, y int)) {
	x0, y0, x1, y1, ok := boundingBox(polylines, scaleX, scaleY, fbWidth, fbHeight)
	if !ok {
		return
	}

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			p := geom.Pt((float64(x)+0.5)/scaleX, (float64(y)+0.5)/scaleY)

			insideCount := 0
			for _, poly := range polylines {
				if len(poly) < 2 {
					continue
				}
				if polylineContains(poly, p) {
					insideCount++
				}
			}

			var paint bool
			switch rule {
			case NonZero:
				paint = insideCount > 0
			case EvenOdd:
				paint = insideCount%2 == 1
			}
			if paint {
				plot(x, y)
			}
		}
	}
}

func boundingBox(polylines [][]geom.Point, scaleX, scaleY float64, fbWidth, fbHeight int) (x0, y0, x1, y1 int, ok bool) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	any := false

	for _, poly := range polylines {
		for _, p := range poly {
			any = true
			x, y := p.X*scaleX, p.Y*scaleY
			minX, maxX = math.Min(minX, x), math.Max(maxX, x)
			minY, maxY = math.Min(minY, y), math.Max(maxY, y)
		}
	}
	if !any {
		return 0, 0, 0, 0, false
	}

	x0 = clampInt(int(math.Floor(minX)), 0, fbWidth-1)
	x1 = clampInt(int(math.Ceil(maxX)), 0, fbWidth-1)
	y0 = clampInt(int(math.Floor(minY)), 0, fbHeight-1)
	y1 = clampInt(int(math.Ceil(maxY)), 0, fbHeight-1)
	if x1 < x0 || y1 < y0 {
		return 0, 0, 0, 0, false
	}
	return x0, y0, x1, y1, true
}

// polylineContains reports whether p is inside poly by ray-crossing
// parity: edges are (points[j], points[i]) with j = i-1 (mod N),
// closing the polyline implicitly.
func polylineContains(poly []geom.Point, p geom.Point) bool {
	inside := false
	n := len(poly)
	for i := 0; i < n; i++ {
		j := (i - 1 + n) % n
		p0, p1 := poly[j], poly[i]
		if (p0.Y > p.Y) != (p1.Y > p.Y) {
			xIntersect := (p1.X-p0.X)*(p.Y-p0.Y)/(p1.Y-p0.Y) + p0.X
			if p.X < xIntersect {
				inside = !inside
			}
		}
	}
	return inside
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
