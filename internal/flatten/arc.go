package flatten

import (
	"math"

	"github.com/tinyvg/tvgrender/internal/geom"
)

// degenerateChordEps is the threshold below which an arc's endpoints are
// considered coincident and the arc is skipped entirely.
const degenerateChordEps = 1e-5

// circleArcPoints computes the interior + endpoint points of a circular
// arc from p0 to p1. It returns CircleDivs-1 interior points followed
// by p1 (CircleDivs points total), or skip=true if the chord is
// degenerate.
func circleArcPoints(p0, p1 geom.Point, radius float64, largeArc, turnLeft bool, stats *Stats) (pts []geom.Point, skip bool) {
	if p0.Distance(p1) < degenerateChordEps {
		stats.noteDegenerateChord()
		return nil, true
	}

	delta := p1.Sub(p0).Mul(0.5)
	m := p0.Add(delta)
	distSq := delta.LengthSquared()

	chordLen := delta.Length() * 2
	r := radius
	if chordLen > 2*r {
		r = chordLen / 2
		stats.noteOversizedArc()
	}

	// left_side = (turn_left && large_arc) || (!turn_left && !large_arc)
	leftSide := (turnLeft && largeArc) || (!turnLeft && !largeArc)

	// radiusVec is delta rotated 90 degrees, same magnitude as delta.
	radiusVec := geom.Pt(-delta.Y, delta.X)
	if !leftSide {
		radiusVec = radiusVec.Mul(-1)
	}

	t := 0.0
	if distSq > 0 {
		t = math.Sqrt(math.Max(0, (r*r)/distSq-1))
	}
	center := m.Add(radiusVec.Mul(t))

	angle := 2 * math.Asin(geom.ClampFloat(delta.Length()/r, -1, 1))
	if largeArc {
		angle = 2*math.Pi - angle
	}

	sign := 1.0
	if turnLeft {
		sign = -1.0
	}
	step := sign * angle / float64(CircleDivs)

	vec := p0.Sub(center)
	pts = make([]geom.Point, 0, CircleDivs)
	for i := 1; i <= CircleDivs-1; i++ {
		theta := step * float64(i)
		rotated := geom.Rotation2(theta).Apply(vec)
		pts = append(pts, center.Add(rotated))
	}
	pts = append(pts, p1)
	return pts, false
}

// ellipseArcPoints reduces an elliptical arc to the circular case by a
// linear transform (scale y by rx/ry, then rotate by -rotationDeg, the
// whole map divided by upScale), solves it as a circle, then maps the
// points back through the inverse transform.
func ellipseArcPoints(p0, p1 geom.Point, rx, ry, rotationDeg float64, largeArc, turnLeft bool, stats *Stats) []geom.Point {
	if ry == 0 || rx == 0 {
		return nil
	}

	radiusMin := p0.Distance(p1) / 2
	radiusLim := math.Sqrt(rx*rx + ry*ry)
	upScale := 1.0
	if radiusLim > 0 {
		upScale = math.Max(1, radiusMin/radiusLim)
	}

	ratio := rx / ry
	rot := geom.Rotation2(-rotationDeg * math.Pi / 180)
	scaleMat := geom.Scale2(1, ratio)
	m := rot.Mul(scaleMat)
	m = geom.Mat2{A: m.A / upScale, B: m.B / upScale, C: m.C / upScale, D: m.D / upScale}
	mInv := m.Invert()

	p0t := m.Apply(p0)
	p1t := m.Apply(p1)

	raw, skip := circleArcPoints(p0t, p1t, rx*upScale, largeArc, turnLeft, stats)
	if skip {
		return nil
	}

	out := make([]geom.Point, len(raw))
	for i, pt := range raw {
		out[i] = mInv.Apply(pt)
	}
	return out
}
