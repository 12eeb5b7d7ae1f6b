package flatten

import "github.com/tinyvg/tvgrender/internal/geom"

// BezierDivs is the fixed subdivision count for cubic and quadratic
// Bézier commands. Tunable, but must match the encoder's expectations.
const BezierDivs = 16

// CircleDivs is the fixed subdivision count for circular/elliptical
// arcs.
const CircleDivs = 100

// Flatten reduces a sequence of segments to polylines written into
// scratch. Each segment produces exactly one sub-path (one Span),
// regardless of how many points its commands' dedup filter discards.
func Flatten(scratch *Scratch, segments []Segment, stats *Stats) error {
	for _, seg := range segments {
		if err := scratch.StartSubpath(seg.Start); err != nil {
			return err
		}
		cursor := seg.Start
		for _, cmd := range seg.Commands {
			next, err := applyCommand(scratch, seg.Start, cursor, cmd, stats)
			if err != nil {
				return err
			}
			cursor = next
		}
		scratch.FinishSubpath()
		stats.noteHighWaterMark(len(scratch.Points), len(scratch.Subpaths))
	}
	return nil
}

func applyCommand(scratch *Scratch, segStart, cursor geom.Point, cmd Command, stats *Stats) (geom.Point, error) {
	switch c := cmd.(type) {
	case CmdLine:
		if err := scratch.Append(c.To); err != nil {
			return cursor, err
		}
		return c.To, nil

	case CmdHoriz:
		next := geom.Pt(c.X, cursor.Y)
		if err := scratch.Append(next); err != nil {
			return cursor, err
		}
		return next, nil

	case CmdVert:
		next := geom.Pt(cursor.X, c.Y)
		if err := scratch.Append(next); err != nil {
			return cursor, err
		}
		return next, nil

	case CmdBezier:
		for i := 1; i <= BezierDivs; i++ {
			t := float64(i) / float64(BezierDivs)
			pt := cubicBezierAt(cursor, c.C0, c.C1, c.P1, t)
			if err := scratch.Append(pt); err != nil {
				return cursor, err
			}
		}
		return c.P1, nil

	case CmdQBezier:
		for i := 1; i <= BezierDivs; i++ {
			t := float64(i) / float64(BezierDivs)
			pt := quadBezierAt(cursor, c.C, c.P1, t)
			if err := scratch.Append(pt); err != nil {
				return cursor, err
			}
		}
		return c.P1, nil

	case CmdArcCircle:
		pts, skip := circleArcPoints(cursor, c.Target, c.Radius, c.LargeArc, c.Sweep, stats)
		if !skip {
			for _, pt := range pts {
				if err := scratch.Append(pt); err != nil {
					return cursor, err
				}
			}
		}
		return c.Target, nil

	case CmdArcEllipse:
		pts := ellipseArcPoints(cursor, c.Target, c.RadiusX, c.RadiusY, c.RotationDeg, c.LargeArc, c.Sweep, stats)
		for _, pt := range pts {
			if err := scratch.Append(pt); err != nil {
				return cursor, err
			}
		}
		return c.Target, nil

	case CmdClose:
		if err := scratch.Append(segStart); err != nil {
			return cursor, err
		}
		return cursor, nil

	default:
		return cursor, nil
	}
}

// cubicBezierAt evaluates a cubic Bézier curve at t via repeated linear
// interpolation (de Casteljau reduction).
func cubicBezierAt(p0, c0, c1, p1 geom.Point, t float64) geom.Point {
	a := p0.Lerp(c0, t)
	b := c0.Lerp(c1, t)
	c := c1.Lerp(p1, t)
	d := a.Lerp(b, t)
	e := b.Lerp(c, t)
	return d.Lerp(e, t)
}

// quadBezierAt evaluates a quadratic Bézier curve at t via repeated
// linear interpolation.
func quadBezierAt(p0, c, p1 geom.Point, t float64) geom.Point {
	a := p0.Lerp(c, t)
	b := c.Lerp(p1, t)
	return a.Lerp(b, t)
}
