package tvg

import (
	"errors"
	"fmt"

	"github.com/tinyvg/tvgrender/internal/capsule"
	"github.com/tinyvg/tvgrender/internal/fill"
	"github.com/tinyvg/tvgrender/internal/flatten"
	"github.com/tinyvg/tvgrender/internal/geom"
)

// Render dispatches a single DrawCommand against framebuffer, resolving
// styles through table and mapping header's logical coordinate system
// onto the framebuffer's pixel dimensions.
func Render(framebuffer Framebuffer, header Header, table ColorTable, command DrawCommand, opts ...RenderOption) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	scaleX := float64(framebuffer.Width()) / float64(header.Width)
	scaleY := float64(framebuffer.Height()) / float64(header.Height)

	p := &painter{
		fb:     framebuffer,
		table:  table,
		scaleX: scaleX,
		scaleY: scaleY,
		opts:   o,
	}
	return p.dispatch(command)
}

// painter bundles the scale factors and destination for one Render call.
type painter struct {
	fb             Framebuffer
	table          ColorTable
	scaleX, scaleY float64
	opts           renderOptions
}

func (p *painter) dispatch(command DrawCommand) error {
	switch c := command.(type) {
	case FillPolygon:
		return p.fillPolygon(c)
	case FillRectangles:
		return p.fillRectangles(c)
	case FillPath:
		return p.fillPath(c)
	case DrawLines:
		return p.drawLines(c)
	case DrawLineStrip:
		return p.drawLineStrip(c)
	case DrawLineLoop:
		return p.drawLineLoop(c)
	case DrawLinePath:
		return p.drawLinePath(c)
	case OutlineFillPolygon:
		return p.outlineFillPolygon(c)
	case OutlineFillRectangles:
		return p.outlineFillRectangles(c)
	case OutlineFillPath:
		return p.outlineFillPath(c)
	default:
		return ErrUnknownCommand
	}
}

func (p *painter) fillPolygon(c FillPolygon) error {
	poly := toGeomPoints(c.Vertices)
	p.fillPolylines(c.Style, fill.NonZero, [][]geom.Point{poly})
	return nil
}

func (p *painter) fillRectangles(c FillRectangles) error {
	for _, r := range c.Rectangles {
		poly := rectPolygon(r)
		p.fillPolylines(c.Style, fill.NonZero, [][]geom.Point{poly})
	}
	return nil
}

func (p *painter) fillPath(c FillPath) error {
	scratch, err := p.flattenPath(c.Path)
	if err != nil {
		return err
	}
	p.fillPolylines(c.Style, fill.EvenOdd, polylinesOf(scratch))
	return nil
}

func (p *painter) drawLines(c DrawLines) error {
	for _, ln := range c.Lines {
		p.strokeLine(c.Style, c.LineWidth, c.LineWidth, ln.Start, ln.End)
	}
	return nil
}

func (p *painter) drawLineStrip(c DrawLineStrip) error {
	p.strokeChain(c.Style, c.LineWidth, c.Vertices, false)
	return nil
}

func (p *painter) drawLineLoop(c DrawLineLoop) error {
	p.strokeChain(c.Style, c.LineWidth, c.Vertices, true)
	return nil
}

func (p *painter) drawLinePath(c DrawLinePath) error {
	scratch, err := p.flattenPath(c.Path)
	if err != nil {
		return err
	}
	for _, poly := range polylinesOf(scratch) {
		p.strokePolyline(c.Style, c.LineWidth, c.LineWidth, poly, false)
	}
	return nil
}

func (p *painter) outlineFillPolygon(c OutlineFillPolygon) error {
	poly := toGeomPoints(c.Vertices)
	p.fillPolylines(c.FillStyle, fill.NonZero, [][]geom.Point{poly})
	p.strokeChain(c.LineStyle, c.LineWidth, c.Vertices, true)
	return nil
}

func (p *painter) outlineFillRectangles(c OutlineFillRectangles) error {
	for _, r := range c.Rectangles {
		poly := rectPolygon(r)
		p.fillPolylines(c.FillStyle, fill.NonZero, [][]geom.Point{poly})
		// TL -> TR -> BR -> BL -> TL traversal order.
		for i := 0; i < 4; i++ {
			a, b := poly[i], poly[(i+1)%4]
			capsule.StrokeLine(a, b, c.LineWidth, c.LineWidth, p.scaleX, p.scaleY, p.fb.Width(), p.fb.Height(), p.plotter(c.LineStyle))
		}
	}
	return nil
}

func (p *painter) outlineFillPath(c OutlineFillPath) error {
	scratch, err := p.flattenPath(c.Path)
	if err != nil {
		return err
	}
	for _, poly := range polylinesOf(scratch) {
		p.fillPolylines(c.FillStyle, fill.NonZero, [][]geom.Point{poly})
		p.strokePolyline(c.LineStyle, c.LineWidth, c.LineWidth, poly, false)
	}
	return nil
}

// --- shared helpers ---

func (p *painter) flattenPath(path Path) (*flatten.Scratch, error) {
	segs := convertPath(path)
	scratch := flatten.NewScratch(p.opts.maxPoints, p.opts.maxSubpaths)
	stats := &flatten.Stats{}
	if err := flatten.Flatten(scratch, segs, stats); err != nil {
		return nil, wrapFlattenErr(err)
	}
	p.logStats(stats)
	return scratch, nil
}

func (p *painter) logStats(stats *flatten.Stats) {
	l := p.opts.logger
	if l == nil {
		return
	}
	if stats.DegenerateChordSkipped {
		l.Warn("skipped degenerate arc chord")
	}
	if stats.OversizedArcRadius {
		l.Warn("corrected oversized arc radius upward to chord/2")
	}
	l.Debug("flatten scratch high-water mark",
		"points", stats.PointHighWaterMark,
		"subpaths", stats.SubpathHighWaterMark)
}

func (p *painter) fillPolylines(style Style, rule fill.Rule, polylines [][]geom.Point) {
	fill.Fill(polylines, p.scaleX, p.scaleY, p.fb.Width(), p.fb.Height(), rule, p.plotter(style))
}

func (p *painter) strokeLine(style Style, widthStart, widthEnd float64, a, b Point) {
	capsule.StrokeLine(toGeomPoint(a), toGeomPoint(b), widthStart, widthEnd, p.scaleX, p.scaleY, p.fb.Width(), p.fb.Height(), p.plotter(style))
}

// strokeChain strokes consecutive pairs of vertices, optionally closing
// the loop with an edge from the last vertex back to the first.
func (p *painter) strokeChain(style Style, width float64, vertices []Point, closed bool) {
	p.strokePolyline(style, width, width, toGeomPoints(vertices), closed)
}

func (p *painter) strokePolyline(style Style, widthStart, widthEnd float64, poly []geom.Point, closed bool) {
	for i := 1; i < len(poly); i++ {
		capsule.StrokeLine(poly[i-1], poly[i], widthStart, widthEnd, p.scaleX, p.scaleY, p.fb.Width(), p.fb.Height(), p.plotter(style))
	}
	if closed && len(poly) >= 2 {
		capsule.StrokeLine(poly[len(poly)-1], poly[0], widthStart, widthEnd, p.scaleX, p.scaleY, p.fb.Width(), p.fb.Height(), p.plotter(style))
	}
}

// plotter returns a callback that samples style at the pixel's logical
// center and writes the result to the framebuffer.
func (p *painter) plotter(style Style) func(x, y int) {
	return func(x, y int) {
		logical := Point{
			X: (float64(x) + 0.5) / p.scaleX,
			Y: (float64(y) + 0.5) / p.scaleY,
		}
		p.fb.SetPixel(x, y, sampleStyle(style, p.table, logical))
	}
}

func polylinesOf(s *flatten.Scratch) [][]geom.Point {
	out := make([][]geom.Point, len(s.Subpaths))
	for i := range s.Subpaths {
		out[i] = s.Polyline(i)
	}
	return out
}

func rectPolygon(r Rectangle) []geom.Point {
	c := r.corners()
	return []geom.Point{
		toGeomPoint(c[0]), toGeomPoint(c[1]), toGeomPoint(c[2]), toGeomPoint(c[3]),
	}
}

func wrapFlattenErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, flatten.ErrOutOfScratch):
		return fmt.Errorf("render: %w", ErrOutOfScratch)
	case errors.Is(err, flatten.ErrInvalidGeometry):
		return fmt.Errorf("render: %w", ErrInvalidGeometry)
	default:
		return err
	}
}

// --- boundary conversions between tvg's public types and internal/geom,
// internal/flatten. Kept together here in one place. ---

func toGeomPoint(p Point) geom.Point { return geom.Pt(p.X, p.Y) }

func toGeomPoints(pts []Point) []geom.Point {
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[i] = toGeomPoint(p)
	}
	return out
}

func convertPath(path Path) []flatten.Segment {
	segs := make([]flatten.Segment, len(path.Segments))
	for i, s := range path.Segments {
		segs[i] = flatten.Segment{
			Start:    toGeomPoint(s.Start),
			Commands: convertCommands(s.Commands),
		}
	}
	return segs
}

func convertCommands(cmds []PathCommand) []flatten.Command {
	out := make([]flatten.Command, len(cmds))
	for i, cmd := range cmds {
		switch v := cmd.(type) {
		case Line:
			out[i] = flatten.CmdLine{To: toGeomPoint(v.To)}
		case Horiz:
			out[i] = flatten.CmdHoriz{X: v.X}
		case Vert:
			out[i] = flatten.CmdVert{Y: v.Y}
		case Bezier:
			out[i] = flatten.CmdBezier{C0: toGeomPoint(v.C0), C1: toGeomPoint(v.C1), P1: toGeomPoint(v.P1)}
		case QBezier:
			out[i] = flatten.CmdQBezier{C: toGeomPoint(v.C), P1: toGeomPoint(v.P1)}
		case ArcCircle:
			out[i] = flatten.CmdArcCircle{
				Target:   toGeomPoint(v.Target),
				Radius:   v.Radius,
				LargeArc: v.LargeArc,
				Sweep:    v.Sweep,
			}
		case ArcEllipse:
			out[i] = flatten.CmdArcEllipse{
				Target:      toGeomPoint(v.Target),
				RadiusX:     v.RadiusX,
				RadiusY:     v.RadiusY,
				RotationDeg: v.RotationDeg,
				LargeArc:    v.LargeArc,
				Sweep:       v.Sweep,
			}
		case Close:
			out[i] = flatten.CmdClose{}
		}
	}
	return out
}
