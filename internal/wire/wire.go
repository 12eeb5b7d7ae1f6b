// Package wire implements this repository's own binary encoding for a
// Header, color table, and DrawCommand stream. The real TinyVG
// container format is treated as an external, out-of-scope collaborator;
// this package is a concrete stand-in for that collaborator so
// cmd/tvg-render and round-trip tests have something real to read and
// write. It is explicitly NOT a byte-for-byte implementation of the
// TinyVG wire format — tag values and layout are this repository's own.
package wire

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"math"

	"github.com/tinyvg/tvgrender"
)

// magic identifies a stream written by this package.
const magic uint32 = 0x54564752 // "TVGR"

// ErrBadMagic is returned when a stream does not begin with the
// expected magic number.
var ErrBadMagic = errors.New("wire: bad magic number")

// ErrUnknownTag is returned when a decoded tag byte does not match any
// known Style, PathCommand, or DrawCommand variant.
var ErrUnknownTag = errors.New("wire: unknown tag byte")

// styleKind and drawKind tag bytes. Order is this package's own and
// unrelated to any external format's encoding.
const (
	styleFlat byte = iota
	styleLinear
	styleRadial
)

const (
	cmdLine byte = iota
	cmdHoriz
	cmdVert
	cmdBezier
	cmdQBezier
	cmdArcCircle
	cmdArcEllipse
	cmdClose
)

const (
	drawFillPolygon byte = iota
	drawFillRectangles
	drawFillPath
	drawDrawLines
	drawDrawLineStrip
	drawDrawLineLoop
	drawDrawLinePath
	drawOutlineFillPolygon
	drawOutlineFillRectangles
	drawOutlineFillPath
)

// WriteStream encodes header, table, and commands to w.
func WriteStream(w io.Writer, header tvg.Header, table tvg.ColorTable, commands []tvg.DrawCommand) error {
	bw := bufio.NewWriter(w)
	enc := &encoder{w: bw}

	enc.u32(magic)
	enc.u32(header.Width)
	enc.u32(header.Height)
	enc.u32(uint32(len(table)))
	for _, c := range table {
		enc.color(c)
	}
	enc.u32(uint32(len(commands)))
	for _, c := range commands {
		enc.drawCommand(c)
	}

	if enc.err != nil {
		return enc.err
	}
	return bw.Flush()
}

// ReadStream decodes a header, color table, and command stream from r.
func ReadStream(r io.Reader) (tvg.Header, tvg.ColorTable, []tvg.DrawCommand, error) {
	dec := &decoder{r: bufio.NewReader(r)}

	if got := dec.u32(); got != magic {
		return tvg.Header{}, nil, nil, ErrBadMagic
	}
	header := tvg.Header{Width: dec.u32(), Height: dec.u32()}

	n := dec.u32()
	table := make(tvg.ColorTable, n)
	for i := range table {
		table[i] = dec.color()
	}

	m := dec.u32()
	commands := make([]tvg.DrawCommand, m)
	for i := range commands {
		commands[i] = dec.drawCommand()
	}

	return header, table, commands, dec.err
}

// --- encoder ---

type encoder struct {
	w   *bufio.Writer
	err error
}

func (e *encoder) u32(v uint32) {
	if e.err != nil {
		return
	}
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, e.err = e.w.Write(buf[:])
}

func (e *encoder) f32(v float64) {
	e.u32(math.Float32bits(float32(v)))
}

func (e *encoder) byteVal(b byte) {
	if e.err != nil {
		return
	}
	e.err = e.w.WriteByte(b)
}

func (e *encoder) boolVal(b bool) {
	if b {
		e.byteVal(1)
	} else {
		e.byteVal(0)
	}
}

func (e *encoder) point(p tvg.Point) {
	e.f32(p.X)
	e.f32(p.Y)
}

func (e *encoder) color(c tvg.Color) {
	e.f32(c.R)
	e.f32(c.G)
	e.f32(c.B)
	e.f32(c.A)
}

func (e *encoder) rect(r tvg.Rectangle) {
	e.f32(r.X)
	e.f32(r.Y)
	e.f32(r.Width)
	e.f32(r.Height)
}

func (e *encoder) line(l tvg.LineSeg) {
	e.point(l.Start)
	e.point(l.End)
}

func (e *encoder) points(pts []tvg.Point) {
	e.u32(uint32(len(pts)))
	for _, p := range pts {
		e.point(p)
	}
}

func (e *encoder) rects(rs []tvg.Rectangle) {
	e.u32(uint32(len(rs)))
	for _, r := range rs {
		e.rect(r)
	}
}

func (e *encoder) lines(ls []tvg.LineSeg) {
	e.u32(uint32(len(ls)))
	for _, l := range ls {
		e.line(l)
	}
}

func (e *encoder) style(s tvg.Style) {
	switch v := s.(type) {
	case tvg.StyleFlat:
		e.byteVal(styleFlat)
		e.u32(uint32(v.ColorIndex))
	case tvg.StyleLinear:
		e.byteVal(styleLinear)
		e.point(v.P0)
		e.point(v.P1)
		e.u32(uint32(v.ColorIndex0))
		e.u32(uint32(v.ColorIndex1))
	case tvg.StyleRadial:
		e.byteVal(styleRadial)
		e.point(v.P0)
		e.point(v.P1)
		e.u32(uint32(v.ColorIndex0))
		e.u32(uint32(v.ColorIndex1))
	}
}

func (e *encoder) pathCommand(cmd tvg.PathCommand) {
	switch v := cmd.(type) {
	case tvg.Line:
		e.byteVal(cmdLine)
		e.point(v.To)
	case tvg.Horiz:
		e.byteVal(cmdHoriz)
		e.f32(v.X)
	case tvg.Vert:
		e.byteVal(cmdVert)
		e.f32(v.Y)
	case tvg.Bezier:
		e.byteVal(cmdBezier)
		e.point(v.C0)
		e.point(v.C1)
		e.point(v.P1)
	case tvg.QBezier:
		e.byteVal(cmdQBezier)
		e.point(v.C)
		e.point(v.P1)
	case tvg.ArcCircle:
		e.byteVal(cmdArcCircle)
		e.point(v.Target)
		e.f32(v.Radius)
		e.boolVal(v.LargeArc)
		e.boolVal(v.Sweep)
	case tvg.ArcEllipse:
		e.byteVal(cmdArcEllipse)
		e.point(v.Target)
		e.f32(v.RadiusX)
		e.f32(v.RadiusY)
		e.f32(v.RotationDeg)
		e.boolVal(v.LargeArc)
		e.boolVal(v.Sweep)
	case tvg.Close:
		e.byteVal(cmdClose)
	}
}

func (e *encoder) path(p tvg.Path) {
	e.u32(uint32(len(p.Segments)))
	for _, seg := range p.Segments {
		e.point(seg.Start)
		e.u32(uint32(len(seg.Commands)))
		for _, c := range seg.Commands {
			e.pathCommand(c)
		}
	}
}

func (e *encoder) drawCommand(cmd tvg.DrawCommand) {
	switch v := cmd.(type) {
	case tvg.FillPolygon:
		e.byteVal(drawFillPolygon)
		e.style(v.Style)
		e.points(v.Vertices)
	case tvg.FillRectangles:
		e.byteVal(drawFillRectangles)
		e.style(v.Style)
		e.rects(v.Rectangles)
	case tvg.FillPath:
		e.byteVal(drawFillPath)
		e.style(v.Style)
		e.path(v.Path)
	case tvg.DrawLines:
		e.byteVal(drawDrawLines)
		e.style(v.Style)
		e.f32(v.LineWidth)
		e.lines(v.Lines)
	case tvg.DrawLineStrip:
		e.byteVal(drawDrawLineStrip)
		e.style(v.Style)
		e.f32(v.LineWidth)
		e.points(v.Vertices)
	case tvg.DrawLineLoop:
		e.byteVal(drawDrawLineLoop)
		e.style(v.Style)
		e.f32(v.LineWidth)
		e.points(v.Vertices)
	case tvg.DrawLinePath:
		e.byteVal(drawDrawLinePath)
		e.style(v.Style)
		e.f32(v.LineWidth)
		e.path(v.Path)
	case tvg.OutlineFillPolygon:
		e.byteVal(drawOutlineFillPolygon)
		e.style(v.FillStyle)
		e.style(v.LineStyle)
		e.f32(v.LineWidth)
		e.points(v.Vertices)
	case tvg.OutlineFillRectangles:
		e.byteVal(drawOutlineFillRectangles)
		e.style(v.FillStyle)
		e.style(v.LineStyle)
		e.f32(v.LineWidth)
		e.rects(v.Rectangles)
	case tvg.OutlineFillPath:
		e.byteVal(drawOutlineFillPath)
		e.style(v.FillStyle)
		e.style(v.LineStyle)
		e.f32(v.LineWidth)
		e.path(v.Path)
	}
}

// --- decoder ---

type decoder struct {
	r   *bufio.Reader
	err error
}

func (d *decoder) u32() uint32 {
	if d.err != nil {
		return 0
	}
	var buf [4]byte
	_, d.err = io.ReadFull(d.r, buf[:])
	return binary.LittleEndian.Uint32(buf[:])
}

func (d *decoder) f32() float64 {
	return float64(math.Float32frombits(d.u32()))
}

func (d *decoder) byteVal() byte {
	if d.err != nil {
		return 0
	}
	b, err := d.r.ReadByte()
	if err != nil {
		d.err = err
	}
	return b
}

func (d *decoder) boolVal() bool { return d.byteVal() != 0 }

func (d *decoder) point() tvg.Point { return tvg.Point{X: d.f32(), Y: d.f32()} }

func (d *decoder) color() tvg.Color {
	return tvg.Color{R: d.f32(), G: d.f32(), B: d.f32(), A: d.f32()}
}

func (d *decoder) rect() tvg.Rectangle {
	return tvg.Rectangle{X: d.f32(), Y: d.f32(), Width: d.f32(), Height: d.f32()}
}

func (d *decoder) line() tvg.LineSeg {
	return tvg.LineSeg{Start: d.point(), End: d.point()}
}

func (d *decoder) points() []tvg.Point {
	n := d.u32()
	pts := make([]tvg.Point, n)
	for i := range pts {
		pts[i] = d.point()
	}
	return pts
}

func (d *decoder) rects() []tvg.Rectangle {
	n := d.u32()
	rs := make([]tvg.Rectangle, n)
	for i := range rs {
		rs[i] = d.rect()
	}
	return rs
}

func (d *decoder) lines() []tvg.LineSeg {
	n := d.u32()
	ls := make([]tvg.LineSeg, n)
	for i := range ls {
		ls[i] = d.line()
	}
	return ls
}

func (d *decoder) style() tvg.Style {
	switch d.byteVal() {
	case styleFlat:
		return tvg.StyleFlat{ColorIndex: int(d.u32())}
	case styleLinear:
		p0, p1 := d.point(), d.point()
		return tvg.StyleLinear{P0: p0, P1: p1, ColorIndex0: int(d.u32()), ColorIndex1: int(d.u32())}
	case styleRadial:
		p0, p1 := d.point(), d.point()
		return tvg.StyleRadial{P0: p0, P1: p1, ColorIndex0: int(d.u32()), ColorIndex1: int(d.u32())}
	default:
		if d.err == nil {
			d.err = ErrUnknownTag
		}
		return tvg.StyleFlat{}
	}
}

func (d *decoder) pathCommand() tvg.PathCommand {
	switch d.byteVal() {
	case cmdLine:
		return tvg.Line{To: d.point()}
	case cmdHoriz:
		return tvg.Horiz{X: d.f32()}
	case cmdVert:
		return tvg.Vert{Y: d.f32()}
	case cmdBezier:
		return tvg.Bezier{C0: d.point(), C1: d.point(), P1: d.point()}
	case cmdQBezier:
		return tvg.QBezier{C: d.point(), P1: d.point()}
	case cmdArcCircle:
		target := d.point()
		radius := d.f32()
		return tvg.ArcCircle{Target: target, Radius: radius, LargeArc: d.boolVal(), Sweep: d.boolVal()}
	case cmdArcEllipse:
		target := d.point()
		rx, ry, rot := d.f32(), d.f32(), d.f32()
		return tvg.ArcEllipse{Target: target, RadiusX: rx, RadiusY: ry, RotationDeg: rot, LargeArc: d.boolVal(), Sweep: d.boolVal()}
	case cmdClose:
		return tvg.Close{}
	default:
		if d.err == nil {
			d.err = ErrUnknownTag
		}
		return tvg.Close{}
	}
}

func (d *decoder) path() tvg.Path {
	n := d.u32()
	segs := make([]tvg.PathSegment, n)
	for i := range segs {
		start := d.point()
		cn := d.u32()
		cmds := make([]tvg.PathCommand, cn)
		for j := range cmds {
			cmds[j] = d.pathCommand()
		}
		segs[i] = tvg.PathSegment{Start: start, Commands: cmds}
	}
	return tvg.Path{Segments: segs}
}

func (d *decoder) drawCommand() tvg.DrawCommand {
	switch d.byteVal() {
	case drawFillPolygon:
		s := d.style()
		return tvg.FillPolygon{Style: s, Vertices: d.points()}
	case drawFillRectangles:
		s := d.style()
		return tvg.FillRectangles{Style: s, Rectangles: d.rects()}
	case drawFillPath:
		s := d.style()
		return tvg.FillPath{Style: s, Path: d.path()}
	case drawDrawLines:
		s := d.style()
		w := d.f32()
		return tvg.DrawLines{Style: s, LineWidth: w, Lines: d.lines()}
	case drawDrawLineStrip:
		s := d.style()
		w := d.f32()
		return tvg.DrawLineStrip{Style: s, LineWidth: w, Vertices: d.points()}
	case drawDrawLineLoop:
		s := d.style()
		w := d.f32()
		return tvg.DrawLineLoop{Style: s, LineWidth: w, Vertices: d.points()}
	case drawDrawLinePath:
		s := d.style()
		w := d.f32()
		return tvg.DrawLinePath{Style: s, LineWidth: w, Path: d.path()}
	case drawOutlineFillPolygon:
		fs := d.style()
		ls := d.style()
		w := d.f32()
		return tvg.OutlineFillPolygon{FillStyle: fs, LineStyle: ls, LineWidth: w, Vertices: d.points()}
	case drawOutlineFillRectangles:
		fs := d.style()
		ls := d.style()
		w := d.f32()
		return tvg.OutlineFillRectangles{FillStyle: fs, LineStyle: ls, LineWidth: w, Rectangles: d.rects()}
	case drawOutlineFillPath:
		fs := d.style()
		ls := d.style()
		w := d.f32()
		return tvg.OutlineFillPath{FillStyle: fs, LineStyle: ls, LineWidth: w, Path: d.path()}
	default:
		if d.err == nil {
			d.err = ErrUnknownTag
		}
		return nil
	}
}
