// Package flatten converts logical path segments into polylines: fixed
// 16-step Bézier/quadratic subdivision, circular and elliptical arc
// reduction, and pixel-delta deduplication, written into a fixed-capacity
// scratch buffer.
//
// Command and Segment are internal copies of the root package's
// PathCommand variants and PathSegment (using geom.Point rather than
// tvg.Point) to avoid an import cycle; render.go converts at the
// boundary.
package flatten

import "github.com/tinyvg/tvgrender/internal/geom"

// Command is a tagged union mirroring tvg.PathCommand.
type Command interface {
	isCommand()
}

// CmdLine appends a straight edge to To.
type CmdLine struct{ To geom.Point }

func (CmdLine) isCommand() {}

// CmdHoriz appends a straight edge to (X, cursor.Y).
type CmdHoriz struct{ X float64 }

func (CmdHoriz) isCommand() {}

// CmdVert appends a straight edge to (cursor.X, Y).
type CmdVert struct{ Y float64 }

func (CmdVert) isCommand() {}

// CmdBezier appends a cubic Bézier curve.
type CmdBezier struct{ C0, C1, P1 geom.Point }

func (CmdBezier) isCommand() {}

// CmdQBezier appends a quadratic Bézier curve.
type CmdQBezier struct{ C, P1 geom.Point }

func (CmdQBezier) isCommand() {}

// CmdArcCircle appends a circular arc.
type CmdArcCircle struct {
	Target   geom.Point
	Radius   float64
	LargeArc bool
	Sweep    bool
}

func (CmdArcCircle) isCommand() {}

// CmdArcEllipse appends an elliptical arc.
type CmdArcEllipse struct {
	Target      geom.Point
	RadiusX     float64
	RadiusY     float64
	RotationDeg float64
	LargeArc    bool
	Sweep       bool
}

func (CmdArcEllipse) isCommand() {}

// CmdClose appends an edge back to the segment's start point.
type CmdClose struct{}

func (CmdClose) isCommand() {}

// Segment is a cursor-driven command sequence starting at Start.
type Segment struct {
	Start    geom.Point
	Commands []Command
}
