package flatten

import (
	"errors"

	"github.com/tinyvg/tvgrender/internal/geom"
)

// ErrOutOfScratch is returned when appending a point or starting a new
// sub-path would exceed the scratch buffer's fixed capacity.
var ErrOutOfScratch = errors.New("flatten: scratch buffer capacity exceeded")

// ErrInvalidGeometry is returned when a non-finite coordinate reaches
// the per-point assertion boundary.
var ErrInvalidGeometry = errors.New("flatten: non-finite coordinate")

// Span locates one flattened polyline within Scratch.Points.
type Span struct {
	Offset int
	Length int
}

// Scratch is the flattener's fixed-capacity output: a point buffer
// shared by all polylines of one Render call, and an index recording
// where each polyline starts and how long it is. Capacities are set
// once at construction and never grow past them; exceeding either
// returns ErrOutOfScratch instead of falling back to heap growth.
type Scratch struct {
	Points   []geom.Point
	Subpaths []Span

	maxPoints   int
	maxSubpaths int

	hasLast bool
	last    geom.Point
}

// NewScratch allocates a scratch buffer with the given capacities.
func NewScratch(maxPoints, maxSubpaths int) *Scratch {
	return &Scratch{
		Points:      make([]geom.Point, 0, maxPoints),
		Subpaths:    make([]Span, 0, maxSubpaths),
		maxPoints:   maxPoints,
		maxSubpaths: maxSubpaths,
	}
}

// StartSubpath begins a new polyline and unconditionally appends start
// (the pixel-delta dedup filter only applies to later appends within
// the same sub-path).
func (s *Scratch) StartSubpath(start geom.Point) error {
	if !start.Finite() {
		return ErrInvalidGeometry
	}
	if len(s.Subpaths) >= s.maxSubpaths {
		return ErrOutOfScratch
	}
	if len(s.Points) >= s.maxPoints {
		return ErrOutOfScratch
	}
	offset := len(s.Points)
	s.Points = append(s.Points, start)
	s.Subpaths = append(s.Subpaths, Span{Offset: offset, Length: 1})
	s.last = start
	s.hasLast = true
	return nil
}

// FinishSubpath records the final length of the current sub-path. Call
// once after all commands for a segment have been processed.
func (s *Scratch) FinishSubpath() {
	i := len(s.Subpaths) - 1
	s.Subpaths[i].Length = len(s.Points) - s.Subpaths[i].Offset
}

// Append adds a point to the current sub-path, applying the
// pixel-delta dedup rule against the previously accepted point. A
// deduped point is silently discarded (not an error).
func (s *Scratch) Append(p geom.Point) error {
	if !p.Finite() {
		return ErrInvalidGeometry
	}
	if s.hasLast && geom.ApproxEqualPixelDelta(p, s.last) {
		return nil
	}
	if len(s.Points) >= s.maxPoints {
		return ErrOutOfScratch
	}
	s.Points = append(s.Points, p)
	s.last = p
	s.hasLast = true
	return nil
}

// Polyline returns the points of sub-path i.
func (s *Scratch) Polyline(i int) []geom.Point {
	sp := s.Subpaths[i]
	return s.Points[sp.Offset : sp.Offset+sp.Length]
}
