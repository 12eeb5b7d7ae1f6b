package flatten

// Stats records recoverable edge cases the flattener filtered or
// corrected rather than raising as errors. A nil *Stats is always safe
// to pass; recording is skipped.
type Stats struct {
	// OversizedArcRadius is set when a circular/elliptical arc's radius
	// was too small for its chord and was bumped up to chord/2.
	OversizedArcRadius bool
	// DegenerateChordSkipped is set when an arc's endpoints were
	// coincident and the arc was skipped entirely.
	DegenerateChordSkipped bool
	// PointHighWaterMark is the largest point-buffer length observed.
	PointHighWaterMark int
	// SubpathHighWaterMark is the largest sub-path count observed.
	SubpathHighWaterMark int
}

func (s *Stats) noteOversizedArc() {
	if s != nil {
		s.OversizedArcRadius = true
	}
}

func (s *Stats) noteDegenerateChord() {
	if s != nil {
		s.DegenerateChordSkipped = true
	}
}

func (s *Stats) noteHighWaterMark(points, subpaths int) {
	if s == nil {
		return
	}
	if points > s.PointHighWaterMark {
		s.PointHighWaterMark = points
	}
	if subpaths > s.SubpathHighWaterMark {
		s.SubpathHighWaterMark = subpaths
	}
}
