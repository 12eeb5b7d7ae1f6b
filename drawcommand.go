package tvg

// Rectangle is an axis-aligned box in logical coordinates.
type Rectangle struct {
	X, Y, Width, Height float64
}

// corners returns the rectangle's four corners in the TL, TR, BR, BL
// traversal order used by outline_fill_rectangles.
func (r Rectangle) corners() [4]Point {
	return [4]Point{
		{X: r.X, Y: r.Y},                      // TL
		{X: r.X + r.Width, Y: r.Y},            // TR
		{X: r.X + r.Width, Y: r.Y + r.Height}, // BR
		{X: r.X, Y: r.Y + r.Height},           // BL
	}
}

// LineSeg is a single straight line segment in logical coordinates.
type LineSeg struct {
	Start, End Point
}

// Header defines the logical coordinate system an image was authored
// against; Render scales logical coordinates to the target Framebuffer
// by the ratio of framebuffer to header dimensions.
type Header struct {
	Width, Height uint32
}

// DrawCommand is a tagged union of the ten draw operations. The
// concrete types are FillPolygon, FillRectangles, FillPath, DrawLines,
// DrawLineStrip, DrawLineLoop, DrawLinePath, OutlineFillPolygon,
// OutlineFillRectangles, OutlineFillPath.
type DrawCommand interface {
	isDrawCommand()
}

// FillPolygon fills a single closed polygon using the non-zero winding
// rule.
type FillPolygon struct {
	Style    Style
	Vertices []Point
}

func (FillPolygon) isDrawCommand() {}

// FillRectangles fills each rectangle's pixel box.
type FillRectangles struct {
	Style      Style
	Rectangles []Rectangle
}

func (FillRectangles) isDrawCommand() {}

// FillPath flattens Path and fills it using the even-odd rule. This is
// the one fill command that does NOT use non-zero winding; the
// asymmetry with FillPolygon is intentional.
type FillPath struct {
	Style Style
	Path  Path
}

func (FillPath) isDrawCommand() {}

// DrawLines strokes each line independently as a constant-width
// capsule.
type DrawLines struct {
	Style     Style
	LineWidth float64
	Lines     []LineSeg
}

func (DrawLines) isDrawCommand() {}

// DrawLineStrip strokes consecutive pairs of vertices.
type DrawLineStrip struct {
	Style     Style
	LineWidth float64
	Vertices  []Point
}

func (DrawLineStrip) isDrawCommand() {}

// DrawLineLoop strokes consecutive pairs of vertices plus a closing
// edge from the last vertex back to the first.
type DrawLineLoop struct {
	Style     Style
	LineWidth float64
	Vertices  []Point
}

func (DrawLineLoop) isDrawCommand() {}

// DrawLinePath flattens Path; each resulting sub-polyline is stroked as
// consecutive pairs (not closed).
type DrawLinePath struct {
	Style     Style
	LineWidth float64
	Path      Path
}

func (DrawLinePath) isDrawCommand() {}

// OutlineFillPolygon fills (non-zero), then strokes the closing loop
// through all vertices.
type OutlineFillPolygon struct {
	FillStyle Style
	LineStyle Style
	LineWidth float64
	Vertices  []Point
}

func (OutlineFillPolygon) isDrawCommand() {}

// OutlineFillRectangles fills each rectangle, then strokes its four
// edges in TL->TR->BR->BL->TL order.
type OutlineFillRectangles struct {
	FillStyle  Style
	LineStyle  Style
	LineWidth  float64
	Rectangles []Rectangle
}

func (OutlineFillRectangles) isDrawCommand() {}

// OutlineFillPath flattens Path, fills each sub-polyline (non-zero),
// then strokes each sub-polyline.
type OutlineFillPath struct {
	FillStyle Style
	LineStyle Style
	LineWidth float64
	Path      Path
}

func (OutlineFillPath) isDrawCommand() {}
