package tvg

import (
	"errors"
	"math"
	"testing"
)

// scenarioHeader and scenarioTable set up a 100x100 framebuffer, header
// 100x100, color table = [black, white, red].
func scenarioHeader() Header { return Header{Width: 100, Height: 100} }

func scenarioTable() ColorTable {
	return ColorTable{Black, White, Red}
}

func TestScenarioFlatSquare(t *testing.T) {
	fb := NewPixmap(100, 100)
	cmd := FillRectangles{
		Style:      StyleFlat{ColorIndex: 1},
		Rectangles: []Rectangle{{X: 10, Y: 10, Width: 20, Height: 20}},
	}
	if err := Render(fb, scenarioHeader(), scenarioTable(), cmd); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			inside := x >= 10 && x < 30 && y >= 10 && y < 30
			got := fb.GetPixel(x, y)
			if inside && got != White {
				t.Fatalf("pixel (%d,%d) = %+v, want White", x, y, got)
			}
			if !inside && got != Transparent {
				t.Fatalf("pixel (%d,%d) = %+v, want Transparent", x, y, got)
			}
		}
	}
}

func TestScenarioHorizontalLine(t *testing.T) {
	fb := NewPixmap(100, 100)
	cmd := DrawLines{
		Style:     StyleFlat{ColorIndex: 0},
		LineWidth: 1,
		Lines:     []LineSeg{{Start: Point{X: 5, Y: 50}, End: Point{X: 95, Y: 50}}},
	}
	if err := Render(fb, scenarioHeader(), scenarioTable(), cmd); err != nil {
		t.Fatal(err)
	}
	for x := 5; x <= 95; x++ {
		if got := fb.GetPixel(x, 50); got != Black {
			t.Fatalf("pixel (%d,50) = %+v, want Black", x, got)
		}
	}
	if got := fb.GetPixel(50, 60); got != Transparent {
		t.Errorf("pixel far from the capsule should be untouched, got %+v", got)
	}
}

func TestScenarioTriangleNonZeroFill(t *testing.T) {
	fb := NewPixmap(100, 100)
	cmd := FillPolygon{
		Style:    StyleFlat{ColorIndex: 2},
		Vertices: []Point{{X: 10, Y: 10}, {X: 90, Y: 10}, {X: 50, Y: 90}},
	}
	if err := Render(fb, scenarioHeader(), scenarioTable(), cmd); err != nil {
		t.Fatal(err)
	}
	if got := fb.GetPixel(50, 50); got != Red {
		t.Errorf("triangle interior = %+v, want Red", got)
	}
	if got := fb.GetPixel(2, 2); got != Transparent {
		t.Errorf("far corner = %+v, want Transparent", got)
	}
}

func TestScenarioAnnulusEvenOdd(t *testing.T) {
	fb := NewPixmap(100, 100)
	square := func(x0, y0, x1, y1 float64) PathSegment {
		return PathSegment{
			Start: Point{X: x0, Y: y0},
			Commands: []PathCommand{
				Line{To: Point{X: x1, Y: y0}},
				Line{To: Point{X: x1, Y: y1}},
				Line{To: Point{X: x0, Y: y1}},
				Close{},
			},
		}
	}
	path := Path{Segments: []PathSegment{
		square(10, 10, 90, 90),
		square(30, 30, 70, 70),
	}}
	cmd := FillPath{Style: StyleFlat{ColorIndex: 1}, Path: path}
	if err := Render(fb, scenarioHeader(), scenarioTable(), cmd); err != nil {
		t.Fatal(err)
	}
	if got := fb.GetPixel(15, 15); got != White {
		t.Errorf("between outer and inner square = %+v, want White", got)
	}
	if got := fb.GetPixel(50, 50); got != Transparent {
		t.Errorf("inner square interior = %+v, want Transparent", got)
	}
}

func TestScenarioQuarterArc(t *testing.T) {
	fb := NewPixmap(100, 100)
	path := Path{Segments: []PathSegment{
		{
			Start: Point{X: 50, Y: 10},
			Commands: []PathCommand{
				ArcCircle{Target: Point{X: 90, Y: 50}, Radius: 40, LargeArc: false, Sweep: true},
				Close{},
			},
		},
	}}
	cmd := FillPath{Style: StyleFlat{ColorIndex: 0}, Path: path}
	if err := Render(fb, scenarioHeader(), scenarioTable(), cmd); err != nil {
		t.Fatal(err)
	}
	// The arc's center is (90,10); the filled region is the circular
	// segment between the chord (50,10)-(90,50) and the arc, which bulges
	// towards the lower left. A point between chord and arc is filled.
	if got := fb.GetPixel(66, 34); got != Black {
		t.Errorf("quadrant interior = %+v, want Black", got)
	}
	if got := fb.GetPixel(5, 95); got != Transparent {
		t.Errorf("outside quadrant = %+v, want Transparent", got)
	}
}

func TestScenarioLinearGradient(t *testing.T) {
	fb := NewPixmap(100, 100)
	cmd := FillRectangles{
		Style: StyleLinear{
			P0: Point{X: 0, Y: 0}, P1: Point{X: 100, Y: 0},
			ColorIndex0: 0, ColorIndex1: 1,
		},
		Rectangles: []Rectangle{{X: 0, Y: 0, Width: 100, Height: 100}},
	}
	if err := Render(fb, scenarioHeader(), scenarioTable(), cmd); err != nil {
		t.Fatal(err)
	}
	if got := fb.GetPixel(0, 50); got != Black {
		t.Errorf("x=0 column = %+v, want Black", got)
	}
	if got := fb.GetPixel(99, 50); got != White {
		t.Errorf("x=99 column = %+v, want White", got)
	}
	// Monotonicity: R channel should not decrease as x increases.
	prev := -1.0
	for x := 0; x < 100; x++ {
		c := fb.GetPixel(x, 50)
		if c.R < prev-1e-9 {
			t.Fatalf("R channel decreased at x=%d: %v < %v", x, c.R, prev)
		}
		prev = c.R
	}
}

func TestNoNaNReachesFramebuffer(t *testing.T) {
	rec := &recordingFramebuffer{Pixmap: NewPixmap(50, 50)}
	cmd := FillPolygon{
		Style:    StyleFlat{ColorIndex: 1},
		Vertices: []Point{{X: 5, Y: 5}, {X: 45, Y: 5}, {X: 25, Y: 45}},
	}
	if err := Render(rec, scenarioHeader200(50), scenarioTable(), cmd); err != nil {
		t.Fatal(err)
	}
	for _, c := range rec.written {
		if math.IsNaN(c.color.R) || math.IsNaN(c.color.G) || math.IsNaN(c.color.B) || math.IsNaN(c.color.A) {
			t.Fatalf("NaN reached framebuffer at %+v", c)
		}
	}
}

func TestAllWritesInsideBounds(t *testing.T) {
	rec := &recordingFramebuffer{Pixmap: NewPixmap(30, 30)}
	cmd := OutlineFillPolygon{
		FillStyle: StyleFlat{ColorIndex: 1},
		LineStyle: StyleFlat{ColorIndex: 0},
		LineWidth: 3,
		Vertices:  []Point{{X: 2, Y: 2}, {X: 28, Y: 2}, {X: 28, Y: 28}, {X: 2, Y: 28}},
	}
	if err := Render(rec, scenarioHeader200(30), scenarioTable(), cmd); err != nil {
		t.Fatal(err)
	}
	for _, w := range rec.written {
		if w.x < 0 || w.x >= 30 || w.y < 0 || w.y >= 30 {
			t.Fatalf("write out of bounds: %+v", w)
		}
	}
}

func TestOutOfScratchError(t *testing.T) {
	fb := NewPixmap(100, 100)
	segs := make([]PathSegment, 0, 600)
	for i := 0; i < 600; i++ {
		segs = append(segs, PathSegment{
			Start:    Point{X: float64(i), Y: 0},
			Commands: []PathCommand{Line{To: Point{X: float64(i), Y: 1}}, Close{}},
		})
	}
	cmd := FillPath{Style: StyleFlat{ColorIndex: 0}, Path: Path{Segments: segs}}
	err := Render(fb, scenarioHeader(), scenarioTable(), cmd)
	if !errors.Is(err, ErrOutOfScratch) {
		t.Fatalf("err = %v, want ErrOutOfScratch for a path exceeding the sub-path budget", err)
	}
}

func scenarioHeader200(n uint32) Header { return Header{Width: n, Height: n} }

type recordingFramebuffer struct {
	*Pixmap
	written []pixelWrite
}

type pixelWrite struct {
	x, y  int
	color Color
}

func (r *recordingFramebuffer) SetPixel(x, y int, c Color) {
	r.written = append(r.written, pixelWrite{x, y, c})
	r.Pixmap.SetPixel(x, y, c)
}
