package tvg

import "testing"

func TestPixmapSetGetPixel(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.SetPixel(3, 4, Red)
	got := pm.GetPixel(3, 4)
	if got.R != 1 || got.G != 0 || got.B != 0 || got.A != 1 {
		t.Errorf("GetPixel(3,4) = %+v, want opaque red", got)
	}
}

func TestPixmapSetPixelOutOfBounds(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.Clear(Black)
	original := make([]uint8, len(pm.Data()))
	copy(original, pm.Data())

	oob := []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10}, {-100, -100}, {100, 100},
	}
	for _, c := range oob {
		pm.SetPixel(c.x, c.y, Red)
	}
	for i, v := range pm.Data() {
		if v != original[i] {
			t.Fatalf("out-of-bounds write modified data at index %d", i)
		}
	}
}

func TestPixmapGetPixelOutOfBounds(t *testing.T) {
	pm := NewPixmap(10, 10)
	if got := pm.GetPixel(-1, 0); got != Transparent {
		t.Errorf("GetPixel out of bounds = %+v, want Transparent", got)
	}
}

func TestPixmapClear(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.Clear(White)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := pm.GetPixel(x, y); got != White {
				t.Fatalf("pixel (%d,%d) = %+v, want White", x, y, got)
			}
		}
	}
}

func TestPixmapWidthHeight(t *testing.T) {
	pm := NewPixmap(7, 3)
	if pm.Width() != 7 || pm.Height() != 3 {
		t.Errorf("dimensions = (%d, %d), want (7, 3)", pm.Width(), pm.Height())
	}
}

func TestPixmapToImageFromImageRoundTrip(t *testing.T) {
	pm := NewPixmap(5, 5)
	pm.SetPixel(2, 2, Color{R: 0.4, G: 0.2, B: 0.6, A: 1})

	img := pm.ToImage()
	pm2 := FromImage(img)

	got := pm2.GetPixel(2, 2)
	want := pm.GetPixel(2, 2)
	const tol = 1.0 / 255
	if absF(got.R-want.R) > tol || absF(got.G-want.G) > tol || absF(got.B-want.B) > tol {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func absF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func TestPixmapImplementsFramebuffer(t *testing.T) {
	var _ Framebuffer = (*Pixmap)(nil)
}
