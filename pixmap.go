package tvg

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap is a concrete [Framebuffer]: a rectangular RGBA pixel buffer
// owned by the caller. It also implements image.Image so it can be saved
// with the standard library's image codecs.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA, 8 bits per channel, 4 bytes per pixel
}

// NewPixmap creates a pixmap with the given dimensions, initialized to
// transparent black.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width implements Framebuffer.
func (p *Pixmap) Width() int { return p.width }

// Height implements Framebuffer.
func (p *Pixmap) Height() int { return p.height }

// Data returns the raw pixel data (RGBA, 8 bits per channel).
func (p *Pixmap) Data() []uint8 { return p.data }

// SetPixel implements Framebuffer. Out-of-bounds coordinates are
// silently ignored, matching the TVG renderer's contract that it never
// calls SetPixel outside [0,width) x [0,height).
func (p *Pixmap) SetPixel(x, y int, c Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = clampByte(c.R * 255)
	p.data[i+1] = clampByte(c.G * 255)
	p.data[i+2] = clampByte(c.B * 255)
	p.data[i+3] = clampByte(c.A * 255)
}

// GetPixel returns the color at (x, y), or Transparent out of bounds.
func (p *Pixmap) GetPixel(x, y int) Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return Color{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
		A: float64(p.data[i+3]) / 255,
	}
}

// Clear fills the entire pixmap with a single color.
func (p *Pixmap) Clear(c Color) {
	r := clampByte(c.R * 255)
	g := clampByte(c.G * 255)
	b := clampByte(c.B * 255)
	a := clampByte(c.A * 255)

	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// ToImage converts the pixmap to a standard library image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an arbitrary image.Image, useful for
// tests that want to compare rendered output against a golden PNG.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pm.SetPixel(x, y, Color{
				R: float64(r) / 65535,
				G: float64(g) / 65535,
				B: float64(b) / 65535,
				A: float64(a) / 65535,
			})
		}
	}
	return pm
}

// SavePNG saves the pixmap as a PNG file, mainly useful for debugging
// and test fixtures; cmd/tvg-render writes TGA, per spec.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, p.ToImage())
}

// At implements image.Image.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).stdColor()
}

// Bounds implements image.Image.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements image.Image.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
