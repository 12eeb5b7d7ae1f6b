// Command tvg-render rasterizes a DrawCommand stream (in this
// repository's own wire encoding, see internal/wire) to a 32-bit TGA
// image.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tvg "github.com/tinyvg/tvgrender"
	"github.com/tinyvg/tvgrender/internal/wire"
)

// maxSuperSampling is the upper bound on an explicit -s factor.
const maxSuperSampling = 32

// autoAntiAliasFactor is the super-sampling factor -anti-alias selects
// when -super-sampling is not also given.
const autoAntiAliasFactor = 4

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("tvg-render", flag.ContinueOnError)
	var (
		output        = fs.String("output", "out.tga", "output TGA path, or - for stdout")
		geometry      = fs.String("geometry", "", "override output geometry WxH, e.g. 800x600")
		antiAlias     = fs.Bool("anti-alias", false, "enable super-sampled anti-aliasing (factor 4 unless -super-sampling is given)")
		superSampling = fs.Int("super-sampling", 0, "box-filter super-sampling factor (1-32); takes effect on its own, independent of -anti-alias")
		verbose       = fs.Bool("verbose", false, "enable debug logging")
	)
	fs.StringVar(output, "o", "out.tga", "shorthand for -output")
	fs.StringVar(geometry, "g", "", "shorthand for -geometry")
	fs.BoolVar(antiAlias, "a", false, "shorthand for -anti-alias")
	fs.IntVar(superSampling, "s", 0, "shorthand for -super-sampling")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	superSamplingSet := false
	outputSet := false
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "s", "super-sampling":
			superSamplingSet = true
		case "o", "output":
			outputSet = true
		}
	})

	factor := 1
	switch {
	case superSamplingSet:
		if *superSampling < 1 || *superSampling > maxSuperSampling {
			fmt.Fprintf(os.Stderr, "tvg-render: -super-sampling must be between 1 and %d, got %d\n", maxSuperSampling, *superSampling)
			return 1
		}
		factor = *superSampling
	case *antiAlias:
		factor = autoAntiAliasFactor
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	tvg.SetLogger(logger)

	in, closeIn, fromStdin, err := openInput(fs.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer closeIn()

	if fromStdin && !outputSet {
		fmt.Fprintln(os.Stderr, "tvg-render: reading from stdin requires -o/--output")
		return 1
	}

	header, table, commands, err := wire.ReadStream(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tvg-render: decode: %v\n", err)
		return 1
	}

	width, height := header.Width, header.Height
	if *geometry != "" {
		w, h, err := parseGeometry(*geometry)
		if err != nil {
			fmt.Fprintf(os.Stderr, "tvg-render: %v\n", err)
			return 1
		}
		width, height = w, h
	}

	fb, err := renderAll(header, table, commands, width, height, factor)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tvg-render: render: %v\n", err)
		return 1
	}

	out, closeOut, err := openOutput(*output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tvg-render: %v\n", err)
		return 1
	}
	defer closeOut()

	if err := writeTGA(out, fb); err != nil {
		fmt.Fprintf(os.Stderr, "tvg-render: write TGA: %v\n", err)
		return 1
	}

	return 0
}

func openInput(rest []string) (*os.File, func(), bool, error) {
	if len(rest) == 0 || rest[0] == "-" {
		return os.Stdin, func() {}, true, nil
	}
	f, err := os.Open(rest[0])
	if err != nil {
		return nil, func() {}, false, fmt.Errorf("open %s: %w", rest[0], err)
	}
	return f, func() { f.Close() }, false, nil
}

func openOutput(path string) (*os.File, func(), error) {
	if path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, func() {}, err
	}
	return f, func() { f.Close() }, nil
}

func parseGeometry(s string) (uint32, uint32, error) {
	var w, h uint32
	if _, err := fmt.Sscanf(s, "%dx%d", &w, &h); err != nil {
		return 0, 0, fmt.Errorf("invalid -geometry %q, want WxH", s)
	}
	if w == 0 || h == 0 {
		return 0, 0, fmt.Errorf("invalid -geometry %q: dimensions must be positive", s)
	}
	return w, h, nil
}

// renderAll renders every command in commands onto a framebuffer of
// width*factor by height*factor, then box-filter downsamples to
// width x height when factor > 1 (driven by -anti-alias / -super-sampling).
func renderAll(header tvg.Header, table tvg.ColorTable, commands []tvg.DrawCommand, width, height uint32, factor int) (*tvg.Pixmap, error) {
	superW, superH := int(width)*factor, int(height)*factor
	super := tvg.NewPixmap(superW, superH)

	for _, cmd := range commands {
		if err := tvg.Render(super, header, table, cmd); err != nil {
			return nil, err
		}
	}

	if factor == 1 {
		return super, nil
	}
	return downsample(super, int(width), int(height), factor), nil
}

// downsample averages factor*factor source pixels per destination
// pixel (a box filter).
func downsample(src *tvg.Pixmap, width, height, factor int) *tvg.Pixmap {
	dst := tvg.NewPixmap(width, height)
	area := float64(factor * factor)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var r, g, b, a float64
			for sy := 0; sy < factor; sy++ {
				for sx := 0; sx < factor; sx++ {
					c := src.GetPixel(x*factor+sx, y*factor+sy)
					r += c.R
					g += c.G
					b += c.B
					a += c.A
				}
			}
			dst.SetPixel(x, y, tvg.Color{R: r / area, G: g / area, B: b / area, A: a / area})
		}
	}
	return dst
}
