package main

import (
	"bufio"
	"encoding/binary"
	"io"

	tvg "github.com/tinyvg/tvgrender"
)

// writeTGA writes fb as an uncompressed 32-bit BGRA TGA image with a
// top-left origin. TGA's image descriptor byte can flip the origin
// without touching pixel data; bit 5 set means top-to-bottom.
func writeTGA(w io.Writer, fb *tvg.Pixmap) error {
	bw := bufio.NewWriter(w)

	width, height := fb.Width(), fb.Height()
	header := [18]byte{}
	header[2] = 2 // uncompressed true-color
	binary.LittleEndian.PutUint16(header[12:14], uint16(width))
	binary.LittleEndian.PutUint16(header[14:16], uint16(height))
	header[16] = 32   // bits per pixel
	header[17] = 0x28 // 8 bits of alpha, top-left origin

	if _, err := bw.Write(header[:]); err != nil {
		return err
	}

	row := make([]byte, width*4)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := fb.GetPixel(x, y)
			off := x * 4
			row[off+0] = byteFromUnit(c.B)
			row[off+1] = byteFromUnit(c.G)
			row[off+2] = byteFromUnit(c.R)
			row[off+3] = byteFromUnit(c.A)
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func byteFromUnit(v float64) byte {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return byte(v*255 + 0.5)
	}
}
