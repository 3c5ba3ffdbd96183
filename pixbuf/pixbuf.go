// File: pixbuf/pixbuf.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package pixbuf wraps a raw non-premultiplied RGBA byte buffer with
// width, height, and row stride, and runs its bulk pixel operations through
// the parallel range engine. The buffer is shared unsynchronized across
// chunks; disjoint sub-ranges make that safe by construction.
package pixbuf

import (
	"image"
	"image/color"
	"time"

	"golang.org/x/image/draw"

	"github.com/momentics/parfor"
	"github.com/momentics/parfor/control"
)

const bytesPerPixel = 4

// Buffer is a W x H RGBA pixel buffer. Pix holds rows of Stride bytes each;
// Stride is at least W*4.
type Buffer struct {
	Pix    []byte
	Stride int
	W, H   int
}

// New allocates a tightly packed buffer.
func New(w, h int) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Buffer{
		Pix:    make([]byte, w*h*bytesPerPixel),
		Stride: w * bytesPerPixel,
		W:      w,
		H:      h,
	}
}

// FromImage copies img into a new buffer.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	b := New(bounds.Dx(), bounds.Dy())
	draw.Draw(b.nrgba(), b.nrgba().Bounds(), img, bounds.Min, draw.Src)
	return b
}

// Image returns a view of the buffer as an NRGBA image, sharing pixels.
func (b *Buffer) Image() *image.NRGBA {
	return b.nrgba()
}

func (b *Buffer) nrgba() *image.NRGBA {
	return &image.NRGBA{Pix: b.Pix, Stride: b.Stride, Rect: image.Rect(0, 0, b.W, b.H)}
}

// row returns the packed pixel bytes of row y.
func (b *Buffer) row(y int) []byte {
	off := y * b.Stride
	return b.Pix[off : off+b.W*bytesPerPixel]
}

// Fill sets every pixel to c.
func (b *Buffer) Fill(c color.NRGBA) {
	started := time.Now()
	parfor.For32Data(0, int32(b.H), 1, b.rowCutoff(), 0, b, func(y int32, data any) {
		buf := data.(*Buffer)
		row := buf.row(int(y))
		for x := 0; x < len(row); x += bytesPerPixel {
			row[x+0] = c.R
			row[x+1] = c.G
			row[x+2] = c.B
			row[x+3] = c.A
		}
	})
	control.Trace("pixbuf.fill", int64(b.W)*int64(b.H), time.Since(started))
}

// SwapRB exchanges the red and blue channels in place, converting between
// RGBA and BGRA byte orders.
func (b *Buffer) SwapRB() {
	started := time.Now()
	for y := 0; y < b.H; y++ {
		parfor.ForStride(b.row(y), bytesPerPixel, control.DefaultCutoff(), 0, func(p []byte) {
			p[0], p[2] = p[2], p[0]
		})
	}
	control.Trace("pixbuf.swaprb", int64(b.W)*int64(b.H), time.Since(started))
}

// Premultiply scales each color channel by its alpha in place.
func (b *Buffer) Premultiply() {
	started := time.Now()
	parfor.ForStride(b.Pix[:b.H*b.Stride], bytesPerPixel, control.DefaultCutoff(), 0, func(p []byte) {
		a := uint32(p[3])
		p[0] = uint8(uint32(p[0]) * a / 0xff)
		p[1] = uint8(uint32(p[1]) * a / 0xff)
		p[2] = uint8(uint32(p[2]) * a / 0xff)
	})
	control.Trace("pixbuf.premultiply", int64(b.W)*int64(b.H), time.Since(started))
}

// FlipVertical mirrors the buffer across its horizontal axis in place.
func (b *Buffer) FlipVertical() {
	started := time.Now()
	parfor.For32Data(0, int32(b.H/2), 1, b.rowCutoff(), 0, b, func(y int32, data any) {
		buf := data.(*Buffer)
		top := buf.row(int(y))
		bottom := buf.row(buf.H - 1 - int(y))
		for i := range top {
			top[i], bottom[i] = bottom[i], top[i]
		}
	})
	control.Trace("pixbuf.flip", int64(b.W)*int64(b.H), time.Since(started))
}

// Scale resamples the buffer to w x h with bilinear interpolation.
func (b *Buffer) Scale(w, h int) *Buffer {
	started := time.Now()
	out := New(w, h)
	draw.ApproxBiLinear.Scale(out.nrgba(), out.nrgba().Bounds(), b.nrgba(), b.nrgba().Bounds(), draw.Src, nil)
	control.Trace("pixbuf.scale", int64(w)*int64(h), time.Since(started))
	return out
}

// rowCutoff converts the configured per-pixel cutoff into whole rows.
func (b *Buffer) rowCutoff() int {
	if b.W <= 0 {
		return 2
	}
	c := control.DefaultCutoff() / b.W
	if c < 2 {
		c = 2
	}
	return c
}
