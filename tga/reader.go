// File: tga/reader.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package tga

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"time"

	"github.com/momentics/parfor"
	"github.com/momentics/parfor/control"
	"github.com/momentics/parfor/pool"
)

const headerLen = 18

// Image type codes from the TGA specification.
const (
	typeNone      = 0
	typeColorMap  = 1
	typeTrueColor = 2
	typeGray      = 3
	typeRLEFlag   = 8
	descTopOrigin = 1 << 5
	descRightLeft = 1 << 4
)

// rowCutoff scales the configured per-element cutoff into whole rows, so
// small images stay sequential.
func rowCutoff(width int) int {
	if width <= 0 {
		return 2
	}
	c := control.DefaultCutoff() / width
	if c < 2 {
		c = 2
	}
	return c
}

var rowScratch = pool.NewBytePool(4096)

// palettePool recycles decoded color-map slices across Decode calls.
var palettePool = pool.NewSyncPool(func() []color.NRGBA {
	return make([]color.NRGBA, 0, 256)
})

type header struct {
	idLength   int
	mapType    int
	imageType  int
	mapFirst   int
	mapLength  int
	mapDepth   int
	width      int
	height     int
	pixelDepth int
	descriptor int
}

func readHeader(r io.Reader) (header, error) {
	var raw [headerLen]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return header{}, fmt.Errorf("tga: short header: %w", err)
	}
	h := header{
		idLength:   int(raw[0]),
		mapType:    int(raw[1]),
		imageType:  int(raw[2]),
		mapFirst:   int(raw[3]) | int(raw[4])<<8,
		mapLength:  int(raw[5]) | int(raw[6])<<8,
		mapDepth:   int(raw[7]),
		width:      int(raw[12]) | int(raw[13])<<8,
		height:     int(raw[14]) | int(raw[15])<<8,
		pixelDepth: int(raw[16]),
		descriptor: int(raw[17]),
	}
	return h, h.validate()
}

func (h header) validate() error {
	base := h.imageType &^ typeRLEFlag
	if base != typeColorMap && base != typeTrueColor && base != typeGray {
		return fmt.Errorf("tga: unsupported image type %d", h.imageType)
	}
	switch h.pixelDepth {
	case 8, 15, 16, 24, 32:
	default:
		return fmt.Errorf("tga: unsupported pixel depth %d", h.pixelDepth)
	}
	if base == typeColorMap {
		if h.mapType != 1 {
			return fmt.Errorf("tga: color-mapped image without color map")
		}
		if h.pixelDepth != 8 {
			return fmt.Errorf("tga: unsupported color map index depth %d", h.pixelDepth)
		}
		switch h.mapDepth {
		case 15, 16, 24, 32:
		default:
			return fmt.Errorf("tga: unsupported color map entry depth %d", h.mapDepth)
		}
	}
	return nil
}

func (h header) rle() bool       { return h.imageType&typeRLEFlag != 0 }
func (h header) baseType() int   { return h.imageType &^ typeRLEFlag }
func (h header) pixelBytes() int { return (h.pixelDepth + 7) / 8 }

// DecodeConfig returns the dimensions and color model without decoding
// pixel data.
func DecodeConfig(r io.Reader) (image.Config, error) {
	h, err := readHeader(r)
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      h.width,
		Height:     h.height,
	}, nil
}

// Decode reads a TGA image into an NRGBA image.
func Decode(r io.Reader) (image.Image, error) {
	started := time.Now()
	h, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	if h.idLength > 0 {
		if _, err := io.CopyN(io.Discard, r, int64(h.idLength)); err != nil {
			return nil, fmt.Errorf("tga: short image id: %w", err)
		}
	}

	palette, err := readPalette(r, h)
	if err != nil {
		return nil, err
	}
	defer func() {
		if palette != nil {
			palettePool.Put(palette[:0])
		}
	}()

	pixBytes := h.pixelBytes()
	rawLen := h.width * h.height * pixBytes
	raw := rowScratch.Acquire(rawLen)
	defer rowScratch.Release(raw)
	if h.rle() {
		err = readRLE(r, raw, pixBytes)
	} else {
		_, err = io.ReadFull(r, raw)
	}
	if err != nil {
		return nil, fmt.Errorf("tga: short pixel data: %w", err)
	}

	img := image.NewNRGBA(image.Rect(0, 0, h.width, h.height))
	convertRows(h, raw, palette, img)
	control.Trace("tga.decode", int64(h.width)*int64(h.height), time.Since(started))
	return img, nil
}

// readPalette loads the color map, converting every entry to NRGBA.
func readPalette(r io.Reader, h header) ([]color.NRGBA, error) {
	if h.mapType == 0 {
		return nil, nil
	}
	entryBytes := (h.mapDepth + 7) / 8
	buf := make([]byte, h.mapLength*entryBytes)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("tga: short color map: %w", err)
	}
	if h.baseType() != typeColorMap {
		// present but unused, e.g. a palette hint on a truecolor file
		return nil, nil
	}
	n := h.mapFirst + h.mapLength
	palette := palettePool.Get()
	if cap(palette) < n {
		palette = make([]color.NRGBA, n)
	} else {
		palette = palette[:n]
		clear(palette)
	}
	for i := 0; i < h.mapLength; i++ {
		palette[h.mapFirst+i] = decodePixel(buf[i*entryBytes:(i+1)*entryBytes], h.mapDepth)
	}
	return palette, nil
}

// readRLE expands run-length packets into dst, which holds exactly the
// image's pixel payload.
func readRLE(r io.Reader, dst []byte, pixBytes int) error {
	var ctrl [1]byte
	var pix [4]byte
	for off := 0; off < len(dst); {
		if _, err := io.ReadFull(r, ctrl[:]); err != nil {
			return err
		}
		count := int(ctrl[0]&0x7f) + 1
		if off+count*pixBytes > len(dst) {
			return fmt.Errorf("tga: run-length packet overflows image")
		}
		if ctrl[0]&0x80 != 0 {
			if _, err := io.ReadFull(r, pix[:pixBytes]); err != nil {
				return err
			}
			for i := 0; i < count; i++ {
				off += copy(dst[off:], pix[:pixBytes])
			}
		} else {
			if _, err := io.ReadFull(r, dst[off:off+count*pixBytes]); err != nil {
				return err
			}
			off += count * pixBytes
		}
	}
	return nil
}

// decodePixel converts one raw little-endian pixel to NRGBA.
func decodePixel(p []byte, depth int) color.NRGBA {
	switch depth {
	case 8:
		return color.NRGBA{R: p[0], G: p[0], B: p[0], A: 0xff}
	case 15, 16:
		v := uint16(p[0]) | uint16(p[1])<<8
		r := uint8(v>>10&0x1f) << 3
		g := uint8(v>>5&0x1f) << 3
		b := uint8(v&0x1f) << 3
		return color.NRGBA{R: r | r>>5, G: g | g>>5, B: b | b>>5, A: 0xff}
	case 24:
		return color.NRGBA{R: p[2], G: p[1], B: p[0], A: 0xff}
	default: // 32
		return color.NRGBA{R: p[2], G: p[1], B: p[0], A: p[3]}
	}
}

// convertRows turns raw pixels into img, one row per engine element, folding
// the descriptor's origin bits into the destination coordinates so no
// separate flip pass is needed.
func convertRows(h header, raw []byte, palette []color.NRGBA, img *image.NRGBA) {
	pixBytes := h.pixelBytes()
	rowLen := h.width * pixBytes
	topDown := h.descriptor&descTopOrigin != 0
	rightLeft := h.descriptor&descRightLeft != 0
	mapped := h.baseType() == typeColorMap

	parfor.For32(0, int32(h.height), 1, rowCutoff(h.width), 0, func(y int32) {
		src := raw[int(y)*rowLen : int(y)*rowLen+rowLen]
		dstY := int(y)
		if !topDown {
			dstY = h.height - 1 - int(y)
		}
		for x := 0; x < h.width; x++ {
			p := src[x*pixBytes : x*pixBytes+pixBytes]
			var c color.NRGBA
			if mapped {
				idx := int(p[0])
				if idx < len(palette) {
					c = palette[idx]
				}
			} else {
				c = decodePixel(p, h.pixelDepth)
			}
			dstX := x
			if rightLeft {
				dstX = h.width - 1 - x
			}
			off := img.PixOffset(dstX, dstY)
			img.Pix[off+0] = c.R
			img.Pix[off+1] = c.G
			img.Pix[off+2] = c.B
			img.Pix[off+3] = c.A
		}
	})
}
