package pixbuf

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/parfor/control"
)

func TestNewAndFill(t *testing.T) {
	b := New(64, 33)
	require.Len(t, b.Pix, 64*33*4)

	b.Fill(color.NRGBA{R: 1, G: 2, B: 3, A: 4})
	for y := 0; y < b.H; y++ {
		row := b.row(y)
		for x := 0; x < len(row); x += 4 {
			require.Equal(t, []byte{1, 2, 3, 4}, row[x:x+4])
		}
	}
}

func TestSwapRB(t *testing.T) {
	b := New(8, 2)
	b.Fill(color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40})
	b.SwapRB()
	assert.Equal(t, color.NRGBA{R: 0x30, G: 0x20, B: 0x10, A: 0x40}, b.Image().NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 0x30, G: 0x20, B: 0x10, A: 0x40}, b.Image().NRGBAAt(7, 1))
}

func TestPremultiply(t *testing.T) {
	b := New(2, 1)
	b.Fill(color.NRGBA{R: 0xff, G: 0x80, B: 0x00, A: 0x80})
	b.Premultiply()
	got := b.Image().NRGBAAt(0, 0)
	assert.Equal(t, uint8(0x80), got.R)
	assert.Equal(t, uint8(0x40), got.G)
	assert.Equal(t, uint8(0x00), got.B)
	assert.Equal(t, uint8(0x80), got.A)
}

func TestFlipVertical(t *testing.T) {
	b := New(2, 3)
	for y := 0; y < 3; y++ {
		row := b.row(y)
		for x := range row {
			row[x] = byte(y)
		}
	}
	b.FlipVertical()
	assert.Equal(t, byte(2), b.row(0)[0])
	assert.Equal(t, byte(1), b.row(1)[0])
	assert.Equal(t, byte(0), b.row(2)[0])
}

func TestScale(t *testing.T) {
	b := New(4, 4)
	b.Fill(color.NRGBA{R: 0xff, A: 0xff})
	out := b.Scale(2, 2)
	assert.Equal(t, 2, out.W)
	assert.Equal(t, 2, out.H)
	assert.Equal(t, color.NRGBA{R: 0xff, A: 0xff}, out.Image().NRGBAAt(1, 1))
}

func TestFill_HonorsConfiguredCutoff(t *testing.T) {
	control.Apply(&control.Config{DefaultCutoff: 8})
	defer control.Apply(nil)

	b := New(4, 64) // two rows per configured cutoff
	b.Fill(color.NRGBA{R: 0xaa, G: 0xbb, B: 0xcc, A: 0xff})
	for y := 0; y < b.H; y++ {
		row := b.row(y)
		for x := 0; x < len(row); x += 4 {
			require.Equal(t, []byte{0xaa, 0xbb, 0xcc, 0xff}, row[x:x+4], "row %d", y)
		}
	}
}

func TestFromImageRoundTrip(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.SetNRGBA(2, 1, color.NRGBA{R: 9, G: 8, B: 7, A: 0xff})
	b := FromImage(src)
	assert.Equal(t, 3, b.W)
	assert.Equal(t, 2, b.H)
	assert.Equal(t, color.NRGBA{R: 9, G: 8, B: 7, A: 0xff}, b.Image().NRGBAAt(2, 1))
}
