// This file implements the packed one-bit-per-pixel framebuffer that every
// renderer in this module draws into and that the display driver consumes.

package raster

import (
	"fmt"
	"image"
	"image/color"
	"time"
)

const bitsPerWord = 8

// Bitmap is a fixed-size raster packed one bit per pixel, MSB first, row
// major. A set bit is white, a clear bit is black, which matches what the
// panel driver expects for a blank (white) sheet.
type Bitmap struct {
	data                  []byte
	width, height, stride int
	createdAt             time.Time
}

// New allocates a Bitmap of the given dimensions. The buffer is filled white
// unless black is set. Dimensions must be positive; this is the only drawing
// input that is a hard error rather than a silent no-op, because a bad stride
// would corrupt every later byte index.
func New(width, height int, black bool) (*Bitmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("Bitmap dimensions must be positive, got %dx%d", width, height)
	}
	stride := (width + bitsPerWord - 1) / bitsPerWord
	b := &Bitmap{
		data:      make([]byte, stride*height),
		width:     width,
		height:    height,
		stride:    stride,
		createdAt: time.Now(),
	}
	b.Fill(black)
	return b, nil
}

func (b *Bitmap) Width() int {
	return b.width
}

func (b *Bitmap) Height() int {
	return b.height
}

func (b *Bitmap) Stride() int {
	return b.stride
}

func (b *Bitmap) Data() []byte {
	return b.data
}

func (b *Bitmap) CreatedAt() time.Time {
	return b.createdAt
}

func (b *Bitmap) String() string {
	return fmt.Sprintf("Bitmap(%d,%d)", b.width, b.height)
}

// Fill resets every pixel to white, or to black if black is set.
func (b *Bitmap) Fill(black bool) {
	fill := byte(0xFF)
	if black {
		fill = 0x00
	}
	for i := range b.data {
		b.data[i] = fill
	}
}

// SetPixel paints the pixel at (x, y): ink clears the bit (black), !ink sets
// it (white). Coordinates outside the bitmap are silently ignored; renderers
// compose many shapes and partially off-screen geometry is routine.
func (b *Bitmap) SetPixel(x, y int, ink bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	index := y*b.stride + x/bitsPerWord
	mask := byte(1) << (bitsPerWord - 1 - x%bitsPerWord)
	if ink {
		b.data[index] &^= mask
	} else {
		b.data[index] |= mask
	}
}

// Pixel reports whether the pixel at (x, y) is black. Out-of-bounds
// coordinates read as white.
func (b *Bitmap) Pixel(x, y int) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}
	index := y*b.stride + x/bitsPerWord
	mask := byte(1) << (bitsPerWord - 1 - x%bitsPerWord)
	return b.data[index]&mask == 0
}

// Chunk takes a horizontal band of the bitmap, sharing the underlying buffer.
// Display drivers that push the panel in bands use this to slice a finished
// frame without copying.
func (b *Bitmap) Chunk(start, height int) *Bitmap {
	return &Bitmap{
		data:      b.data[b.stride*start : b.stride*(start+height)],
		width:     b.width,
		height:    height,
		stride:    b.stride,
		createdAt: b.createdAt,
	}
}

// Blit stamps src onto b with src's origin at (x, y). Black pixels of src are
// painted, white pixels are treated as transparent so imported icons keep
// their surroundings.
func (b *Bitmap) Blit(src *Bitmap, x, y int) {
	for sy := 0; sy < src.height; sy++ {
		for sx := 0; sx < src.width; sx++ {
			if src.Pixel(sx, sy) {
				b.SetPixel(x+sx, y+sy, true)
			}
		}
	}
}

// image.Image / draw.Image over the packed buffer, so x/image font drawing
// and the standard encoders can target a Bitmap directly.

func (b *Bitmap) ColorModel() color.Model {
	return color.GrayModel
}

func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

func (b *Bitmap) At(x, y int) color.Color {
	if b.Pixel(x, y) {
		return color.Gray{Y: 0x00}
	}
	return color.Gray{Y: 0xFF}
}

func (b *Bitmap) Set(x, y int, c color.Color) {
	gray := color.GrayModel.Convert(c).(color.Gray)
	b.SetPixel(x, y, gray.Y < 0x80)
}
