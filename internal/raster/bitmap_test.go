package raster

import (
	"fmt"
	"math/rand"
	"testing"
)

func aRandomSize() (int, int) {
	return 1 + rand.Intn(400), 1 + rand.Intn(400)
}

func countBlack(b *Bitmap) int {
	n := 0
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.Pixel(x, y) {
				n++
			}
		}
	}
	return n
}

func assertAllBytes(t *testing.T, b *Bitmap, want byte) {
	t.Helper()
	for i, by := range b.Data() {
		if by != want {
			t.Fatalf("byte %d is %#02x, want %#02x", i, by, want)
		}
	}
}

func TestNewBufferLength(t *testing.T) {
	for i := 0; i < 30; i++ {
		w, h := aRandomSize()
		t.Run(fmt.Sprintf("test %v: %vx%v", i, w, h), func(t *testing.T) {
			b, err := New(w, h, false)
			if err != nil {
				t.Fatalf("New(%d, %d) failed: %v", w, h, err)
			}
			want := (w + 7) / 8 * h
			if len(b.Data()) != want {
				t.Errorf("buffer is %d bytes, want %d", len(b.Data()), want)
			}
		})
	}
}

func TestNewFill(t *testing.T) {
	white, err := New(17, 9, false)
	if err != nil {
		t.Fatal(err)
	}
	assertAllBytes(t, white, 0xFF)

	black, err := New(17, 9, true)
	if err != nil {
		t.Fatal(err)
	}
	assertAllBytes(t, black, 0x00)
}

func TestNewRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 10}, {10, 0}, {-3, 10}, {10, -3}, {0, 0}} {
		if _, err := New(dims[0], dims[1], false); err == nil {
			t.Errorf("New(%d, %d) should have failed", dims[0], dims[1])
		}
	}
}

func TestSetPixelRoundtrip(t *testing.T) {
	b, _ := New(100, 50, false)
	for i := 0; i < 200; i++ {
		x, y := rand.Intn(100), rand.Intn(50)
		index := y*b.Stride() + x/8
		before := b.Data()[index]

		b.SetPixel(x, y, true)
		if !b.Pixel(x, y) {
			t.Fatalf("pixel (%d, %d) should read black after painting", x, y)
		}
		b.SetPixel(x, y, false)
		if b.Data()[index] != before {
			t.Fatalf("byte %d not restored after paint/unpaint at (%d, %d)", index, x, y)
		}
	}
}

func TestSetPixelOutOfBoundsIsNoop(t *testing.T) {
	b, _ := New(33, 21, false)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {33, 0}, {0, 21}, {-100, -100}, {1000, 1000}} {
		b.SetPixel(p[0], p[1], true)
	}
	assertAllBytes(t, b, 0xFF)

	if b.Pixel(-1, 0) || b.Pixel(33, 0) || b.Pixel(0, 21) {
		t.Error("out-of-bounds pixels should read white")
	}
}

func TestBitIndexConvention(t *testing.T) {
	// pixel (x, y) lives at byte y*stride + x/8, bit 7-(x%8), MSB leftmost
	b, _ := New(16, 2, false)
	b.SetPixel(0, 0, true)
	if b.Data()[0] != 0x7F {
		t.Errorf("painting (0,0) gave byte %#02x, want 0x7F", b.Data()[0])
	}
	b.SetPixel(15, 1, true)
	if b.Data()[3] != 0xFE {
		t.Errorf("painting (15,1) gave byte %#02x, want 0xFE", b.Data()[3])
	}
}

func TestChunkSharesBuffer(t *testing.T) {
	b, _ := New(24, 10, false)
	band := b.Chunk(4, 3)
	if band.Height() != 3 || band.Width() != 24 {
		t.Fatalf("chunk is %s, want 24x3", band)
	}
	band.SetPixel(0, 0, true)
	if !b.Pixel(0, 4) {
		t.Error("writing through a chunk should write the parent buffer")
	}
}

func TestBlitTransparentWhite(t *testing.T) {
	dst, _ := New(20, 20, false)
	dst.SetPixel(5, 5, true)

	src, _ := New(4, 4, false)
	src.SetPixel(0, 0, true)

	dst.Blit(src, 4, 4)
	if !dst.Pixel(4, 4) {
		t.Error("black source pixel should be stamped")
	}
	if !dst.Pixel(5, 5) {
		t.Error("white source pixel should be transparent, not erase")
	}
}

func TestImageInterop(t *testing.T) {
	b, _ := New(10, 10, false)
	r := b.Bounds()
	if r.Dx() != 10 || r.Dy() != 10 {
		t.Fatalf("bounds %v, want 10x10", r)
	}
	b.SetPixel(3, 7, true)

	black := b.At(3, 7)
	cr, _, _, _ := black.RGBA()
	if cr != 0 {
		t.Errorf("painted pixel should be black via At, got %v", black)
	}
	white := b.At(0, 0)
	cr, _, _, _ = white.RGBA()
	if cr == 0 {
		t.Errorf("blank pixel should be white via At, got %v", white)
	}

	b.Set(4, 4, black)
	if !b.Pixel(4, 4) {
		t.Error("Set with a dark color should paint black")
	}
}
