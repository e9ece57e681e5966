// Package icon imports arbitrary raster images into the packed 1bpp format,
// for logos and POI glyphs that arrive as PNG rather than as draw calls.
package icon

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/makeworld-the-better-one/dither/v2"
	"golang.org/x/image/draw"

	"github.com/mmolhoek/papertrail-sub006/internal/raster"
)

// FromImage converts an image to a 1bpp bitmap no wider than maxWidth:
// Catmull-Rom downscale, grayscale with gamma correction, then serpentine
// Floyd-Steinberg dithering to black and white.
func FromImage(i image.Image, maxWidth int) (*raster.Bitmap, error) {
	if maxWidth <= 0 {
		return nil, fmt.Errorf("Icon width bound must be positive, got %d", maxWidth)
	}

	newWidth := i.Bounds().Dx()
	if newWidth > maxWidth {
		newWidth = maxWidth
	}
	if newWidth <= 0 || i.Bounds().Dy() <= 0 {
		return nil, fmt.Errorf("Icon source image is empty: %v", i.Bounds())
	}

	scaledBounds := image.Rect(0, 0, newWidth, i.Bounds().Dy()*newWidth/i.Bounds().Dx())
	if scaledBounds.Dy() == 0 {
		scaledBounds.Max.Y = 1
	}
	scaled := image.NewRGBA(scaledBounds)
	draw.CatmullRom.Scale(scaled, scaledBounds, i, i.Bounds(), draw.Over, nil)

	// A gamma of 0.5 keeps midtones from washing out to solid black on a
	// bistable panel; chosen by eye against the target display.
	mono := image.NewGray16(scaledBounds)
	for y := scaledBounds.Min.Y; y < scaledBounds.Max.Y; y++ {
		for x := scaledBounds.Min.X; x < scaledBounds.Max.X; x++ {
			g := color.Gray16Model.Convert(scaled.At(x, y)).(color.Gray16)
			corrected := math.Pow(float64(g.Y)/float64(0xFFFF), 0.5)
			mono.SetGray16(x, y, color.Gray16{Y: uint16(corrected * float64(0xFFFF))})
		}
	}

	palette := []color.Color{color.Black, color.White}
	ditherer := dither.NewDitherer(palette)
	ditherer.Matrix = dither.FloydSteinberg
	ditherer.Serpentine = true
	paletted := ditherer.DitherPaletted(mono)

	return pack(paletted)
}

func pack(i *image.Paletted) (*raster.Bitmap, error) {
	b, err := raster.New(i.Rect.Dx(), i.Rect.Dy(), false)
	if err != nil {
		return nil, fmt.Errorf("Couldn't allocate icon bitmap: %w", err)
	}

	// palette index 0 is black by construction above
	for y := 0; y < i.Rect.Dy(); y++ {
		for x := 0; x < i.Rect.Dx(); x++ {
			if i.ColorIndexAt(i.Rect.Min.X+x, i.Rect.Min.Y+y) == 0 {
				b.SetPixel(x, y, true)
			}
		}
	}
	return b, nil
}
