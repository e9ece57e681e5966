package render

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/mmolhoek/papertrail-sub006/internal/raster"
)

// Face is the text-drawing capability injected into the UI renderer. It
// wraps a font.Face and draws black glyphs straight into the packed bitmap
// through its draw.Image side.
type Face struct {
	face font.Face
}

// PanelFace is the small fixed 7x13 face used for panel labels. It needs no
// font data and never fails, which matters on a device without a filesystem
// worth trusting.
func PanelFace() Face {
	return Face{face: basicfont.Face7x13}
}

// ReadoutFace builds a large face from the embedded Go Regular TTF for the
// speed readout.
func ReadoutFace(sizePx float64) (Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return Face{}, fmt.Errorf("Couldn't parse embedded font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    sizePx,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return Face{}, fmt.Errorf("Couldn't build %vpx face: %w", sizePx, err)
	}
	return Face{face: face}, nil
}

// Draw renders s with its baseline starting at (x, y).
func (f Face) Draw(bm *raster.Bitmap, x, y int, s string) {
	d := font.Drawer{
		Dst:  bm,
		Src:  image.NewUniform(color.Black),
		Face: f.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// Measure returns the advance width of s in pixels.
func (f Face) Measure(s string) int {
	return font.MeasureString(f.face, s).Ceil()
}

// Height returns the face's line height in pixels.
func (f Face) Height() int {
	return f.face.Metrics().Height.Ceil()
}
