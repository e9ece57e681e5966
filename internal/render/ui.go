package render

import (
	"fmt"
	"math"

	"github.com/mmolhoek/papertrail-sub006/internal/geo"
	"github.com/mmolhoek/papertrail-sub006/internal/model"
	"github.com/mmolhoek/papertrail-sub006/internal/raster"
)

// UIRenderer draws the fixed widgets: compass, scale bar, progress bar and
// the info panel. The two text faces are injected at construction so the
// widgets stay independent of where font data comes from.
type UIRenderer struct {
	panel   Face
	readout Face
}

// NewUIRenderer builds a UI renderer with the default faces: 7x13 panel
// labels and a 24px readout.
func NewUIRenderer() (*UIRenderer, error) {
	readout, err := ReadoutFace(24)
	if err != nil {
		return nil, fmt.Errorf("Couldn't build UI renderer: %w", err)
	}
	return &UIRenderer{panel: PanelFace(), readout: readout}, nil
}

// NewUIRendererFaces builds a UI renderer with caller-provided faces.
func NewUIRendererFaces(panel, readout Face) *UIRenderer {
	return &UIRenderer{panel: panel, readout: readout}
}

// DrawCompass draws a rotating compass at (cx, cy): two concentric rings,
// cardinal marks rotated against the heading, and a needle that keeps
// pointing at true north while the map is track-up.
func (u *UIRenderer) DrawCompass(bm *raster.Bitmap, cx, cy, r int, bearing float64) {
	c := raster.Pt(float64(cx), float64(cy))
	bm.DrawCircle(c, float64(r))
	bm.DrawCircle(c, float64(r-1))

	// cardinal tick marks every 90 degrees, counter-rotated by the heading
	for i := 0; i < 4; i++ {
		deg := float64(i*90) - bearing
		rad := (deg - 90) * math.Pi / 180
		dx, dy := math.Cos(rad), math.Sin(rad)
		outer := raster.Pt(float64(cx)+dx*float64(r-2), float64(cy)+dy*float64(r-2))
		inner := raster.Pt(float64(cx)+dx*float64(r-5), float64(cy)+dy*float64(r-5))
		bm.DrawLine(inner, outer, 1)
	}

	// north needle
	rad := (-bearing - 90) * math.Pi / 180
	dx, dy := math.Cos(rad), math.Sin(rad)
	needleLen := float64(r) * 0.7
	tip := raster.Pt(float64(cx)+dx*needleLen, float64(cy)+dy*needleLen)
	px, py := -dy, dx
	base := needleLen * 0.25
	bm.FillTriangle(
		tip,
		raster.Pt(float64(cx)+px*base, float64(cy)+py*base),
		raster.Pt(float64(cx)-px*base, float64(cy)-py*base),
	)
}

// DrawScaleBar draws a distance scale at (x, y). The bar length is chosen so
// it represents a round distance (1/2/5 times a power of ten meters) while
// fitting maxWidth pixels at the viewport's current scale.
func (u *UIRenderer) DrawScaleBar(bm *raster.Bitmap, x, y, maxWidth int, vp geo.Viewport) {
	mpp := geo.MetersPerPixel(vp.Center.Lat(), vp.Zoom)
	if mpp <= 0 || maxWidth < 8 {
		return
	}

	meters := niceDistance(float64(maxWidth) * mpp)
	barWidth := int(math.Round(meters / mpp))
	if barWidth < 2 {
		return
	}

	bm.DrawHorizontalLine(x, y, barWidth, 2)
	bm.DrawVerticalLine(x, y-4, 5, 1)
	bm.DrawVerticalLine(x+barWidth-1, y-4, 5, 1)
	u.panel.Draw(bm, x, y-6, FormatDistance(meters))
}

// niceDistance rounds down to the largest 1/2/5 * 10^k not exceeding m.
func niceDistance(m float64) float64 {
	if m <= 0 {
		return 0
	}
	mag := math.Pow(10, math.Floor(math.Log10(m)))
	switch {
	case m >= 5*mag:
		return 5 * mag
	case m >= 2*mag:
		return 2 * mag
	default:
		return mag
	}
}

// DrawProgressBar draws an outlined bar with a proportional fill. Percent is
// clamped to [0, 100].
func (u *UIRenderer) DrawProgressBar(bm *raster.Bitmap, x, y, w, h int, percent float64) {
	if w < 3 || h < 3 {
		return
	}
	percent = math.Min(100, math.Max(0, percent))

	bm.DrawHorizontalLine(x, y, w, 1)
	bm.DrawHorizontalLine(x, y+h-1, w, 1)
	bm.DrawVerticalLine(x, y, h, 1)
	bm.DrawVerticalLine(x+w-1, y, h, 1)

	fill := int(math.Round(float64(w-2) * percent / 100))
	if fill > 0 {
		bm.DrawHorizontalLine(x+1, y+1, fill, h-2)
	}
}

// DrawInfoPanel draws the live readouts starting at (x, y): large speed,
// then satellites, zoom, progress and remaining time in panel type. Width w
// bounds the separator rule.
func (u *UIRenderer) DrawInfoPanel(bm *raster.Bitmap, x, y, w int, info model.FollowTrackInfo) {
	baseline := y + u.readout.Height()
	u.readout.Draw(bm, x, baseline, fmt.Sprintf("%.0f", info.SpeedKmh))
	u.panel.Draw(bm, x+u.readout.Measure(fmt.Sprintf("%.0f", info.SpeedKmh))+4, baseline, "KM/H")

	baseline += 4
	bm.DrawHorizontalLine(x, baseline, w, 1)

	lineH := u.panel.Height() + 2
	baseline += lineH
	u.panel.Draw(bm, x, baseline, fmt.Sprintf("SAT %d", info.Satellites))
	baseline += lineH
	u.panel.Draw(bm, x, baseline, fmt.Sprintf("ZOOM %d", info.Zoom))

	if info.HasProgress {
		baseline += lineH
		u.panel.Draw(bm, x, baseline, fmt.Sprintf("%.0f%%", info.ProgressPercent))
		baseline += lineH
		u.panel.Draw(bm, x, baseline, FormatTimeRemaining(info.RemainingSeconds))
	}
}

// FormatDistance renders a distance for the panel: whole meters under a
// kilometer, one decimal under ten kilometers, whole kilometers beyond.
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%.0f M", meters)
	}
	km := meters / 1000
	if km < 10 {
		return fmt.Sprintf("%.1f KM", km)
	}
	return fmt.Sprintf("%.0f KM", km)
}

// FormatTimeRemaining renders an ETA: "<1M" under a minute, whole minutes
// under an hour, hours and minutes beyond.
func FormatTimeRemaining(seconds int) string {
	if seconds < 60 {
		return "<1M"
	}
	if seconds < 3600 {
		return fmt.Sprintf("%dM", seconds/60)
	}
	return fmt.Sprintf("%dH %dM", seconds/3600, (seconds%3600)/60)
}

var compassDirections = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// BearingToDirection gives the nearest of the eight compass labels for a
// bearing in degrees. Negative bearings are not normalized and yield "";
// callers normalize to [0, 360) first. Kept as-is rather than silently
// wrapping, since upstream already guarantees normalized headings.
func BearingToDirection(bearing float64) string {
	idx := int(math.Round(bearing/45)) % 8
	if idx < 0 {
		return ""
	}
	return compassDirections[idx]
}
