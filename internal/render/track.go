package render

import (
	"github.com/paulmach/orb"
	"github.com/tkrajina/gpxgo/gpx"

	"github.com/mmolhoek/papertrail-sub006/internal/geo"
	"github.com/mmolhoek/papertrail-sub006/internal/raster"
)

// RenderTrack projects a GPX track into the viewport and draws it according
// to the options: consecutive points are connected when ShowLine is set,
// point markers stamped when ShowPoints is set. When RotateWithBearing is
// set and the viewport carries a bearing, the projected points are
// counter-rotated for track-up display. Returns the number of points
// rendered.
func RenderTrack(bm *raster.Bitmap, track *gpx.GPXTrack, vp geo.Viewport, opts Options) int {
	if track == nil {
		return 0
	}
	total := 0
	for _, segment := range track.Segments {
		total += len(segment.Points)
	}
	ls := make(orb.LineString, 0, total)
	for _, segment := range track.Segments {
		for _, p := range segment.Points {
			ls = append(ls, orb.Point{p.Longitude, p.Latitude})
		}
	}
	return RenderRoute(bm, ls, vp, opts)
}

// RenderRoute draws a bare polyline of coordinates, the shape routes and
// track previews share.
func RenderRoute(bm *raster.Bitmap, ls orb.LineString, vp geo.Viewport, opts Options) int {
	if len(ls) == 0 {
		return 0
	}
	var pts []raster.Point
	if opts.RotateWithBearing && vp.HasBearing {
		pts = geo.ProjectLineRotated(ls, vp, vp.Bearing)
	} else {
		pts = geo.ProjectLine(ls, vp)
	}
	return RenderProjectedPoints(bm, pts, opts)
}

// RenderProjectedPoints draws points that are already in pixel space.
func RenderProjectedPoints(bm *raster.Bitmap, pts []raster.Point, opts Options) int {
	return renderPoints(bm, pts, opts, bm.Width(), len(pts))
}

// RenderProjectedPointsClipped skips every pixel at x >= maxX, for
// split-screen layouts.
func RenderProjectedPointsClipped(bm *raster.Bitmap, pts []raster.Point, opts Options, maxX int) int {
	return renderPoints(bm, pts, opts, maxX, len(pts))
}

// RenderProjectedPointsPartial draws only the first n points, for a
// progressive track reveal.
func RenderProjectedPointsPartial(bm *raster.Bitmap, pts []raster.Point, opts Options, n int) int {
	return renderPoints(bm, pts, opts, bm.Width(), n)
}

func renderPoints(bm *raster.Bitmap, pts []raster.Point, opts Options, maxX, limit int) int {
	if limit > len(pts) {
		limit = len(pts)
	}
	if limit <= 0 {
		return 0
	}
	pts = pts[:limit]

	if opts.ShowLine {
		for i := 1; i < len(pts); i++ {
			bm.DrawLineClipped(pts[i-1], pts[i], opts.lineWidth(), maxX)
		}
	}
	if opts.ShowPoints {
		r := float64(opts.pointRadius())
		for _, p := range pts {
			bm.DrawFilledCircleClipped(p, r, maxX)
		}
	}
	return len(pts)
}

// DrawPositionMarker stamps the vehicle position: a filled dot inside an
// outer ring, readable at a glance even on a dirty panel.
func DrawPositionMarker(bm *raster.Bitmap, x, y, r int) {
	c := raster.Pt(float64(x), float64(y))
	bm.DrawFilledCircle(c, float64(r))
	bm.DrawCircle(c, float64(r+2))
}

// DrawWaypointMarker stamps a concentric double circle.
func DrawWaypointMarker(bm *raster.Bitmap, x, y, r int) {
	c := raster.Pt(float64(x), float64(y))
	bm.DrawCircle(c, float64(r))
	bm.DrawCircle(c, float64(r)/2)
}

// DrawStartMarker stamps the track start: a ring with a solid core.
func DrawStartMarker(bm *raster.Bitmap, x, y, r int) {
	c := raster.Pt(float64(x), float64(y))
	bm.DrawCircle(c, float64(r))
	bm.DrawFilledCircle(c, float64(r)/2)
}

// DrawEndMarker stamps a checkered flag of the given size: a pole plus a
// 4x3 grid of alternating cells.
func DrawEndMarker(bm *raster.Bitmap, x, y, size int) {
	cell := size / 4
	if cell < 1 {
		cell = 1
	}
	bm.DrawVerticalLine(x, y, size*3/2, 1)
	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			if (row+col)%2 == 0 {
				bm.DrawHorizontalLine(x+1+col*cell, y+row*cell, cell, cell)
			}
		}
	}
}
