// Package geo maps geographic coordinates onto device pixels. The scale
// model is Web-Mercator style: pixel scale halves per zoom increment and
// shrinks toward the poles with the cosine of the latitude.
package geo

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/mmolhoek/papertrail-sub006/internal/raster"
)

// equatorMetersPerPixel is the Web Mercator ground resolution at zoom 0,
// 2*pi*6378137/256.
const equatorMetersPerPixel = 156543.03392

// metersPerDegreeLat is treated as constant; longitude scale varies with
// latitude and is derived from it.
const metersPerDegreeLat = 111320.0

// Viewport is the geographic window being rendered: device pixel size, the
// coordinate at the screen center, an optional vehicle bearing and the zoom
// level.
type Viewport struct {
	Width, Height int
	Center        orb.Point // lon, lat
	Bearing       float64   // degrees, valid when HasBearing
	HasBearing    bool
	Zoom          int
}

// MetersPerPixel returns the ground distance covered by one pixel at the
// given latitude and zoom.
func MetersPerPixel(lat float64, zoom int) float64 {
	return equatorMetersPerPixel * math.Cos(lat*math.Pi/180) / math.Exp2(float64(zoom))
}

// Project converts a coordinate to a pixel position inside the viewport. The
// viewport center maps to exactly (width/2, height/2); north decreases y,
// east increases x.
func Project(pt orb.Point, vp Viewport) raster.Point {
	mpp := MetersPerPixel(vp.Center.Lat(), vp.Zoom)

	dLatMeters := (pt.Lat() - vp.Center.Lat()) * metersPerDegreeLat
	dLonMeters := (pt.Lon() - vp.Center.Lon()) * metersPerDegreeLat * math.Cos(vp.Center.Lat()*math.Pi/180)

	x := float64(vp.Width)/2 + dLonMeters/mpp
	y := float64(vp.Height)/2 - dLatMeters/mpp
	return raster.Pt(math.Round(x), math.Round(y))
}

// RotatePoint rotates p around (cx, cy) by deg degrees clockwise on screen
// and rounds the result. The center itself is invariant.
func RotatePoint(p raster.Point, cx, cy, deg float64) raster.Point {
	a := deg * math.Pi / 180
	sin, cos := math.Sin(a), math.Cos(a)
	dx, dy := p.X-cx, p.Y-cy
	return raster.Pt(
		math.Round(cx+dx*cos-dy*sin),
		math.Round(cy+dx*sin+dy*cos),
	)
}

// ProjectLine projects every coordinate of ls into the viewport.
func ProjectLine(ls orb.LineString, vp Viewport) []raster.Point {
	pts := make([]raster.Point, len(ls))
	for i, c := range ls {
		pts[i] = Project(c, vp)
	}
	return pts
}

// ProjectLineRotated projects every coordinate, then rotates each result
// around the viewport center by -bearing: track-up rendering counter-rotates
// the world by the vehicle heading so that forward is screen-up. A bearing of
// 0 yields exactly ProjectLine.
func ProjectLineRotated(ls orb.LineString, vp Viewport, bearing float64) []raster.Point {
	pts := ProjectLine(ls, vp)
	if bearing == 0 {
		return pts
	}
	cx, cy := float64(vp.Width)/2, float64(vp.Height)/2
	for i, p := range pts {
		pts[i] = RotatePoint(p, cx, cy, -bearing)
	}
	return pts
}

// Bounds returns the lat/lon box covered by the viewport, centered on its
// center coordinate. The box shrinks as zoom increases and grows with the
// device pixel dimensions.
func Bounds(vp Viewport) orb.Bound {
	return BoundsMargin(vp, 0)
}

// BoundsMargin is Bounds expanded by marginMeters on every side.
func BoundsMargin(vp Viewport, marginMeters float64) orb.Bound {
	mpp := MetersPerPixel(vp.Center.Lat(), vp.Zoom)

	halfWidthMeters := float64(vp.Width)/2*mpp + marginMeters
	halfHeightMeters := float64(vp.Height)/2*mpp + marginMeters

	latSpan := halfHeightMeters / metersPerDegreeLat
	lonSpan := halfWidthMeters / (metersPerDegreeLat * math.Cos(vp.Center.Lat()*math.Pi/180))

	return orb.Bound{
		Min: orb.Point{vp.Center.Lon() - lonSpan, vp.Center.Lat() - latSpan},
		Max: orb.Point{vp.Center.Lon() + lonSpan, vp.Center.Lat() + latSpan},
	}
}
