package render

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/tkrajina/gpxgo/gpx"

	"github.com/mmolhoek/papertrail-sub006/internal/geo"
	"github.com/mmolhoek/papertrail-sub006/internal/raster"
)

func aBitmap(t *testing.T, w, h int) *raster.Bitmap {
	t.Helper()
	b, err := raster.New(w, h, false)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func blackPixels(b *raster.Bitmap) int {
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

func testViewport() geo.Viewport {
	return geo.Viewport{
		Width:  200,
		Height: 200,
		Center: orb.Point{5.12, 52.09},
		Zoom:   15,
	}
}

func aTrack() *gpx.GPXTrack {
	return &gpx.GPXTrack{
		Name: "morning loop",
		Segments: []gpx.GPXTrackSegment{
			{Points: []gpx.GPXPoint{
				{Point: gpx.Point{Latitude: 52.088, Longitude: 5.118}},
				{Point: gpx.Point{Latitude: 52.089, Longitude: 5.119}},
			}},
			{Points: []gpx.GPXPoint{
				{Point: gpx.Point{Latitude: 52.090, Longitude: 5.120}},
				{Point: gpx.Point{Latitude: 52.091, Longitude: 5.121}},
				{Point: gpx.Point{Latitude: 52.092, Longitude: 5.122}},
			}},
		},
	}
}

func TestRenderTrackCountsAllSegments(t *testing.T) {
	bm := aBitmap(t, 200, 200)
	n := RenderTrack(bm, aTrack(), testViewport(), DefaultOptions())
	if n != 5 {
		t.Errorf("rendered %d points, want 5 across both segments", n)
	}
	if blackPixels(bm) == 0 {
		t.Error("a visible track should paint pixels")
	}
}

func TestRenderTrackNilAndEmpty(t *testing.T) {
	bm := aBitmap(t, 200, 200)
	if n := RenderTrack(bm, nil, testViewport(), DefaultOptions()); n != 0 {
		t.Errorf("nil track rendered %d points", n)
	}
	if n := RenderTrack(bm, &gpx.GPXTrack{}, testViewport(), DefaultOptions()); n != 0 {
		t.Errorf("empty track rendered %d points", n)
	}
	if blackPixels(bm) != 0 {
		t.Error("nothing should be painted")
	}
}

func TestRenderRouteGates(t *testing.T) {
	route := orb.LineString{{5.118, 52.088}, {5.122, 52.092}}

	linesOnly := aBitmap(t, 200, 200)
	opts := DefaultOptions()
	RenderRoute(linesOnly, route, testViewport(), opts)

	nothing := aBitmap(t, 200, 200)
	opts.ShowLine = false
	RenderRoute(nothing, route, testViewport(), opts)
	if blackPixels(nothing) != 0 {
		t.Error("with both gates off nothing should render")
	}

	points := aBitmap(t, 200, 200)
	opts.ShowPoints = true
	RenderRoute(points, route, testViewport(), opts)
	if blackPixels(points) == 0 {
		t.Error("point markers should render with ShowPoints")
	}
	if blackPixels(linesOnly) == 0 {
		t.Error("line should render with ShowLine")
	}
}

func TestRenderProjectedPointsClipped(t *testing.T) {
	// the marker at x=99 sits within its radius of the boundary; its disc
	// must be clipped just like the line pixels are
	pts := []raster.Point{raster.Pt(10, 50), raster.Pt(99, 50), raster.Pt(190, 50)}
	bm := aBitmap(t, 200, 100)
	opts := DefaultOptions()
	opts.ShowPoints = true
	opts.PointRadius = 3

	RenderProjectedPointsClipped(bm, pts, opts, 100)
	for y := 0; y < 100; y++ {
		for x := 100; x < 200; x++ {
			if bm.Pixel(x, y) {
				t.Fatalf("pixel (%d, %d) painted beyond the clip boundary", x, y)
			}
		}
	}
	if !bm.Pixel(10, 50) {
		t.Error("left of the boundary should still render")
	}
}

func TestRenderProjectedPointsPartial(t *testing.T) {
	pts := []raster.Point{
		raster.Pt(10, 10), raster.Pt(30, 10), raster.Pt(50, 10), raster.Pt(70, 10),
	}
	bm := aBitmap(t, 100, 20)

	if n := RenderProjectedPointsPartial(bm, pts, DefaultOptions(), 2); n != 2 {
		t.Errorf("partial render reported %d points, want 2", n)
	}
	if !bm.Pixel(20, 10) {
		t.Error("the first segment should be drawn")
	}
	if bm.Pixel(40, 10) || bm.Pixel(60, 10) {
		t.Error("segments past the reveal limit should not be drawn")
	}

	if n := RenderProjectedPointsPartial(bm, pts, DefaultOptions(), 99); n != 4 {
		t.Errorf("limit beyond the slice reported %d points, want 4", n)
	}
}

func TestTrackUpRotationApplied(t *testing.T) {
	vp := testViewport()
	vp.Bearing = 90
	vp.HasBearing = true

	route := orb.LineString{{5.118, 52.088}, {5.122, 52.092}}
	opts := DefaultOptions()

	plain := aBitmap(t, 200, 200)
	RenderRoute(plain, route, vp, opts)

	opts.RotateWithBearing = true
	rotated := aBitmap(t, 200, 200)
	RenderRoute(rotated, route, vp, opts)

	same := true
	for y := 0; y < 200 && same; y++ {
		for x := 0; x < 200; x++ {
			if plain.Pixel(x, y) != rotated.Pixel(x, y) {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("a 90-degree bearing with RotateWithBearing should change the raster")
	}
}

func TestMarkersNearEdgesAreSafe(t *testing.T) {
	bm := aBitmap(t, 64, 64)
	DrawPositionMarker(bm, 0, 0, 5)
	DrawWaypointMarker(bm, 63, 63, 6)
	DrawStartMarker(bm, -4, 30, 5)
	DrawEndMarker(bm, 60, 2, 8)
	if blackPixels(bm) == 0 {
		t.Error("markers touching the frame should still paint their on-screen part")
	}
}
