package render

import (
	"sort"

	"github.com/paulmach/orb"

	"github.com/mmolhoek/papertrail-sub006/internal/geo"
	"github.com/mmolhoek/papertrail-sub006/internal/model"
	"github.com/mmolhoek/papertrail-sub006/internal/raster"
)

// roadMarginMeters expands the viewport box when filtering, so roads whose
// vertices sit just off screen but whose segments cross it still render.
const roadMarginMeters = 50.0

// RenderRoads draws the given roads into the viewport: filters to the ones
// near the visible box, sorts so that higher-priority classes are drawn last
// (on top), and strokes each with the width of its class. Roads with fewer
// than two points are skipped and do not count toward the returned total.
func RenderRoads(bm *raster.Bitmap, roads []model.CachedRoad, vp geo.Viewport, opts Options) int {
	return renderRoads(bm, roads, vp, opts, bm.Width())
}

// RenderRoadsClipped is RenderRoads with every pixel at x >= maxX skipped.
func RenderRoadsClipped(bm *raster.Bitmap, roads []model.CachedRoad, vp geo.Viewport, opts Options, maxX int) int {
	return renderRoads(bm, roads, vp, opts, maxX)
}

func renderRoads(bm *raster.Bitmap, roads []model.CachedRoad, vp geo.Viewport, opts Options, maxX int) int {
	visible := FilterRoadsInBounds(roads, geo.BoundsMargin(vp, roadMarginMeters))

	// Stable sort: roads of equal priority keep their service order, drawing
	// stays deterministic frame to frame.
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Highway.Priority() < visible[j].Highway.Priority()
	})

	var bearing float64
	if opts.RotateWithBearing && vp.HasBearing {
		bearing = vp.Bearing
	}

	rendered := 0
	for _, road := range visible {
		if len(road.Geometry) < 2 {
			continue
		}
		pts := geo.ProjectLineRotated(road.Geometry, vp, bearing)
		width := road.Highway.RenderWidth()
		for i := 1; i < len(pts); i++ {
			bm.DrawLineClipped(pts[i-1], pts[i], width, maxX)
		}
		rendered++
	}
	return rendered
}

// FilterRoadsInBounds keeps the roads with at least one vertex inside the
// box. The caller expands the box by its margin beforehand; a road wholly
// outside the expanded box is dropped.
func FilterRoadsInBounds(roads []model.CachedRoad, bound orb.Bound) []model.CachedRoad {
	kept := make([]model.CachedRoad, 0, len(roads))
	for _, road := range roads {
		if roadInBound(road.Geometry, bound) {
			kept = append(kept, road)
		}
	}
	return kept
}

func roadInBound(ls orb.LineString, bound orb.Bound) bool {
	for _, pt := range ls {
		if bound.Contains(pt) {
			return true
		}
	}
	return false
}
