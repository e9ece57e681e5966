// Package render turns domain data into draw calls: tracks, roads, maneuver
// glyphs and the fixed UI widgets. Renderers are stateless; each call is a
// pure function of the bitmap, the data and the configuration, and returns
// how many features it painted.
package render

// Options configures a render pass. AntiAlias exists for interface parity
// with richer backends and is ignored: the target is strictly one bit per
// pixel.
type Options struct {
	LineWidth                int
	PointRadius              int
	ShowPoints               bool
	ShowLine                 bool
	HighlightCurrentPosition bool
	ShowDirection            bool
	AntiAlias                bool
	RotateWithBearing        bool
}

// DefaultOptions renders a plain 1px line without point markers.
func DefaultOptions() Options {
	return Options{
		LineWidth:   1,
		PointRadius: 2,
		ShowLine:    true,
	}
}

func (o Options) lineWidth() int {
	if o.LineWidth < 1 {
		return 1
	}
	return o.LineWidth
}

func (o Options) pointRadius() int {
	if o.PointRadius < 1 {
		return 1
	}
	return o.PointRadius
}
