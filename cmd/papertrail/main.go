package main

import (
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"strings"

	"github.com/paulmach/orb"
	"github.com/spf13/cobra"
	"github.com/tkrajina/gpxgo/gpx"

	"github.com/mmolhoek/papertrail-sub006/internal/geo"
	"github.com/mmolhoek/papertrail-sub006/internal/icon"
	"github.com/mmolhoek/papertrail-sub006/internal/model"
	"github.com/mmolhoek/papertrail-sub006/internal/raster"
	"github.com/mmolhoek/papertrail-sub006/internal/render"
)

var (
	version = "dev"
	commit  = "none"
)

// Display is the boundary to the panel driver: it consumes a finished frame
// and performs the refresh. The render core knows nothing about the
// transport behind it.
type Display interface {
	Size() (int, int)
	Refresh(*raster.Bitmap) error
}

// fileDisplay writes each refreshed frame to a file instead of a panel.
type fileDisplay struct {
	width, height int
	path          string
	format        string
}

func (d *fileDisplay) Size() (int, int) {
	return d.width, d.height
}

func (d *fileDisplay) Refresh(b *raster.Bitmap) error {
	f, err := os.Create(d.path)
	if err != nil {
		return fmt.Errorf("Couldn't open output file: %w", err)
	}
	defer f.Close()

	switch d.format {
	case "png":
		if err := png.Encode(f, b); err != nil {
			return fmt.Errorf("Couldn't encode frame: %w", err)
		}
	case "pbm":
		if _, err := fmt.Fprintf(f, "P4\n%d %d\n", b.Width(), b.Height()); err != nil {
			return err
		}
		// PBM wants 1 for black, the panel format uses 1 for white
		inverted := make([]byte, len(b.Data()))
		for i, by := range b.Data() {
			inverted[i] = ^by
		}
		if _, err := f.Write(inverted); err != nil {
			return err
		}
	default:
		return fmt.Errorf("Unknown output format %q", d.format)
	}
	return nil
}

var rootCmd = &cobra.Command{
	Use:   "papertrail",
	Short: "Render GPS tracks for a 1bpp e-paper navigation display",
	Long: `papertrail is the raster rendering core of an e-paper GPS device.

The render subcommand runs the full pipeline offline: it loads a GPX track,
projects it into a viewport, composes the map and UI widgets into a packed
1-bit frame and writes the frame to a file in place of the panel driver.`,
}

var (
	flagWidth       int
	flagHeight      int
	flagZoom        int
	flagBearing     float64
	flagTrackUp     bool
	flagPoints      bool
	flagLineWidth   int
	flagPointRadius int
	flagIconPath    string
	flagOut         string
	flagFormat      string
)

var renderCmd = &cobra.Command{
	Use:   "render <input.gpx>",
	Short: "Render a GPX file to a 1bpp frame",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("papertrail %s (%s)\n", version, commit)
	},
}

func init() {
	renderCmd.Flags().IntVar(&flagWidth, "width", 400, "frame width in pixels")
	renderCmd.Flags().IntVar(&flagHeight, "height", 300, "frame height in pixels")
	renderCmd.Flags().IntVar(&flagZoom, "zoom", 14, "zoom level (scale halves per +1)")
	renderCmd.Flags().Float64Var(&flagBearing, "bearing", 0, "vehicle bearing in degrees")
	renderCmd.Flags().BoolVar(&flagTrackUp, "track-up", false, "rotate the map so the bearing points up")
	renderCmd.Flags().BoolVar(&flagPoints, "points", false, "draw a marker at every track point")
	renderCmd.Flags().IntVar(&flagLineWidth, "line-width", 2, "track line width in pixels")
	renderCmd.Flags().IntVar(&flagPointRadius, "point-radius", 2, "track point marker radius")
	renderCmd.Flags().StringVar(&flagIconPath, "icon", "", "optional PNG stamped in the top-left corner")
	renderCmd.Flags().StringVar(&flagOut, "o", "frame.png", "output file")
	renderCmd.Flags().StringVar(&flagFormat, "format", "png", "output format: png or pbm")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	data, err := gpx.ParseFile(args[0])
	if err != nil {
		return fmt.Errorf("Couldn't parse GPX file:\n%w", err)
	}
	if len(data.Tracks) == 0 {
		return fmt.Errorf("GPX file %q contains no tracks", args[0])
	}
	track := &data.Tracks[0]

	display := &fileDisplay{
		width:  flagWidth,
		height: flagHeight,
		path:   flagOut,
		format: strings.ToLower(flagFormat),
	}

	pool := raster.NewPool()
	defer pool.Clear()

	w, h := display.Size()
	frame, err := pool.Acquire(w, h, false)
	if err != nil {
		return err
	}
	defer pool.Release(frame)

	vp := geo.Viewport{
		Width:      w,
		Height:     h,
		Center:     trackCenter(track),
		Bearing:    flagBearing,
		HasBearing: cmd.Flags().Changed("bearing"),
		Zoom:       flagZoom,
	}

	opts := render.DefaultOptions()
	opts.LineWidth = flagLineWidth
	opts.PointRadius = flagPointRadius
	opts.ShowPoints = flagPoints
	opts.RotateWithBearing = flagTrackUp

	rendered := render.RenderTrack(frame, track, vp, opts)
	slog.Info("Rendered track", "points", rendered, "zoom", vp.Zoom)

	ui, err := render.NewUIRenderer()
	if err != nil {
		return err
	}
	ui.DrawCompass(frame, w-30, 30, 20, vp.Bearing)
	ui.DrawScaleBar(frame, 10, h-12, w/4, vp)
	ui.DrawInfoPanel(frame, 10, 10, w/4, model.FollowTrackInfo{
		SpeedKmh:   0,
		Satellites: 0,
		Zoom:       vp.Zoom,
	})
	render.DrawPositionMarker(frame, w/2, h/2, 4)

	if flagIconPath != "" {
		if err := stampIcon(frame, flagIconPath); err != nil {
			return err
		}
	}

	if err := display.Refresh(frame); err != nil {
		return err
	}

	stats := pool.Stats()
	slog.Debug("Pool after frame", "created", stats.Created, "hitRate", stats.HitRate)
	fmt.Printf("Wrote %dx%d frame to %s\n", w, h, flagOut)
	return nil
}

func stampIcon(frame *raster.Bitmap, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("Couldn't open icon:\n%w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return fmt.Errorf("Couldn't decode icon:\n%w", err)
	}
	ic, err := icon.FromImage(img, frame.Width()/4)
	if err != nil {
		return err
	}
	frame.Blit(ic, 2, 2)
	return nil
}

// trackCenter picks the midpoint of the track's bounding box so the whole
// track is biased toward the frame.
func trackCenter(track *gpx.GPXTrack) orb.Point {
	var minLat, maxLat, minLon, maxLon float64
	first := true
	for _, segment := range track.Segments {
		for _, p := range segment.Points {
			if first {
				minLat, maxLat = p.Latitude, p.Latitude
				minLon, maxLon = p.Longitude, p.Longitude
				first = false
				continue
			}
			if p.Latitude < minLat {
				minLat = p.Latitude
			}
			if p.Latitude > maxLat {
				maxLat = p.Latitude
			}
			if p.Longitude < minLon {
				minLon = p.Longitude
			}
			if p.Longitude > maxLon {
				maxLon = p.Longitude
			}
		}
	}
	return orb.Point{(minLon + maxLon) / 2, (minLat + maxLat) / 2}
}
