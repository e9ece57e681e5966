package render

import (
	"math"

	"github.com/mmolhoek/papertrail-sub006/internal/model"
	"github.com/mmolhoek/papertrail-sub006/internal/raster"
)

// uturnArcSegments is the number of line segments approximating the U-turn
// arc. A true arc primitive buys nothing at panel resolution.
const uturnArcSegments = 8

// turnAngle maps a maneuver to the screen angle of its arrow head, degrees
// clockwise from straight up.
func turnAngle(m model.ManeuverType) float64 {
	switch m {
	case model.TurnLeft:
		return -90
	case model.TurnRight:
		return 90
	case model.SharpLeft:
		return -135
	case model.SharpRight:
		return 135
	case model.SlightLeft:
		return -45
	case model.SlightRight:
		return 45
	case model.ForkLeft:
		return -30
	case model.ForkRight:
		return 30
	case model.RampLeft:
		return -60
	case model.RampRight:
		return 60
	default:
		return 0
	}
}

// RenderManeuver draws the glyph for a turn instruction centered on (cx, cy)
// in a box of roughly size pixels. Every maneuver type has a fixed shape;
// there is no text.
func RenderManeuver(bm *raster.Bitmap, m model.ManeuverType, cx, cy, size int) {
	switch m {
	case model.Straight:
		drawStraightArrow(bm, cx, cy, size)
	case model.UTurn:
		drawUTurn(bm, cx, cy, size)
	case model.Arrive:
		drawArrivePin(bm, cx, cy, size)
	case model.RoundaboutExit1, model.RoundaboutExit2, model.RoundaboutExit3,
		model.RoundaboutExit4, model.RoundaboutExit5, model.RoundaboutExit6,
		model.RoundaboutExit7, model.RoundaboutExit8:
		drawRoundabout(bm, cx, cy, size, m.RoundaboutExit())
	default:
		drawTurnArrow(bm, cx, cy, size, turnAngle(m))
	}
}

// heading returns the unit step for an angle in degrees clockwise from
// screen-up.
func heading(deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return math.Sin(rad), -math.Cos(rad)
}

func glyphLineWidth(size int) int {
	w := size / 12
	if w < 2 {
		w = 2
	}
	return w
}

// drawTurnArrow draws a vertical shaft with an angled head: the approach
// road, then the turn itself.
func drawTurnArrow(bm *raster.Bitmap, cx, cy, size int, angle float64) {
	w := glyphLineWidth(size)
	s := float64(size)
	bendX, bendY := float64(cx), float64(cy)-s/6

	bm.DrawLine(raster.Pt(float64(cx), float64(cy)+s/2), raster.Pt(bendX, bendY), w)

	dx, dy := heading(angle)
	headLen := s / 2.5
	tipX, tipY := bendX+dx*headLen, bendY+dy*headLen
	bm.DrawLine(raster.Pt(bendX, bendY), raster.Pt(tipX, tipY), w)
	drawArrowHead(bm, tipX, tipY, angle, s/4)
}

func drawStraightArrow(bm *raster.Bitmap, cx, cy, size int) {
	w := glyphLineWidth(size)
	s := float64(size)
	tipX, tipY := float64(cx), float64(cy)-s/2
	bm.DrawLine(raster.Pt(float64(cx), float64(cy)+s/2), raster.Pt(tipX, tipY), w)
	drawArrowHead(bm, tipX, tipY, 0, s/4)
}

// drawArrowHead fills a triangle whose tip sits at (tipX, tipY) pointing
// along angle.
func drawArrowHead(bm *raster.Bitmap, tipX, tipY, angle, length float64) {
	dx, dy := heading(angle)
	// perpendicular to the heading
	px, py := -dy, dx

	baseX, baseY := tipX-dx*length, tipY-dy*length
	half := length / 2
	bm.FillTriangle(
		raster.Pt(tipX, tipY),
		raster.Pt(baseX+px*half, baseY+py*half),
		raster.Pt(baseX-px*half, baseY-py*half),
	)
}

// drawUTurn draws an up shaft, a segmented half-arc over the top and a down
// shaft ending in a small arrowhead.
func drawUTurn(bm *raster.Bitmap, cx, cy, size int) {
	w := glyphLineWidth(size)
	s := float64(size)
	r := s / 4
	topY := float64(cy) - s/6

	up := raster.Pt(float64(cx)+r, float64(cy)+s/2)
	bm.DrawLine(up, raster.Pt(float64(cx)+r, topY), w)

	// half-arc from the right shaft over to the left, fixed segment count
	prev := raster.Pt(float64(cx)+r, topY)
	for i := 1; i <= uturnArcSegments; i++ {
		a := math.Pi * float64(i) / float64(uturnArcSegments)
		next := raster.Pt(float64(cx)+r*math.Cos(a), topY-r*math.Sin(a))
		bm.DrawLine(prev, next, w)
		prev = next
	}

	downX := float64(cx) - r
	tipY := float64(cy) + s/6
	bm.DrawLine(raster.Pt(downX, topY), raster.Pt(downX, tipY), w)
	drawArrowHead(bm, downX, tipY, 180, s/5)
}

// drawArrivePin draws a location-pin glyph: a ring with a core dot and a
// triangular point reaching down.
func drawArrivePin(bm *raster.Bitmap, cx, cy, size int) {
	s := float64(size)
	headY := float64(cy) - s/6
	r := s / 4

	bm.FillTriangle(
		raster.Pt(float64(cx)-r*0.8, headY+r*0.5),
		raster.Pt(float64(cx)+r*0.8, headY+r*0.5),
		raster.Pt(float64(cx), float64(cy)+s/2),
	)
	bm.DrawFilledCircle(raster.Pt(float64(cx), headY), r)
	bm.DrawCircle(raster.Pt(float64(cx), headY), r)
}

// drawRoundabout draws a ring with an exit tick whose angle follows the exit
// number: first exit at -90 (up), one step of 45 degrees per further exit.
func drawRoundabout(bm *raster.Bitmap, cx, cy, size, exit int) {
	w := glyphLineWidth(size)
	s := float64(size)
	r := s / 3
	c := raster.Pt(float64(cx), float64(cy))

	bm.DrawCircle(c, r)
	bm.DrawCircle(c, r-1)

	deg := -90 + float64(exit-1)*45
	rad := deg * math.Pi / 180
	dx, dy := math.Cos(rad), math.Sin(rad)
	from := raster.Pt(float64(cx)+dx*r, float64(cy)+dy*r)
	tip := raster.Pt(float64(cx)+dx*(r+s/6), float64(cy)+dy*(r+s/6))
	bm.DrawLine(from, tip, w)
	drawArrowHead(bm, tip.X, tip.Y, deg+90, s/6)
}

// DrawDirectionalArrow draws a free-angle arrow at (x, y) pointing along the
// given bearing, for off-road "head this way" indication.
func DrawDirectionalArrow(bm *raster.Bitmap, x, y int, bearing float64, size int) {
	w := glyphLineWidth(size)
	s := float64(size)
	dx, dy := heading(bearing)

	tailX, tailY := float64(x)-dx*s/2, float64(y)-dy*s/2
	tipX, tipY := float64(x)+dx*s/2, float64(y)+dy*s/2
	bm.DrawLine(raster.Pt(tailX, tailY), raster.Pt(tipX, tipY), w)
	drawArrowHead(bm, tipX, tipY, bearing, s/3)
}

// DrawCheckmark draws the arrival/success glyph: a ring around a two-segment
// check line.
func DrawCheckmark(bm *raster.Bitmap, x, y, size int) {
	w := glyphLineWidth(size)
	s := float64(size)
	bm.DrawCircle(raster.Pt(float64(x), float64(y)), s/2)

	mid := raster.Pt(float64(x)-s/12, float64(y)+s/6)
	bm.DrawLine(raster.Pt(float64(x)-s/4, float64(y)), mid, w)
	bm.DrawLine(mid, raster.Pt(float64(x)+s/4, float64(y)-s/5), w)
}
