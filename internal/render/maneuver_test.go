package render

import (
	"fmt"
	"testing"

	"github.com/mmolhoek/papertrail-sub006/internal/model"
)

var allManeuvers = []model.ManeuverType{
	model.TurnLeft, model.TurnRight, model.SharpLeft, model.SharpRight,
	model.SlightLeft, model.SlightRight, model.Straight, model.UTurn,
	model.Arrive, model.ForkLeft, model.ForkRight, model.RampLeft,
	model.RampRight, model.RoundaboutExit1, model.RoundaboutExit2,
	model.RoundaboutExit3, model.RoundaboutExit4, model.RoundaboutExit5,
	model.RoundaboutExit6, model.RoundaboutExit7, model.RoundaboutExit8,
}

func TestRenderManeuverPaintsEveryType(t *testing.T) {
	for _, m := range allManeuvers {
		t.Run(fmt.Sprintf("maneuver %d", int(m)), func(t *testing.T) {
			bm := aBitmap(t, 64, 64)
			RenderManeuver(bm, m, 32, 32, 48)
			if blackPixels(bm) == 0 {
				t.Error("every maneuver type should draw a glyph")
			}
		})
	}
}

func TestRenderManeuverOffscreenIsSafe(t *testing.T) {
	bm := aBitmap(t, 32, 32)
	for _, m := range allManeuvers {
		RenderManeuver(bm, m, -50, -50, 24)
		RenderManeuver(bm, m, 100, 100, 24)
	}
	RenderManeuver(bm, model.Straight, 16, 16, 0)
}

func TestLeftRightAreMirrored(t *testing.T) {
	left := aBitmap(t, 64, 64)
	RenderManeuver(left, model.TurnLeft, 32, 32, 40)
	right := aBitmap(t, 64, 64)
	RenderManeuver(right, model.TurnRight, 32, 32, 40)

	// the shaft overlaps; the heads must not
	diff := 0
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if left.Pixel(x, y) != right.Pixel(x, y) {
				diff++
			}
		}
	}
	if diff == 0 {
		t.Error("left and right arrows should differ")
	}
}

func TestRoundaboutExitNumber(t *testing.T) {
	if model.RoundaboutExit1.RoundaboutExit() != 1 {
		t.Error("first exit should report 1")
	}
	if model.RoundaboutExit8.RoundaboutExit() != 8 {
		t.Error("eighth exit should report 8")
	}
	if model.TurnLeft.RoundaboutExit() != 0 {
		t.Error("non-roundabout maneuvers report exit 0")
	}
}

func TestDirectionalArrowAndCheckmark(t *testing.T) {
	bm := aBitmap(t, 64, 64)
	DrawDirectionalArrow(bm, 32, 32, 37.5, 24)
	if blackPixels(bm) == 0 {
		t.Error("directional arrow should paint")
	}

	bm2 := aBitmap(t, 64, 64)
	DrawCheckmark(bm2, 32, 32, 24)
	if blackPixels(bm2) == 0 {
		t.Error("checkmark should paint")
	}
}
