// Package model holds the domain inputs the renderers consume. The
// navigation, map and road services that produce them live outside this
// module; only their shapes are defined here.
package model

import "github.com/paulmach/orb"

// HighwayType classifies a road the way OSM does. The enum drives both the
// rendered line width and the draw priority, and gives the renderer an
// exhaustive switch instead of string matching per segment.
type HighwayType int

const (
	HighwayUnknown HighwayType = iota
	HighwayPath
	HighwayTrack
	HighwayService
	HighwayResidential
	HighwayUnclassified
	HighwayTertiary
	HighwaySecondary
	HighwayPrimary
	HighwayTrunk
	HighwayMotorway
)

// ParseHighway maps an OSM highway tag value to its type. Link variants
// collapse onto their parent class; anything unrecognized is HighwayUnknown.
func ParseHighway(tag string) HighwayType {
	switch tag {
	case "motorway", "motorway_link":
		return HighwayMotorway
	case "trunk", "trunk_link":
		return HighwayTrunk
	case "primary", "primary_link":
		return HighwayPrimary
	case "secondary", "secondary_link":
		return HighwaySecondary
	case "tertiary", "tertiary_link":
		return HighwayTertiary
	case "unclassified":
		return HighwayUnclassified
	case "residential", "living_street":
		return HighwayResidential
	case "service":
		return HighwayService
	case "track":
		return HighwayTrack
	case "path", "footway", "cycleway":
		return HighwayPath
	default:
		return HighwayUnknown
	}
}

// RenderWidth is the line width in pixels for this road class.
func (h HighwayType) RenderWidth() int {
	switch h {
	case HighwayMotorway, HighwayTrunk:
		return 4
	case HighwayPrimary:
		return 3
	case HighwaySecondary, HighwayTertiary:
		return 2
	default:
		return 1
	}
}

// Priority orders road classes for drawing; higher is drawn later and ends
// up on top.
func (h HighwayType) Priority() int {
	return int(h)
}

func (h HighwayType) String() string {
	switch h {
	case HighwayMotorway:
		return "motorway"
	case HighwayTrunk:
		return "trunk"
	case HighwayPrimary:
		return "primary"
	case HighwaySecondary:
		return "secondary"
	case HighwayTertiary:
		return "tertiary"
	case HighwayUnclassified:
		return "unclassified"
	case HighwayResidential:
		return "residential"
	case HighwayService:
		return "service"
	case HighwayTrack:
		return "track"
	case HighwayPath:
		return "path"
	default:
		return "unknown"
	}
}

// CachedRoad is one way fetched by the (out-of-scope) road service.
type CachedRoad struct {
	WayID    int64
	Highway  HighwayType
	Name     string
	Geometry orb.LineString
}

// ManeuverType enumerates the turn instructions the maneuver renderer can
// draw.
type ManeuverType int

const (
	TurnLeft ManeuverType = iota
	TurnRight
	SharpLeft
	SharpRight
	SlightLeft
	SlightRight
	Straight
	UTurn
	Arrive
	ForkLeft
	ForkRight
	RampLeft
	RampRight
	RoundaboutExit1
	RoundaboutExit2
	RoundaboutExit3
	RoundaboutExit4
	RoundaboutExit5
	RoundaboutExit6
	RoundaboutExit7
	RoundaboutExit8
)

// RoundaboutExit returns the 1-based exit number for roundabout maneuvers
// and 0 for everything else.
func (m ManeuverType) RoundaboutExit() int {
	if m >= RoundaboutExit1 && m <= RoundaboutExit8 {
		return int(m-RoundaboutExit1) + 1
	}
	return 0
}

// FollowTrackInfo carries the live values the info panel shows. Progress and
// ETA are only meaningful while a route is active.
type FollowTrackInfo struct {
	SpeedKmh         float64
	Satellites       int
	Zoom             int
	ProgressPercent  float64
	RemainingSeconds int
	HasProgress      bool
}
