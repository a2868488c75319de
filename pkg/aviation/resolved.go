// pkg/aviation/resolved.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"fmt"
	"math"
)

// ResolvedPointKind discriminates the runtime projection of a
// PointReference (or a coordinate literal with no backing entity).
type ResolvedPointKind int

const (
	ResolvedNone ResolvedPointKind = iota
	ResolvedAirportHeliport
	ResolvedNavaid
	ResolvedDesignatedPoint
	ResolvedCoordinates
)

// ResolvedPoint is the runtime projection of a PointReference (or a
// coordinate literal with no backing entity). Equality and hashing are
// by entity identifier for the three typed variants, by exact bitwise
// equality of both coordinates for Coordinates, and by discriminant
// alone for None — see Equal and Key.
type ResolvedPoint struct {
	Kind            ResolvedPointKind
	AirportHeliport *AirportHeliport
	Navaid          *Navaid
	DesignatedPoint *DesignatedPoint
	Lat             float64
	Lon             float64
}

// Equal implements the equality semantics from the data model: entity
// identifier for the typed variants, exact bit pattern for Coordinates,
// discriminant alone for None.
func (p ResolvedPoint) Equal(o ResolvedPoint) bool {
	if p.Kind != o.Kind {
		return false
	}
	switch p.Kind {
	case ResolvedNone:
		return true
	case ResolvedAirportHeliport:
		return p.AirportHeliport != nil && o.AirportHeliport != nil && p.AirportHeliport.Id == o.AirportHeliport.Id
	case ResolvedNavaid:
		return p.Navaid != nil && o.Navaid != nil && p.Navaid.Id == o.Navaid.Id
	case ResolvedDesignatedPoint:
		return p.DesignatedPoint != nil && o.DesignatedPoint != nil && p.DesignatedPoint.Id == o.DesignatedPoint.Id
	case ResolvedCoordinates:
		return math.Float64bits(p.Lat) == math.Float64bits(o.Lat) &&
			math.Float64bits(p.Lon) == math.Float64bits(o.Lon)
	default:
		return false
	}
}

// Key returns a string that is injective with respect to Equal: two
// ResolvedPoints compare Equal iff their Keys are identical. It is used
// wherever ResolvedPoint needs to serve as a map key or set element,
// standing in for the hash semantics of the data model's equality rule.
func (p ResolvedPoint) Key() string {
	switch p.Kind {
	case ResolvedAirportHeliport:
		return "A:" + p.AirportHeliport.Id
	case ResolvedNavaid:
		return "N:" + p.Navaid.Id
	case ResolvedDesignatedPoint:
		return "D:" + p.DesignatedPoint.Id
	case ResolvedCoordinates:
		return fmt.Sprintf("C:%x:%x", math.Float64bits(p.Lat), math.Float64bits(p.Lon))
	default:
		return "None"
	}
}

// DebugString is a stable printable rendering used as a deterministic
// sort key wherever the data model calls for ordering "by debug
// rendering" rather than by a meaningful name.
func (p ResolvedPoint) DebugString() string {
	switch p.Kind {
	case ResolvedAirportHeliport:
		return "AirportHeliport(" + p.AirportHeliport.Id + ")"
	case ResolvedNavaid:
		return "Navaid(" + p.Navaid.Id + ")"
	case ResolvedDesignatedPoint:
		return "DesignatedPoint(" + p.DesignatedPoint.Id + ")"
	case ResolvedCoordinates:
		return fmt.Sprintf("Coordinates(%v, %v)", p.Lat, p.Lon)
	default:
		return "None"
	}
}

// LatLon returns the geographic position of the point and whether one is
// defined (false for None).
func (p ResolvedPoint) LatLon() (lat, lon float64, ok bool) {
	switch p.Kind {
	case ResolvedAirportHeliport:
		return p.AirportHeliport.Latitude, p.AirportHeliport.Longitude, true
	case ResolvedNavaid:
		return p.Navaid.Latitude, p.Navaid.Longitude, true
	case ResolvedDesignatedPoint:
		return p.DesignatedPoint.Latitude, p.DesignatedPoint.Longitude, true
	case ResolvedCoordinates:
		return p.Lat, p.Lon, true
	default:
		return 0, 0, false
	}
}

// ResolvedRouteSegment is a single enriched segment of output geometry.
type ResolvedRouteSegment struct {
	Start    ResolvedPoint
	End      ResolvedPoint
	Name     *string
	Altitude *string
	Speed    *string
}

// ResolvedRoute is a named, ordered sequence of resolved segments.
type ResolvedRoute struct {
	Name     string
	Segments []ResolvedRouteSegment
}
