// pkg/aviation/entities.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

// AirportHeliport is a landing facility referenced as a route endpoint
// or SID/STAR owner.
type AirportHeliport struct {
	Id        string
	Icao      string
	Iata      string // optional, "" if absent
	Name      string
	City      string // optional, "" if absent
	Type      string
	Latitude  float64
	Longitude float64
	Elevation float64
}

// Navaid is a ground-based radio navigation aid.
type Navaid struct {
	Id        string
	Name      string // optional, "" if absent
	Type      string
	Latitude  float64
	Longitude float64
}

// DesignatedPoint is a named fix defined purely by coordinates.
type DesignatedPoint struct {
	Id         string
	Designator string
	Name       string // optional, "" if absent
	Type       string
	Latitude   float64
	Longitude  float64
}

// PointReferenceKind discriminates which collection a PointReference's
// Id indexes into.
type PointReferenceKind int

const (
	PointReferenceNone PointReferenceKind = iota
	PointReferenceAirportHeliport
	PointReferenceNavaid
	PointReferenceDesignatedPoint
)

// PointReference is a tagged reference to an entity by identifier. The
// zero value is the None variant.
type PointReference struct {
	Kind PointReferenceKind
	Id   string
}

// Route is an airway designator decomposed into its component fields.
// The textual designator is Prefix+SecondLetter+Number, optionally
// followed by MultipleIdentifier.
type Route struct {
	Id                 string
	Prefix             *string // "U" or nil
	SecondLetter       string
	Number             string
	MultipleIdentifier *string // nil if absent
}

// Name renders the canonical textual designator of the route, eliding
// MultipleIdentifier (see the Design Notes on route naming).
func (r Route) Name() string {
	prefix := ""
	if r.Prefix != nil {
		prefix = *r.Prefix
	}
	return prefix + r.SecondLetter + r.Number
}

// RouteSegment is a directed edge internal to an airway.
type RouteSegment struct {
	Id          string
	RouteFormed string // owning Route.Id, "" if absent
	Start       PointReference
	End         PointReference
}

// ArrivalLeg is an edge internal to a STAR.
type ArrivalLeg struct {
	Id          string
	ProcedureId string // owning StandardInstrumentArrival.Id, "" if absent
	Start       PointReference
	End         PointReference
}

// DepartureLeg is an edge internal to a SID.
type DepartureLeg struct {
	Id          string
	ProcedureId string // owning StandardInstrumentDeparture.Id, "" if absent
	Start       PointReference
	End         PointReference
}

// StandardInstrumentArrival is a STAR procedure.
type StandardInstrumentArrival struct {
	Id               string
	Designator       string
	AirportId        string // "" if absent
	Instruction      string // "" if absent
	ConnectingPoints []PointReference
}

// StandardInstrumentDeparture is a SID procedure.
type StandardInstrumentDeparture struct {
	Id               string
	Designator       string
	AirportId        string // "" if absent
	Instruction      string // "" if absent
	ConnectingPoints []PointReference
}
