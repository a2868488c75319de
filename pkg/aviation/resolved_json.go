// pkg/aviation/resolved_json.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import "encoding/json"

// resolvedPointJSON is the untagged wire shape for ResolvedPoint: client
// code distinguishes the variant by which fields are present rather than
// by an explicit discriminant, per the external interface contract.
type resolvedPointJSON struct {
	Icao       string   `json:"icao,omitempty"`
	Iata       string   `json:"iata,omitempty"`
	NavaidName string   `json:"navaidName,omitempty"`
	Designator string   `json:"designator,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

func (p ResolvedPoint) MarshalJSON() ([]byte, error) {
	var j resolvedPointJSON
	switch p.Kind {
	case ResolvedAirportHeliport:
		j.Icao = p.AirportHeliport.Icao
		j.Iata = p.AirportHeliport.Iata
		lat, lon := p.AirportHeliport.Latitude, p.AirportHeliport.Longitude
		j.Latitude, j.Longitude = &lat, &lon
	case ResolvedNavaid:
		j.NavaidName = p.Navaid.Name
		lat, lon := p.Navaid.Latitude, p.Navaid.Longitude
		j.Latitude, j.Longitude = &lat, &lon
	case ResolvedDesignatedPoint:
		j.Designator = p.DesignatedPoint.Designator
		lat, lon := p.DesignatedPoint.Latitude, p.DesignatedPoint.Longitude
		j.Latitude, j.Longitude = &lat, &lon
	case ResolvedCoordinates:
		lat, lon := p.Lat, p.Lon
		j.Latitude, j.Longitude = &lat, &lon
	case ResolvedNone:
		// all fields absent
	}
	return json.Marshal(j)
}

type resolvedRouteSegmentJSON struct {
	Start    ResolvedPoint `json:"start"`
	End      ResolvedPoint `json:"end"`
	Name     *string       `json:"name,omitempty"`
	Altitude *string       `json:"altitude,omitempty"`
	Speed    *string       `json:"speed,omitempty"`
}

func (s ResolvedRouteSegment) MarshalJSON() ([]byte, error) {
	return json.Marshal(resolvedRouteSegmentJSON{
		Start:    s.Start,
		End:      s.End,
		Name:     s.Name,
		Altitude: s.Altitude,
		Speed:    s.Speed,
	})
}
