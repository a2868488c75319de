// pkg/aviation/convert.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/skybound/airway/pkg/aviation/aixm"
	"github.com/skybound/airway/pkg/util"
)

// storeSnapshot is the plain-struct, msgpack-friendly shape of an
// EntityStore's contents: every collection as a slice in archive order,
// with no orderedmap or logger attached. It is what gets written to and
// read from the on-disk parse cache.
type storeSnapshot struct {
	Airports      []AirportHeliport
	Navaids       []Navaid
	Designated    []DesignatedPoint
	Routes        []Route
	RouteSegments []RouteSegment
	ArrivalLegs   []ArrivalLeg
	DepartureLegs []DepartureLeg
	Stars         []StandardInstrumentArrival
	Sids          []StandardInstrumentDeparture
}

// refIndex maps an entity's UUID to which point collection it lives in,
// so a bare href can be turned into a typed PointReference.
type refIndex map[string]PointReferenceKind

func buildRefIndex(a *aixm.Archive) refIndex {
	idx := make(refIndex, len(a.AirportHeliports)+len(a.Navaids)+len(a.DesignatedPoints))
	for _, ap := range a.AirportHeliports {
		idx[ap.UUID] = PointReferenceAirportHeliport
	}
	for _, n := range a.Navaids {
		idx[n.UUID] = PointReferenceNavaid
	}
	for _, d := range a.DesignatedPoints {
		idx[d.UUID] = PointReferenceDesignatedPoint
	}
	return idx
}

func resolveRef(idx refIndex, ref aixm.Ref) (PointReference, error) {
	if ref.Val == "" {
		return PointReference{}, nil
	}
	if _, err := uuid.Parse(ref.Val); err != nil {
		return PointReference{}, fmt.Errorf("%w: %q", ErrMalformedCrossReference, ref.Val)
	}
	kind, ok := idx[ref.Val]
	if !ok {
		// Referenced entity not present in this archive set (e.g. a
		// route segment pointing at a point kind we don't model); the
		// reference degrades to None rather than failing the whole load.
		return PointReference{}, nil
	}
	return PointReference{Kind: kind, Id: ref.Val}, nil
}

// convertArchive turns the raw AIXM decode into the plain snapshot
// shape New persists and loads EntityStore collections from.
// convertArchive turns the raw AIXM decode into the plain snapshot
// shape New persists and loads EntityStore collections from. Malformed
// coordinate strings are accumulated via an ErrorLogger so one bad
// record in a large archive doesn't hide every other problem behind a
// single fail-fast error; the load still fails overall if any were
// found.
func convertArchive(a *aixm.Archive) (storeSnapshot, error) {
	idx := buildRefIndex(a)
	var snap storeSnapshot
	var errs util.ErrorLogger

	for _, ap := range a.AirportHeliports {
		ts := ap.TimeSlice.AirportHeliportTimeSlice
		lat, lon, err := aixm.ParsePos(ts.ARP.ElevatedPoint.Pos)
		if err != nil {
			errs.ErrorString("AirportHeliport %s: %v", ap.UUID, err)
			continue
		}
		snap.Airports = append(snap.Airports, AirportHeliport{
			Id:        ap.UUID,
			Icao:      ts.LocationIndicator,
			Iata:      ts.IATA,
			Name:      ts.Name,
			City:      ts.City,
			Type:      ts.Type,
			Latitude:  lat,
			Longitude: lon,
		})
	}

	for _, n := range a.Navaids {
		ts := n.TimeSlice.NavaidTimeSlice
		lat, lon, err := aixm.ParsePos(ts.Location.Pos)
		if err != nil {
			errs.ErrorString("Navaid %s: %v", n.UUID, err)
			continue
		}
		snap.Navaids = append(snap.Navaids, Navaid{
			Id: n.UUID, Name: ts.Designator, Type: ts.Type, Latitude: lat, Longitude: lon,
		})
	}

	for _, d := range a.DesignatedPoints {
		ts := d.TimeSlice.DesignatedPointTimeSlice
		lat, lon, err := aixm.ParsePos(ts.Location.Pos)
		if err != nil {
			errs.ErrorString("DesignatedPoint %s: %v", d.UUID, err)
			continue
		}
		snap.Designated = append(snap.Designated, DesignatedPoint{
			Id: d.UUID, Designator: ts.Designator, Name: ts.Name, Type: ts.Type, Latitude: lat, Longitude: lon,
		})
	}

	for _, r := range a.Routes {
		ts := r.TimeSlice.RouteTimeSlice
		var prefix, multiple *string
		if ts.Designator != "" {
			p := ts.Designator
			prefix = &p
		}
		if ts.MultipleIdentifier != "" {
			m := ts.MultipleIdentifier
			multiple = &m
		}
		snap.Routes = append(snap.Routes, Route{
			Id: r.UUID, Prefix: prefix, SecondLetter: ts.DesignatorSecond,
			Number: ts.DesignatorNumber, MultipleIdentifier: multiple,
		})
	}

	for _, rs := range a.RouteSegments {
		ts := rs.TimeSlice.RouteSegmentTimeSlice
		if ts.RouteFormed.Href.Val == "" {
			return snap, fmt.Errorf("%w: route segment %s has no routeFormed reference", ErrMalformedCrossReference, rs.UUID)
		}
		start, err := resolveRef(idx, ts.Start.PointRef.Href)
		if err != nil {
			return snap, err
		}
		end, err := resolveRef(idx, ts.End.PointRef.Href)
		if err != nil {
			return snap, err
		}
		snap.RouteSegments = append(snap.RouteSegments, RouteSegment{
			Id: rs.UUID, RouteFormed: ts.RouteFormed.Href.Val, Start: start, End: end,
		})
	}

	for _, leg := range a.ArrivalLegs {
		ts := leg.TimeSlice.LegTimeSlice
		start, err := resolveRef(idx, ts.Start.Href)
		if err != nil {
			return snap, err
		}
		end, err := resolveRef(idx, ts.End.Href)
		if err != nil {
			return snap, err
		}
		snap.ArrivalLegs = append(snap.ArrivalLegs, ArrivalLeg{
			Id: leg.UUID, ProcedureId: ts.LegsAt.Href.Val, Start: start, End: end,
		})
	}

	for _, leg := range a.DepartureLegs {
		ts := leg.TimeSlice.LegTimeSlice
		start, err := resolveRef(idx, ts.Start.Href)
		if err != nil {
			return snap, err
		}
		end, err := resolveRef(idx, ts.End.Href)
		if err != nil {
			return snap, err
		}
		snap.DepartureLegs = append(snap.DepartureLegs, DepartureLeg{
			Id: leg.UUID, ProcedureId: ts.LegsAt.Href.Val, Start: start, End: end,
		})
	}

	for _, s := range a.StandardInstrumentArrivals {
		ts := s.TimeSlice.ProcedureTimeSlice
		var connecting []PointReference
		for _, cp := range ts.ConnectingPoint {
			ref, err := resolveRef(idx, cp.Href)
			if err != nil {
				return snap, err
			}
			if ref.Kind != PointReferenceNone {
				connecting = append(connecting, ref)
			}
		}
		snap.Stars = append(snap.Stars, StandardInstrumentArrival{
			Id: s.UUID, Designator: ts.Designator, AirportId: ts.AirportHeliportRef.Href.Val,
			Instruction: ts.Instruction, ConnectingPoints: connecting,
		})
	}

	for _, s := range a.StandardInstrumentDepartures {
		ts := s.TimeSlice.ProcedureTimeSlice
		var connecting []PointReference
		for _, cp := range ts.ConnectingPoint {
			ref, err := resolveRef(idx, cp.Href)
			if err != nil {
				return snap, err
			}
			if ref.Kind != PointReferenceNone {
				connecting = append(connecting, ref)
			}
		}
		snap.Sids = append(snap.Sids, StandardInstrumentDeparture{
			Id: s.UUID, Designator: ts.Designator, AirportId: ts.AirportHeliportRef.Href.Val,
			Instruction: ts.Instruction, ConnectingPoints: connecting,
		})
	}

	if errs.HaveErrors() {
		return snap, fmt.Errorf("%w:\n%s", ErrMalformedCoordinate, errs.String())
	}
	return snap, nil
}

// populate fills an empty EntityStore from a snapshot, in snapshot
// (archive) order, so Collection iteration order matches archive order
// whether the store was built fresh or restored from cache.
func populate(s *EntityStore, snap storeSnapshot) {
	for _, v := range snap.Airports {
		s.airports.add(v.Id, v)
	}
	for _, v := range snap.Navaids {
		s.navaids.add(v.Id, v)
	}
	for _, v := range snap.Designated {
		s.designatedPoints.add(v.Id, v)
	}
	for _, v := range snap.Routes {
		s.routes.add(v.Id, v)
	}
	for _, v := range snap.RouteSegments {
		s.routeSegments.add(v.Id, v)
	}
	for _, v := range snap.ArrivalLegs {
		s.arrivalLegs.add(v.Id, v)
	}
	for _, v := range snap.DepartureLegs {
		s.departureLegs.add(v.Id, v)
	}
	for _, v := range snap.Stars {
		s.stars.add(v.Id, v)
	}
	for _, v := range snap.Sids {
		s.sids.add(v.Id, v)
	}
}
