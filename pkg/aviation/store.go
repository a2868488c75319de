// pkg/aviation/store.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"github.com/iancoleman/orderedmap"

	"github.com/skybound/airway/pkg/log"
)

// Collection is an identifier-keyed, insertion-ordered set of entities of
// a single kind. Iteration order is the order entities were added (which
// is the order they were encountered in the source archive), so that any
// caller iterating a whole collection gets a result that is a
// deterministic function of the archive contents rather than of Go's
// randomized map iteration.
type Collection[T any] struct {
	om *orderedmap.OrderedMap
}

func newCollection[T any]() *Collection[T] {
	return &Collection[T]{om: orderedmap.New()}
}

func (c *Collection[T]) add(id string, v T) {
	c.om.Set(id, v)
}

// Get looks up an entity by identifier.
func (c *Collection[T]) Get(id string) (T, bool) {
	var zero T
	raw, ok := c.om.Get(id)
	if !ok {
		return zero, false
	}
	t, ok := raw.(T)
	return t, ok
}

// All returns every entity in the collection, in insertion order.
func (c *Collection[T]) All() []T {
	keys := c.om.Keys()
	out := make([]T, 0, len(keys))
	for _, k := range keys {
		if v, ok := c.Get(k); ok {
			out = append(out, v)
		}
	}
	return out
}

// Len returns the number of entities in the collection.
func (c *Collection[T]) Len() int {
	return len(c.om.Keys())
}

// EntityStore is the immutable in-memory reference database. Once
// constructed by New it is never mutated; every query against it is a
// pure function of the store and the query's arguments, so a single
// store may be shared freely across goroutines with no locking.
type EntityStore struct {
	airports          *Collection[AirportHeliport]
	navaids           *Collection[Navaid]
	designatedPoints  *Collection[DesignatedPoint]
	routeSegments     *Collection[RouteSegment]
	routes            *Collection[Route]
	arrivalLegs       *Collection[ArrivalLeg]
	departureLegs     *Collection[DepartureLeg]
	stars             *Collection[StandardInstrumentArrival]
	sids              *Collection[StandardInstrumentDeparture]

	log *log.Logger

	pointCacheSize int
	routeCacheSize int
}

func newEmptyStore() *EntityStore {
	return &EntityStore{
		airports:         newCollection[AirportHeliport](),
		navaids:          newCollection[Navaid](),
		designatedPoints: newCollection[DesignatedPoint](),
		routeSegments:    newCollection[RouteSegment](),
		routes:           newCollection[Route](),
		arrivalLegs:      newCollection[ArrivalLeg](),
		departureLegs:    newCollection[DepartureLeg](),
		stars:            newCollection[StandardInstrumentArrival](),
		sids:             newCollection[StandardInstrumentDeparture](),
	}
}

// Log returns the logger the store was constructed with.
func (s *EntityStore) Log() *log.Logger { return s.log }

func (s *EntityStore) Airports() *Collection[AirportHeliport]                     { return s.airports }
func (s *EntityStore) Navaids() *Collection[Navaid]                              { return s.navaids }
func (s *EntityStore) DesignatedPoints() *Collection[DesignatedPoint]            { return s.designatedPoints }
func (s *EntityStore) RouteSegments() *Collection[RouteSegment]                  { return s.routeSegments }
func (s *EntityStore) Routes() *Collection[Route]                               { return s.routes }
func (s *EntityStore) ArrivalLegs() *Collection[ArrivalLeg]                      { return s.arrivalLegs }
func (s *EntityStore) DepartureLegs() *Collection[DepartureLeg]                  { return s.departureLegs }
func (s *EntityStore) STARs() *Collection[StandardInstrumentArrival]            { return s.stars }
func (s *EntityStore) SIDs() *Collection[StandardInstrumentDeparture]           { return s.sids }

// resolveReference projects a PointReference into a ResolvedPoint by
// looking its id up in the collection its Kind selects. An absent id, or
// a None-tagged reference, projects to ResolvedNone.
func (s *EntityStore) resolveReference(ref PointReference) ResolvedPoint {
	switch ref.Kind {
	case PointReferenceAirportHeliport:
		if a, ok := s.airports.Get(ref.Id); ok {
			a := a
			return ResolvedPoint{Kind: ResolvedAirportHeliport, AirportHeliport: &a}
		}
	case PointReferenceNavaid:
		if n, ok := s.navaids.Get(ref.Id); ok {
			n := n
			return ResolvedPoint{Kind: ResolvedNavaid, Navaid: &n}
		}
	case PointReferenceDesignatedPoint:
		if d, ok := s.designatedPoints.Get(ref.Id); ok {
			d := d
			return ResolvedPoint{Kind: ResolvedDesignatedPoint, DesignatedPoint: &d}
		}
	}
	return ResolvedPoint{Kind: ResolvedNone}
}
