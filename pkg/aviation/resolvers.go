// pkg/aviation/resolvers.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"github.com/skybound/airway/pkg/field15"
	"github.com/skybound/airway/pkg/log"
)

// Resolvers bundles the three reference-data resolvers built against a
// single immutable store. Every resolver held here is a pure function of
// (store, arguments) — the caches they carry only change which calls
// rescan the store, never what they return — so a single Resolvers value
// may be shared across goroutines without coordination.
type Resolvers struct {
	Points     *PointResolver
	Routes     *RouteResolver
	Procedures *ProcedureResolver
}

// NewResolvers builds the standard resolver bundle over store, honoring
// any WithPointCacheSize/WithRouteCacheSize options store was built with.
func NewResolvers(store *EntityStore) *Resolvers {
	points := NewPointResolver(store, store.pointCacheSize)
	routes := NewRouteResolver(store, points, store.routeCacheSize)
	procedures := NewProcedureResolver(store, points)
	return &Resolvers{Points: points, Routes: routes, Procedures: procedures}
}

// ResolveRoute runs the full enrichment pipeline over a Field 15 token
// stream, producing the final ordered, disambiguated segment list. lg
// receives a Warn for every resolution miss or ambiguity the pipeline
// could not definitively settle.
func (r *Resolvers) ResolveRoute(elements []field15.Element, lg *log.Logger) []ResolvedRouteSegment {
	return EnrichRoute(elements, r, lg)
}
