// pkg/aviation/procedure_resolver.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"sort"
	"strings"

	"github.com/skybound/airway/pkg/util"
)

// ProcedureResolver maps SID/STAR designators to candidate ResolvedRoutes
// and their terminal points.
type ProcedureResolver struct {
	store  *EntityStore
	points *PointResolver
}

func NewProcedureResolver(store *EntityStore, points *PointResolver) *ProcedureResolver {
	return &ProcedureResolver{store: store, points: points}
}

// ResolveSidRoutes returns one ResolvedRoute per departure procedure
// matching name (case-insensitive, trimmed).
func (r *ProcedureResolver) ResolveSidRoutes(name string) []ResolvedRoute {
	key := normalizeName(name)
	var out []ResolvedRoute
	for _, sid := range r.store.sids.All() {
		if normalizeName(sid.Designator) != key {
			continue
		}
		var segments []ResolvedRouteSegment
		for _, leg := range r.store.departureLegs.All() {
			if leg.ProcedureId != sid.Id {
				continue
			}
			start := r.points.FromDB(leg.Start)
			end := r.points.FromDB(leg.End)
			if start.Kind == ResolvedNone || end.Kind == ResolvedNone {
				continue
			}
			designator := sid.Designator
			segments = append(segments, ResolvedRouteSegment{Start: start, End: end, Name: &designator})
		}
		out = append(out, ResolvedRoute{Name: sid.Designator, Segments: orderSegments(segments)})
	}
	return out
}

// ResolveStarRoutes returns one ResolvedRoute per arrival procedure
// matching name (case-insensitive, trimmed).
func (r *ProcedureResolver) ResolveStarRoutes(name string) []ResolvedRoute {
	key := normalizeName(name)
	var out []ResolvedRoute
	for _, star := range r.store.stars.All() {
		if normalizeName(star.Designator) != key {
			continue
		}
		var segments []ResolvedRouteSegment
		for _, leg := range r.store.arrivalLegs.All() {
			if leg.ProcedureId != star.Id {
				continue
			}
			start := r.points.FromDB(leg.Start)
			end := r.points.FromDB(leg.End)
			if start.Kind == ResolvedNone || end.Kind == ResolvedNone {
				continue
			}
			designator := star.Designator
			segments = append(segments, ResolvedRouteSegment{Start: start, End: end, Name: &designator})
		}
		out = append(out, ResolvedRoute{Name: star.Designator, Segments: orderSegments(segments)})
	}
	return out
}

func refKey(ref PointReference) string {
	switch ref.Kind {
	case PointReferenceAirportHeliport:
		return "A:" + ref.Id
	case PointReferenceNavaid:
		return "N:" + ref.Id
	case PointReferenceDesignatedPoint:
		return "D:" + ref.Id
	default:
		return ""
	}
}

// terminalRefs returns the exit (wantExit=true) or entry (wantExit=false)
// points of a leg graph: out-degree==0 && in-degree>0 for exit points,
// in-degree>0 && out-degree==0 for entry points, excluding airport and
// heliport references.
func terminalRefs(legStarts, legEnds []PointReference, wantExit bool) []PointReference {
	outDeg := map[string]int{}
	inDeg := map[string]int{}
	first := map[string]PointReference{}
	order := []string{}

	see := func(ref PointReference) {
		k := refKey(ref)
		if k == "" {
			return
		}
		if _, ok := first[k]; !ok {
			first[k] = ref
			order = append(order, k)
		}
	}

	for i := range legStarts {
		see(legStarts[i])
		see(legEnds[i])
		outDeg[refKey(legStarts[i])]++
		inDeg[refKey(legEnds[i])]++
	}

	var out []PointReference
	for _, k := range order {
		ref := first[k]
		if wantExit {
			if outDeg[k] == 0 && inDeg[k] > 0 {
				out = append(out, ref)
			}
		} else {
			if inDeg[k] > 0 && outDeg[k] == 0 {
				out = append(out, ref)
			}
		}
	}
	return excludeAirportHeliports(out)
}

// excludeAirportHeliports drops airport/heliport references from refs: an
// airport or heliport is never itself a usable terminal point, whether it
// came from the leg graph or a procedure's declared connecting points.
func excludeAirportHeliports(refs []PointReference) []PointReference {
	return util.FilterSlice(refs, func(ref PointReference) bool {
		return ref.Kind != PointReferenceAirportHeliport
	})
}

func (r *ProcedureResolver) resolveTerminalPoints(procedureId string, legStarts, legEnds []PointReference,
	connectingPoints []PointReference, wantExit bool) []ResolvedPoint {

	refs := terminalRefs(legStarts, legEnds, wantExit)
	if len(legStarts) == 0 {
		refs = excludeAirportHeliports(connectingPoints)
	}

	seen := map[string]bool{}
	var out []ResolvedPoint
	for _, ref := range refs {
		rp := r.points.FromDB(ref)
		if rp.Kind == ResolvedNone {
			continue
		}
		if seen[rp.Key()] {
			continue
		}
		seen[rp.Key()] = true
		out = append(out, rp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DebugString() < out[j].DebugString() })
	return out
}

// ResolveSidPoints returns the exit points of the departure procedure(s)
// matching name.
func (r *ProcedureResolver) ResolveSidPoints(name string) []ResolvedPoint {
	key := normalizeName(name)
	var out []ResolvedPoint
	for _, sid := range r.store.sids.All() {
		if normalizeName(sid.Designator) != key {
			continue
		}
		var starts, ends []PointReference
		for _, leg := range r.store.departureLegs.All() {
			if leg.ProcedureId != sid.Id {
				continue
			}
			starts = append(starts, leg.Start)
			ends = append(ends, leg.End)
		}
		out = append(out, r.resolveTerminalPoints(sid.Id, starts, ends, sid.ConnectingPoints, true)...)
	}
	return dedupePoints(out)
}

// ResolveStarPoints returns the entry points of the arrival procedure(s)
// matching name.
func (r *ProcedureResolver) ResolveStarPoints(name string) []ResolvedPoint {
	key := normalizeName(name)
	var out []ResolvedPoint
	for _, star := range r.store.stars.All() {
		if normalizeName(star.Designator) != key {
			continue
		}
		var starts, ends []PointReference
		for _, leg := range r.store.arrivalLegs.All() {
			if leg.ProcedureId != star.Id {
				continue
			}
			starts = append(starts, leg.Start)
			ends = append(ends, leg.End)
		}
		out = append(out, r.resolveTerminalPoints(star.Id, starts, ends, star.ConnectingPoints, false)...)
	}
	return dedupePoints(out)
}

func dedupePoints(pts []ResolvedPoint) []ResolvedPoint {
	seen := map[string]bool{}
	out := util.FilterSlice(pts, func(p ResolvedPoint) bool {
		if seen[p.Key()] {
			return false
		}
		seen[p.Key()] = true
		return true
	})
	sort.Slice(out, func(i, j int) bool { return out[i].DebugString() < out[j].DebugString() })
	return out
}

// orderSegments linearizes an unordered bag of resolved segments into a
// walk: segments are bucketed by start point (by debug rendering), each
// bucket sorted by the debug rendering of its end point, and then edges
// are consumed by repeatedly picking the alphabetically-earliest
// zero-in-degree start and walking forward, taking the first remaining
// outgoing edge each step, until every edge has been consumed exactly
// once. When no zero-in-degree start has unconsumed edges, the walk
// restarts from the alphabetically-earliest node that still does.
func orderSegments(segments []ResolvedRouteSegment) []ResolvedRouteSegment {
	if len(segments) == 0 {
		return nil
	}

	type bucket struct {
		indices []int
		next    int
	}
	buckets := map[string]*bucket{}
	inDegree := map[string]int{}
	nodes := map[string]bool{}

	for i, seg := range segments {
		sk, ek := seg.Start.DebugString(), seg.End.DebugString()
		nodes[sk] = true
		nodes[ek] = true
		if buckets[sk] == nil {
			buckets[sk] = &bucket{}
		}
		buckets[sk].indices = append(buckets[sk].indices, i)
		inDegree[ek]++
	}
	for k, b := range buckets {
		sort.Slice(b.indices, func(i, j int) bool {
			return segments[b.indices[i]].End.DebugString() < segments[b.indices[j]].End.DebugString()
		})
		buckets[k] = b
	}

	hasUnconsumed := func(node string) bool {
		b := buckets[node]
		return b != nil && b.next < len(b.indices)
	}

	pickStart := func(requireZeroInDegree bool) string {
		best := ""
		for node := range nodes {
			if !hasUnconsumed(node) {
				continue
			}
			if requireZeroInDegree && inDegree[node] != 0 {
				continue
			}
			if best == "" || strings.Compare(node, best) < 0 {
				best = node
			}
		}
		return best
	}

	total := len(segments)
	consumed := 0
	var out []ResolvedRouteSegment

	for consumed < total {
		start := pickStart(true)
		if start == "" {
			start = pickStart(false)
		}
		if start == "" {
			break
		}
		current := start
		for hasUnconsumed(current) {
			b := buckets[current]
			idx := b.indices[b.next]
			b.next++
			consumed++
			seg := segments[idx]
			out = append(out, seg)
			current = seg.End.DebugString()
		}
	}

	return out
}
