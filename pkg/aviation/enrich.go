// pkg/aviation/enrich.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"github.com/skybound/airway/pkg/field15"
	"github.com/skybound/airway/pkg/log"
	"github.com/skybound/airway/pkg/util"
)

type candidateKind int

const (
	candidatePoint candidateKind = iota
	candidatePointCoords
	candidateAirway
	candidateDirect
)

// candidate is the pipeline's working representation of one non-Modifier
// token: a set of still-possible resolved points (Point/PointCoords) or
// candidate routes (Airway), or no geometry at all (Direct).
type candidate struct {
	kind       candidateKind
	points     []ResolvedPoint
	routes     []ResolvedRoute
	airwayName string
	altitude   *string
	speed      *string
}

// EnrichRoute runs the full seven-pass disambiguation pipeline over a
// Field 15 token sequence and returns the resulting ordered segment
// list. It is a total, deterministic, pure function of (elements, the
// store r was built over): it never fails, logging a warning and
// degrading gracefully instead wherever a name fails to resolve or an
// ambiguity is left unresolved.
func EnrichRoute(elements []field15.Element, r *Resolvers, lg *log.Logger) []ResolvedRouteSegment {
	candidates := buildCandidates(elements, r, lg)

	pruneAirwaysByPointAdjacency(candidates)
	collapseEmptyAirways(candidates)
	prunePointsByAirwayAdjacency(candidates)
	trimAirways(candidates, r)
	collapseEmptySegmentAirways(candidates)
	tieBreakAmbiguousPoints(candidates, lg)

	return emitSegments(candidates)
}

// buildCandidates converts a token stream into the pipeline's candidate
// representation, tracking the sticky altitude/speed state contributed
// by Modifier tokens.
func buildCandidates(elements []field15.Element, r *Resolvers, lg *log.Logger) []candidate {
	var out []candidate
	var altitude, speed *string

	for _, el := range elements {
		switch e := el.(type) {
		case field15.Modifier:
			if e.Altitude != nil {
				altitude = e.Altitude
			}
			if e.Speed != nil {
				speed = e.Speed
			}

		case field15.Waypoint:
			pts := r.Points.Lookup(e.Name)
			if len(pts) == 0 {
				lg.Warnf("%s: waypoint did not resolve to any candidate point", e.Name)
			}
			out = append(out, candidate{kind: candidatePoint, points: pts, altitude: altitude, speed: speed})

		case field15.Coordinates:
			pt := ResolvedPoint{Kind: ResolvedCoordinates, Lat: e.Lat, Lon: e.Lon}
			out = append(out, candidate{kind: candidatePointCoords, points: []ResolvedPoint{pt}, altitude: altitude, speed: speed})

		case field15.Airway:
			routes := r.Routes.Lookup(e.Name)
			if len(routes) == 0 {
				lg.Warnf("%s: airway did not resolve, downgrading to direct", e.Name)
				out = append(out, candidate{kind: candidateDirect, altitude: altitude, speed: speed})
			} else {
				out = append(out, candidate{kind: candidateAirway, routes: routes, airwayName: e.Name, altitude: altitude, speed: speed})
			}

		case field15.Sid:
			routes := r.Procedures.ResolveSidRoutes(e.Name)
			if len(routes) == 0 {
				lg.Warnf("%s: SID did not resolve, downgrading to direct", e.Name)
				out = append(out, candidate{kind: candidateDirect, altitude: altitude, speed: speed})
			} else {
				out = append(out, candidate{kind: candidateAirway, routes: routes, airwayName: e.Name, altitude: altitude, speed: speed})
			}

		case field15.Star:
			routes := r.Procedures.ResolveStarRoutes(e.Name)
			if len(routes) == 0 {
				lg.Warnf("%s: STAR did not resolve, downgrading to direct", e.Name)
				out = append(out, candidate{kind: candidateDirect, altitude: altitude, speed: speed})
			} else {
				out = append(out, candidate{kind: candidateAirway, routes: routes, airwayName: e.Name, altitude: altitude, speed: speed})
			}

		case field15.Direct, field15.Nat, field15.Pts:
			out = append(out, candidate{kind: candidateDirect, altitude: altitude, speed: speed})

		default:
			// Any other element kind is silently ignored.
		}
	}

	return out
}

// routeContainsAny reports whether route contains at least one of pts.
func routeContainsAny(r *RouteResolver, route ResolvedRoute, pts []ResolvedPoint) bool {
	for _, p := range pts {
		if r.Contains(route, p) {
			return true
		}
	}
	return false
}

// pass 1: airway adjacency prune. Each present neighbor narrows the
// surviving route set in turn, so a route must satisfy every present
// neighbor, not just one of them.
func pruneAirwaysByPointAdjacency(candidates []candidate) {
	for i := range candidates {
		if candidates[i].kind != candidateAirway {
			continue
		}

		routes := candidates[i].routes
		if i > 0 && candidates[i-1].kind == candidatePoint {
			left := candidates[i-1].points
			routes = util.FilterSlice(routes, func(route ResolvedRoute) bool {
				return routeContainsAnyStatic(route, left)
			})
		}
		if i+1 < len(candidates) && candidates[i+1].kind == candidatePoint {
			right := candidates[i+1].points
			routes = util.FilterSlice(routes, func(route ResolvedRoute) bool {
				return routeContainsAnyStatic(route, right)
			})
		}
		candidates[i].routes = routes
	}
}

// routeContainsAnyStatic is routeContainsAny without needing a
// RouteResolver handle, since ResolvedRoute.Contains-equivalent logic
// only inspects segment endpoints.
func routeContainsAnyStatic(route ResolvedRoute, pts []ResolvedPoint) bool {
	for _, seg := range route.Segments {
		for _, p := range pts {
			if seg.Start.Equal(p) || seg.End.Equal(p) {
				return true
			}
		}
	}
	return false
}

// pass 2: empty-airway collapse
func collapseEmptyAirways(candidates []candidate) {
	for i := range candidates {
		if candidates[i].kind == candidateAirway && len(candidates[i].routes) == 0 {
			candidates[i] = candidate{kind: candidateDirect, altitude: candidates[i].altitude, speed: candidates[i].speed}
		}
	}
}

// pass 3: point adjacency prune. Each present neighbor narrows the
// surviving point set in turn, so a point must satisfy every present
// neighbor, not just one of them.
func prunePointsByAirwayAdjacency(candidates []candidate) {
	for i := range candidates {
		if candidates[i].kind != candidatePoint {
			continue
		}

		points := candidates[i].points
		if i > 0 && candidates[i-1].kind == candidateAirway {
			routes := candidates[i-1].routes
			points = util.FilterSlice(points, func(p ResolvedPoint) bool {
				return routesContainPoint(routes, p)
			})
		}
		if i+1 < len(candidates) && candidates[i+1].kind == candidateAirway {
			routes := candidates[i+1].routes
			points = util.FilterSlice(points, func(p ResolvedPoint) bool {
				return routesContainPoint(routes, p)
			})
		}
		candidates[i].points = points
	}
}

func routesContainPoint(routes []ResolvedRoute, p ResolvedPoint) bool {
	for _, route := range routes {
		if routeContainsAnyStatic(route, []ResolvedPoint{p}) {
			return true
		}
	}
	return false
}

// pass 4: airway trim
func trimAirways(candidates []candidate, r *Resolvers) {
	for i := range candidates {
		if candidates[i].kind != candidateAirway {
			continue
		}
		if i == 0 || i+1 >= len(candidates) {
			continue
		}
		if candidates[i-1].kind != candidatePoint || candidates[i+1].kind != candidatePoint {
			continue
		}
		if len(candidates[i-1].points) == 0 || len(candidates[i+1].points) == 0 {
			continue
		}

		before := candidates[i-1].points[0]
		after := candidates[i+1].points[0]

		for j, route := range candidates[i].routes {
			if trimmed := r.Routes.Between(route, before, after); trimmed != nil {
				candidates[i].routes[j] = *trimmed
			}
		}
	}
}

// pass 5: empty-segments collapse
func collapseEmptySegmentAirways(candidates []candidate) {
	for i := range candidates {
		if candidates[i].kind != candidateAirway {
			continue
		}
		allEmpty := true
		for _, route := range candidates[i].routes {
			if len(route.Segments) > 0 {
				allEmpty = false
				break
			}
		}
		if allEmpty {
			candidates[i] = candidate{kind: candidateDirect, altitude: candidates[i].altitude, speed: candidates[i].speed}
		}
	}
}

// scanForwardDefinitive finds the first Point-with-singleton-candidate or
// PointCoords at or after index i.
func scanForwardDefinitive(candidates []candidate, i int) (ResolvedPoint, bool) {
	for j := i; j < len(candidates); j++ {
		switch candidates[j].kind {
		case candidatePoint:
			if len(candidates[j].points) == 1 {
				return candidates[j].points[0], true
			}
		case candidatePointCoords:
			return candidates[j].points[0], true
		}
	}
	return ResolvedPoint{}, false
}

// pass 6: tie-break remaining ambiguous points
func tieBreakAmbiguousPoints(candidates []candidate, lg *log.Logger) {
	var lastKnown ResolvedPoint
	haveLastKnown := false

	for i := range candidates {
		switch candidates[i].kind {
		case candidatePoint:
			if len(candidates[i].points) > 1 {
				nextDefinitive, haveNext := scanForwardDefinitive(candidates, i)

				switch {
				case !haveLastKnown && !haveNext:
					lg.Warn("ambiguous point left unresolved: no anchor available, picking first candidate")

				case haveLastKnown && !haveNext:
					best := candidates[i].points[0]
					bestDist := geodesicDistance(lastKnown, best)
					for _, p := range candidates[i].points[1:] {
						if d := geodesicDistance(lastKnown, p); d < bestDist {
							best, bestDist = p, d
						}
					}
					candidates[i].points = []ResolvedPoint{best}

				case !haveLastKnown && haveNext:
					// leave unchanged

				default:
					best := candidates[i].points[0]
					bestScore := hybridScore(lastKnown, best, nextDefinitive)
					for _, p := range candidates[i].points[1:] {
						if s := hybridScore(lastKnown, p, nextDefinitive); s < bestScore {
							best, bestScore = p, s
						}
					}
					candidates[i].points = []ResolvedPoint{best}
				}
			}
			if len(candidates[i].points) == 1 {
				lastKnown = candidates[i].points[0]
				haveLastKnown = true
			}

		case candidatePointCoords:
			lastKnown = candidates[i].points[0]
			haveLastKnown = true

		case candidateAirway:
			if len(candidates[i].routes) > 0 && len(candidates[i].routes[0].Segments) > 0 {
				segs := candidates[i].routes[0].Segments
				lastKnown = segs[len(segs)-1].End
				haveLastKnown = true
			}
		}
	}
}

// pass 7: emit segments
func emitSegments(candidates []candidate) []ResolvedRouteSegment {
	var previous ResolvedPoint
	havePrevious := false
	var segments []ResolvedRouteSegment

	for i := range candidates {
		c := candidates[i]
		switch c.kind {
		case candidatePoint:
			if len(c.points) == 0 {
				continue
			}
			next := c.points[0]
			if havePrevious && previous.Equal(next) {
				continue
			}
			if havePrevious {
				segments = append(segments, ResolvedRouteSegment{
					Start: previous, End: next, Altitude: c.altitude, Speed: c.speed,
				})
			}
			previous, havePrevious = next, true

		case candidatePointCoords:
			next := c.points[0]
			if havePrevious {
				segments = append(segments, ResolvedRouteSegment{
					Start: previous, End: next, Altitude: c.altitude, Speed: c.speed,
				})
			}
			previous, havePrevious = next, true

		case candidateAirway:
			if len(c.routes) == 0 {
				continue
			}
			route := c.routes[0]
			name := c.airwayName
			for _, seg := range route.Segments {
				seg.Name = &name
				seg.Altitude = c.altitude
				seg.Speed = c.speed
				segments = append(segments, seg)
			}
			if len(route.Segments) > 0 {
				previous = route.Segments[len(route.Segments)-1].End
				havePrevious = true
			}

		case candidateDirect:
			// carry previous forward
		}
	}

	return segments
}
