// pkg/aviation/route_resolver.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"strings"
	"unicode"

	lru "github.com/hashicorp/golang-lru/v2"
)

// validRoutePrefixes are the 32 recognized airway designator prefixes: the
// double-letter "U?" upper-airspace family and the single-letter family.
var validRoutePrefixes = []string{
	"UN", "UM", "UL", "UT", "UZ", "UY", "UP", "UA", "UB", "UG", "UH", "UJ", "UQ", "UR", "UV", "UW",
	"L", "A", "B", "G", "H", "J", "Q", "R", "T", "V", "W", "Y", "Z", "M", "N", "P",
}

// decomposedRouteName is the result of splitting a textual airway
// designator into its component fields, as defined by §4.3 step 2.
type decomposedRouteName struct {
	Prefix             *string
	SecondLetter       string
	Number             string
	MultipleIdentifier *string
}

// decomposeRouteName splits name into (prefix, second letter, number,
// multiple identifier) without checking it against the 32-prefix allow
// list; see RouteResolver.Lookup for that check.
func decomposeRouteName(name string) decomposedRouteName {
	remaining := name
	var multiple *string
	if n := len(remaining); n > 0 {
		last := rune(remaining[n-1])
		if unicode.IsLetter(last) {
			m := string(last)
			multiple = &m
			remaining = remaining[:n-1]
		}
	}

	var d decomposedRouteName
	d.MultipleIdentifier = multiple

	if strings.HasPrefix(remaining, "U") && len(remaining) >= 3 {
		u := "U"
		d.Prefix = &u
		d.SecondLetter = remaining[1:2]
		d.Number = remaining[2:]
	} else if len(remaining) >= 1 {
		d.SecondLetter = remaining[0:1]
		d.Number = remaining[1:]
	}
	return d
}

func (d decomposedRouteName) matches(r Route) bool {
	if (d.Prefix == nil) != (r.Prefix == nil) {
		return false
	}
	if d.Prefix != nil && *d.Prefix != *r.Prefix {
		return false
	}
	if d.SecondLetter != r.SecondLetter {
		return false
	}
	if d.Number != r.Number {
		return false
	}
	if (d.MultipleIdentifier == nil) != (r.MultipleIdentifier == nil) {
		return false
	}
	if d.MultipleIdentifier != nil && *d.MultipleIdentifier != *r.MultipleIdentifier {
		return false
	}
	return true
}

// RouteResolver maps airway designators to candidate ResolvedRoutes.
type RouteResolver struct {
	store  *EntityStore
	points *PointResolver
	cache  *lru.Cache[string, []ResolvedRoute]
}

func NewRouteResolver(store *EntityStore, points *PointResolver, cacheSize int) *RouteResolver {
	if cacheSize <= 0 {
		cacheSize = 1024
	}
	c, _ := lru.New[string, []ResolvedRoute](cacheSize)
	return &RouteResolver{store: store, points: points, cache: c}
}

// Lookup maps a textual airway designator to its candidate ResolvedRoutes.
func (r *RouteResolver) Lookup(name string) []ResolvedRoute {
	trimmed := strings.TrimSpace(name)

	hasValidPrefix := false
	for _, p := range validRoutePrefixes {
		if strings.HasPrefix(trimmed, p) {
			hasValidPrefix = true
			break
		}
	}
	if !hasValidPrefix {
		return nil
	}

	if cached, ok := r.cache.Get(trimmed); ok {
		return cached
	}

	d := decomposeRouteName(trimmed)

	var out []ResolvedRoute
	for _, route := range r.store.routes.All() {
		if d.matches(route) {
			out = append(out, r.reify(route))
		}
	}

	r.cache.Add(trimmed, out)
	return out
}

// reify projects a Route entity into a ResolvedRoute per §4.3.1: its
// segments are every RouteSegment whose owning route matches, projected
// through the point resolver, and its name elides MultipleIdentifier.
func (r *RouteResolver) reify(route Route) ResolvedRoute {
	var segments []ResolvedRouteSegment
	for _, seg := range r.store.routeSegments.All() {
		if seg.RouteFormed != route.Id {
			continue
		}
		segments = append(segments, ResolvedRouteSegment{
			Start: r.points.FromDB(seg.Start),
			End:   r.points.FromDB(seg.End),
		})
	}
	return ResolvedRoute{Name: route.Name(), Segments: segments}
}

// Contains reports whether point appears as the start or end of any
// segment of route.
func (r *RouteResolver) Contains(route ResolvedRoute, point ResolvedPoint) bool {
	for _, seg := range route.Segments {
		if seg.Start.Equal(point) || seg.End.Equal(point) {
			return true
		}
	}
	return false
}

// Between finds a directed simple path through route's segments from
// start to end, returning nil if none exists. See pathSearch (§4.5).
func (r *RouteResolver) Between(route ResolvedRoute, start, end ResolvedPoint) *ResolvedRoute {
	path := pathSearch(route.Segments, start, end)
	if path == nil {
		return nil
	}
	out := ResolvedRoute{Name: route.Name}
	for _, step := range path {
		seg := route.Segments[step.segmentIndex]
		if step.forward {
			out.Segments = append(out.Segments, seg)
		} else {
			reversed := seg
			reversed.Start, reversed.End = seg.End, seg.Start
			name := route.Name
			reversed.Name = &name
			out.Segments = append(out.Segments, reversed)
		}
	}
	return &out
}
