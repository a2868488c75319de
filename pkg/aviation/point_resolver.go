// pkg/aviation/point_resolver.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"strings"

	"github.com/brunoga/deep"
	lru "github.com/hashicorp/golang-lru/v2"
)

// PointResolver maps textual waypoint names to candidate resolved
// points. It holds no state of its own beyond a lookup cache; every
// method is a pure function of the store and its arguments.
type PointResolver struct {
	store *EntityStore
	cache *lru.Cache[string, []ResolvedPoint]
}

// NewPointResolver wraps store with a point-name lookup cache. cacheSize
// bounds the number of distinct normalized names retained; a repeated
// waypoint name within one route, or across concurrent requests sharing
// store, is served from cache instead of rescanning every navaid and
// designated point.
func NewPointResolver(store *EntityStore, cacheSize int) *PointResolver {
	if cacheSize <= 0 {
		cacheSize = 4096
	}
	c, _ := lru.New[string, []ResolvedPoint](cacheSize)
	return &PointResolver{store: store, cache: c}
}

// Lookup maps name to its candidate resolved points. Comparison is
// case-insensitive after trimming surrounding whitespace. Navaids are
// tried first (matched by Name); if any match, all navaid matches are
// returned and designated points are not considered. Otherwise
// designated points are matched by Designator. If neither collection has
// a match, the result is empty.
func (r *PointResolver) Lookup(name string) []ResolvedPoint {
	key := normalizeName(name)

	if cached, ok := r.cache.Get(key); ok {
		return deepCopyPoints(cached)
	}

	var matches []ResolvedPoint
	for _, n := range r.store.navaids.All() {
		if normalizeName(n.Name) == key {
			n := n
			matches = append(matches, ResolvedPoint{Kind: ResolvedNavaid, Navaid: &n})
		}
	}
	if len(matches) == 0 {
		for _, d := range r.store.designatedPoints.All() {
			if normalizeName(d.Designator) == key {
				d := d
				matches = append(matches, ResolvedPoint{Kind: ResolvedDesignatedPoint, DesignatedPoint: &d})
			}
		}
	}

	r.cache.Add(key, matches)
	return deepCopyPoints(matches)
}

// FromDB is a direct projection of a PointReference into a ResolvedPoint,
// with no name matching involved.
func (r *PointResolver) FromDB(ref PointReference) ResolvedPoint {
	return r.store.resolveReference(ref)
}

func normalizeName(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func deepCopyPoints(pts []ResolvedPoint) []ResolvedPoint {
	if pts == nil {
		return nil
	}
	out, err := deep.Copy(pts)
	if err != nil {
		// deep.Copy only fails on unexported/unsupported field types,
		// none of which ResolvedPoint has; fall back to the original
		// slice rather than surfacing an error from a pure query.
		return pts
	}
	return out
}
