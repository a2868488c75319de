// pkg/aviation/path_search_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import "testing"

func coordPoint(lat, lon float64) ResolvedPoint {
	return ResolvedPoint{Kind: ResolvedCoordinates, Lat: lat, Lon: lon}
}

func TestPathSearchDirectSegment(t *testing.T) {
	a, b := coordPoint(1, 1), coordPoint(2, 2)
	segs := []ResolvedRouteSegment{{Start: a, End: b}}

	path := pathSearch(segs, a, b)
	if len(path) != 1 || path[0].segmentIndex != 0 || !path[0].forward {
		t.Fatalf("pathSearch = %+v, want single forward step", path)
	}
}

func TestPathSearchTraversesBackward(t *testing.T) {
	a, b := coordPoint(1, 1), coordPoint(2, 2)
	segs := []ResolvedRouteSegment{{Start: b, End: a}}

	path := pathSearch(segs, a, b)
	if len(path) != 1 || path[0].segmentIndex != 0 || path[0].forward {
		t.Fatalf("pathSearch = %+v, want single backward step", path)
	}
}

func TestPathSearchMultiHop(t *testing.T) {
	a, b, c := coordPoint(1, 1), coordPoint(2, 2), coordPoint(3, 3)
	segs := []ResolvedRouteSegment{
		{Start: a, End: b},
		{Start: b, End: c},
	}

	path := pathSearch(segs, a, c)
	if len(path) != 2 {
		t.Fatalf("pathSearch = %+v, want two-hop path", path)
	}
	if path[0].segmentIndex != 0 || path[1].segmentIndex != 1 {
		t.Errorf("path visited segments out of order: %+v", path)
	}
}

func TestPathSearchNoPath(t *testing.T) {
	a, b, c := coordPoint(1, 1), coordPoint(2, 2), coordPoint(3, 3)
	segs := []ResolvedRouteSegment{{Start: a, End: b}}

	if path := pathSearch(segs, a, c); path != nil {
		t.Errorf("pathSearch = %+v, want nil (no connecting segment)", path)
	}
}

func TestPathSearchStartEqualsEndIsEmptyPath(t *testing.T) {
	// When start and end are the same point the search is already at its
	// destination and traverses no segment at all.
	a, b := coordPoint(1, 1), coordPoint(2, 2)
	segs := []ResolvedRouteSegment{{Start: a, End: b}}

	path := pathSearch(segs, a, a)
	if len(path) != 0 {
		t.Errorf("pathSearch(a, a) = %+v, want empty path (already at destination)", path)
	}
}
