// pkg/aviation/route_resolver_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import "testing"

func strPtr(s string) *string { return &s }

func TestDecomposeRouteName(t *testing.T) {
	tests := []struct {
		name string
		want decomposedRouteName
	}{
		{"J121", decomposedRouteName{SecondLetter: "J", Number: "121"}},
		{"UL995", decomposedRouteName{Prefix: strPtr("U"), SecondLetter: "L", Number: "995"}},
		{"Q9W", decomposedRouteName{SecondLetter: "Q", Number: "9", MultipleIdentifier: strPtr("W")}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := decomposeRouteName(tc.name)
			if !got.matches(Route{
				Prefix: tc.want.Prefix, SecondLetter: tc.want.SecondLetter,
				Number: tc.want.Number, MultipleIdentifier: tc.want.MultipleIdentifier,
			}) {
				t.Errorf("decomposeRouteName(%q) = %+v, want %+v", tc.name, got, tc.want)
			}
		})
	}
}

func routeTestStore() (*EntityStore, *RouteResolver) {
	s := newEmptyStore()
	s.designatedPoints.add("p1", DesignatedPoint{Id: "p1", Designator: "ALPHA"})
	s.designatedPoints.add("p2", DesignatedPoint{Id: "p2", Designator: "BRAVO"})
	s.designatedPoints.add("p3", DesignatedPoint{Id: "p3", Designator: "CHARLIE"})
	s.routes.add("r1", Route{Id: "r1", SecondLetter: "J", Number: "121"})
	s.routeSegments.add("rs1", RouteSegment{
		Id: "rs1", RouteFormed: "r1",
		Start: PointReference{Kind: PointReferenceDesignatedPoint, Id: "p1"},
		End:   PointReference{Kind: PointReferenceDesignatedPoint, Id: "p2"},
	})
	s.routeSegments.add("rs2", RouteSegment{
		Id: "rs2", RouteFormed: "r1",
		Start: PointReference{Kind: PointReferenceDesignatedPoint, Id: "p2"},
		End:   PointReference{Kind: PointReferenceDesignatedPoint, Id: "p3"},
	})

	points := NewPointResolver(s, 0)
	return s, NewRouteResolver(s, points, 0)
}

func TestRouteResolverLookupRejectsUnknownPrefix(t *testing.T) {
	_, rr := routeTestStore()
	if got := rr.Lookup("XYZ999"); got != nil {
		t.Errorf("Lookup with invalid prefix = %+v, want nil", got)
	}
}

func TestRouteResolverLookupAndReify(t *testing.T) {
	_, rr := routeTestStore()

	routes := rr.Lookup("J121")
	if len(routes) != 1 {
		t.Fatalf("Lookup(J121) returned %d routes, want 1", len(routes))
	}
	if routes[0].Name != "J121" {
		t.Errorf("reified route name = %q, want J121", routes[0].Name)
	}
	if len(routes[0].Segments) != 2 {
		t.Fatalf("reified route has %d segments, want 2", len(routes[0].Segments))
	}
}

func TestRouteResolverContains(t *testing.T) {
	_, rr := routeTestStore()
	route := rr.Lookup("J121")[0]

	alpha := ResolvedPoint{Kind: ResolvedDesignatedPoint, DesignatedPoint: &DesignatedPoint{Id: "p1", Designator: "ALPHA"}}
	nowhere := ResolvedPoint{Kind: ResolvedDesignatedPoint, DesignatedPoint: &DesignatedPoint{Id: "p9", Designator: "NOWHERE"}}

	if !rr.Contains(route, alpha) {
		t.Errorf("Contains should find ALPHA as a segment endpoint")
	}
	if rr.Contains(route, nowhere) {
		t.Errorf("Contains should not find an unrelated point")
	}
}

func TestRouteResolverBetween(t *testing.T) {
	_, rr := routeTestStore()
	route := rr.Lookup("J121")[0]

	alpha := ResolvedPoint{Kind: ResolvedDesignatedPoint, DesignatedPoint: &DesignatedPoint{Id: "p1", Designator: "ALPHA"}}
	charlie := ResolvedPoint{Kind: ResolvedDesignatedPoint, DesignatedPoint: &DesignatedPoint{Id: "p3", Designator: "CHARLIE"}}

	trimmed := rr.Between(route, alpha, charlie)
	if trimmed == nil {
		t.Fatalf("Between(ALPHA, CHARLIE) = nil, want a two-segment path")
	}
	if len(trimmed.Segments) != 2 {
		t.Errorf("Between returned %d segments, want 2", len(trimmed.Segments))
	}

	unreachable := ResolvedPoint{Kind: ResolvedDesignatedPoint, DesignatedPoint: &DesignatedPoint{Id: "p9", Designator: "NOWHERE"}}
	if got := rr.Between(route, alpha, unreachable); got != nil {
		t.Errorf("Between with unreachable endpoint = %+v, want nil", got)
	}
}
