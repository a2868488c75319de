// pkg/aviation/point_resolver_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import "testing"

func newTestStore() *EntityStore {
	s := newEmptyStore()
	s.navaids.add("n1", Navaid{Id: "n1", Name: "OAK", Type: "VOR"})
	s.navaids.add("n2", Navaid{Id: "n2", Name: "oak", Type: "NDB"}) // duplicate name, different case
	s.designatedPoints.add("d1", DesignatedPoint{Id: "d1", Designator: "FIXIE"})
	s.designatedPoints.add("d2", DesignatedPoint{Id: "d2", Designator: "OAK"}) // shadowed by navaid matches
	return s
}

func TestPointResolverLookupPrefersNavaids(t *testing.T) {
	r := NewPointResolver(newTestStore(), 0)

	matches := r.Lookup(" oak ")
	if len(matches) != 2 {
		t.Fatalf("Lookup(oak) returned %d matches, want 2 navaids", len(matches))
	}
	for _, m := range matches {
		if m.Kind != ResolvedNavaid {
			t.Errorf("match kind = %v, want ResolvedNavaid (designated point should be shadowed)", m.Kind)
		}
	}
}

func TestPointResolverLookupFallsBackToDesignatedPoints(t *testing.T) {
	r := NewPointResolver(newTestStore(), 0)

	matches := r.Lookup("FIXIE")
	if len(matches) != 1 || matches[0].Kind != ResolvedDesignatedPoint {
		t.Fatalf("Lookup(FIXIE) = %+v, want single designated point match", matches)
	}
}

func TestPointResolverLookupNoMatch(t *testing.T) {
	r := NewPointResolver(newTestStore(), 0)
	if matches := r.Lookup("NOPE"); matches != nil {
		t.Errorf("Lookup(NOPE) = %+v, want nil", matches)
	}
}

func TestPointResolverLookupIsCachedAndIndependentPerCall(t *testing.T) {
	r := NewPointResolver(newTestStore(), 0)

	a := r.Lookup("FIXIE")
	b := r.Lookup("FIXIE")
	if len(a) != 1 || len(b) != 1 {
		t.Fatalf("expected one match on both calls")
	}

	// Mutating one caller's slice must not affect the other's, or a
	// future cached read: deepCopyPoints exists for exactly this reason.
	a[0].DesignatedPoint.Designator = "MUTATED"
	if b[0].DesignatedPoint.Designator == "MUTATED" {
		t.Errorf("mutation of one Lookup result leaked into another")
	}

	c := r.Lookup("FIXIE")
	if c[0].DesignatedPoint.Designator != "FIXIE" {
		t.Errorf("cached entry was mutated by a caller: got %q", c[0].DesignatedPoint.Designator)
	}
}

func TestPointResolverFromDB(t *testing.T) {
	r := NewPointResolver(newTestStore(), 0)

	got := r.FromDB(PointReference{Kind: PointReferenceNavaid, Id: "n1"})
	if got.Kind != ResolvedNavaid || got.Navaid.Id != "n1" {
		t.Errorf("FromDB = %+v, want navaid n1", got)
	}

	if got := r.FromDB(PointReference{}); got.Kind != ResolvedNone {
		t.Errorf("FromDB(zero ref) = %+v, want ResolvedNone", got)
	}
}
