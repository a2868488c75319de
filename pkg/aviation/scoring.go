// pkg/aviation/scoring.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import vmath "github.com/skybound/airway/pkg/math"

// geodesicDistance returns the WGS-84 ellipsoidal distance in meters
// between two resolved points. Points with no defined position (None)
// are treated as coincident with everything, yielding zero distance.
func geodesicDistance(a, b ResolvedPoint) float64 {
	alat, alon, aok := a.LatLon()
	blat, blon, bok := b.LatLon()
	if !aok || !bok {
		return 0
	}
	_, _, dist := vmath.WGS84().GeodesicInverse(alat, alon, blat, blon)
	return dist
}

// hybridScore computes the tie-break score for candidate x given anchors
// a and b: a weighted combination of how far x's bearing deviates from
// the direct a->b bearing and how much detour routing through x adds
// relative to going straight from a to b. Lower is better. A candidate
// sitting on the a->b geodesic has no detour term; its bearing term is
// also 0 where the geodesic's azimuth is constant (along the equator or a
// meridian), and small but non-zero elsewhere, since the a->b azimuth is
// taken at a while the x->b azimuth is taken at x.
func hybridScore(a, x, b ResolvedPoint) float64 {
	alat, alon, aok := a.LatLon()
	xlat, xlon, xok := x.LatLon()
	blat, blon, bok := b.LatLon()
	if !aok || !xok || !bok {
		return 0
	}

	ellipsoid := vmath.WGS84()

	azAX, _, distAX := ellipsoid.GeodesicInverse(alat, alon, xlat, xlon)
	azXB, _, distXB := ellipsoid.GeodesicInverse(xlat, xlon, blat, blon)
	azAB, _, distAB := ellipsoid.GeodesicInverse(alat, alon, blat, blon)

	denom := distAB
	if denom < 1e-9 {
		denom = 1e-9
	}
	gapRatio := (distAX + distXB) / denom

	diff1 := vmath.WrappedAzimuthDiff(azAX, azAB)
	diff2 := vmath.WrappedAzimuthDiff(azXB, azAB)
	bearingDiff := (diff1 + diff2) / 2

	detour := gapRatio - 1
	if detour < 0 {
		detour = 0
	}

	return bearingDiff/180 + detour
}
