// pkg/math/geodesic_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"math"
	"testing"

	"github.com/skybound/airway/pkg/rand"
)

func TestGeodesicInverseCoincident(t *testing.T) {
	az1, az2, dist := WGS84().GeodesicInverse(33.9425, -118.4081, 33.9425, -118.4081)
	if az1 != 0 || az2 != 0 || dist != 0 {
		t.Errorf("coincident points should give zero azimuths and distance, got (%v, %v, %v)", az1, az2, dist)
	}
}

func TestGeodesicInverseKnownDistance(t *testing.T) {
	// LAX -> JFK, widely published WGS-84 great-circle-class distance is
	// close to 3983 km; Vincenty's ellipsoidal solution should land within
	// a few km of that.
	_, _, dist := WGS84().GeodesicInverse(33.9425, -118.4081, 40.6413, -73.7781)
	const wantKm = 3983.0
	gotKm := dist / 1000
	if math.Abs(gotKm-wantKm) > 10 {
		t.Errorf("LAX-JFK distance = %.1f km, want approximately %.1f km", gotKm, wantKm)
	}
}

func TestGeodesicInverseSymmetric(t *testing.T) {
	for i := 0; i < 200; i++ {
		lat1, lon1 := -80+160*rand.Float32(), -180+360*rand.Float32()
		lat2, lon2 := -80+160*rand.Float32(), -180+360*rand.Float32()

		az1, az2, d1 := WGS84().GeodesicInverse(float64(lat1), float64(lon1), float64(lat2), float64(lon2))
		backAz2, backAz1, d2 := WGS84().GeodesicInverse(float64(lat2), float64(lon2), float64(lat1), float64(lon1))

		if math.Abs(d1-d2) > 1e-6 {
			t.Fatalf("distance not symmetric: %v vs %v", d1, d2)
		}
		// Both azimuths are forward azimuths, so reversing the endpoints
		// turns each one into the opposite heading at the same point.
		if WrappedAzimuthDiff(az1, normalizeDegrees(backAz1+180)) > 1e-6 {
			t.Fatalf("forward azimuth mismatch on reversal: %v vs %v", az1, backAz1)
		}
		if WrappedAzimuthDiff(az2, normalizeDegrees(backAz2+180)) > 1e-6 {
			t.Fatalf("reverse azimuth mismatch on reversal: %v vs %v", az2, backAz2)
		}
	}
}

func TestWrappedAzimuthDiff(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{0, 0, 0},
		{10, 350, 20},
		{350, 10, 20},
		{0, 180, 180},
		{90, 270, 180},
		{45, 90, 45},
	}
	for _, tc := range tests {
		if got := WrappedAzimuthDiff(tc.a, tc.b); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("WrappedAzimuthDiff(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}
