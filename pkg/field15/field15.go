// pkg/field15/field15.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package field15 declares the element types contributed by an upstream
// Field 15 (ICAO flight-plan route string) tokenizer. Producing these
// tokens from route text is outside this module's scope; this package
// only defines the contract the enrichment pipeline consumes.
package field15

// Element is a single token in a Field 15 route string.
type Element interface {
	isElement()
}

// Modifier carries altitude and/or speed constraints that apply from
// this point in the route onward. Either field may be absent.
type Modifier struct {
	Altitude *string
	Speed    *string
}

func (Modifier) isElement() {}

// Waypoint names a navaid or designated point by its published
// identifier. The point resolver does not match airports/heliports.
type Waypoint struct {
	Name string
}

func (Waypoint) isElement() {}

// Coordinates is an inline coordinate literal (e.g. "4600N00500E").
type Coordinates struct {
	Lat, Lon float64
}

func (Coordinates) isElement() {}

// Airway names a published ATS route connecting the surrounding points.
type Airway struct {
	Name string
}

func (Airway) isElement() {}

// Sid names a Standard Instrument Departure procedure.
type Sid struct {
	Name string
}

func (Sid) isElement() {}

// Star names a Standard Instrument Arrival procedure.
type Star struct {
	Name string
}

func (Star) isElement() {}

// Direct indicates an unconstrained direct leg between the surrounding
// points.
type Direct struct{}

func (Direct) isElement() {}

// Nat names a North Atlantic Track. It contributes no geometry of its
// own; the pipeline treats it as Direct.
type Nat struct {
	Name string
}

func (Nat) isElement() {}

// Pts is a published point-to-point segment placeholder. It contributes
// no geometry of its own; the pipeline treats it as Direct.
type Pts struct {
	Name string
}

func (Pts) isElement() {}

// Other wraps any element kind not named above. The enrichment pipeline
// ignores these silently.
type Other struct {
	Kind string
}

func (Other) isElement() {}
