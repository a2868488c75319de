// pkg/aviation/aixm/types.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package aixm decodes the AIXM 5.1 feature archives that back the
// reference database: one BASELINE.zip per feature kind, each holding a
// single large GML/AIXM document. Archive parsing and the Field 15
// tokenizer are the two pieces of this system treated as external
// collaborators rather than designed from scratch; this package only
// needs to walk far enough into the schema to recover identifiers,
// designators, coordinates, and cross-reference hrefs.
package aixm

import "encoding/xml"

// Ref is a same-document cross-reference, as in
// <xlink:href="urn:uuid:...">. Val holds the bare uuid with the
// urn:uuid: prefix stripped; it is empty if href was present but not a
// urn:uuid reference.
type Ref struct {
	Val string
}

func (r *Ref) UnmarshalXMLAttr(attr xml.Attr) error {
	r.Val = stripURNUUID(attr.Value)
	return nil
}

const urnUUIDPrefix = "urn:uuid:"

func stripURNUUID(href string) string {
	if len(href) > len(urnUUIDPrefix) && href[:len(urnUUIDPrefix)] == urnUUIDPrefix {
		return href[len(urnUUIDPrefix):]
	}
	return ""
}

// Point is the AIXM ElevatedPoint/Point geometry shape used throughout
// the schema: a single gml:pos of "lat lon" (optionally "lat lon elev").
type Point struct {
	Pos string `xml:"pos"`
}

// AirportHeliport mirrors an aixm:AirportHeliport feature member.
type AirportHeliport struct {
	UUID string `xml:"id,attr"`
	TimeSlice struct {
		AirportHeliportTimeSlice struct {
			Designator        string `xml:"designator"`
			Name              string `xml:"name"`
			LocationIndicator string `xml:"locationIndicator"`
			IATA              string `xml:"IATA"`
			Type              string `xml:"type"`
			City              string `xml:"servedCity>City>name"`
			ARP               struct {
				ElevatedPoint struct {
					Pos       string `xml:"pos"`
					Elevation string `xml:"elevation"`
				} `xml:"ElevatedPoint"`
			} `xml:"ARP"`
		} `xml:"AirportHeliportTimeSlice"`
	} `xml:"timeSlice"`
}

// Navaid mirrors an aixm:Navaid feature member (VOR/NDB/TACAN/DME).
type Navaid struct {
	UUID      string `xml:"id,attr"`
	TimeSlice struct {
		NavaidTimeSlice struct {
			Designator string `xml:"designator"`
			Name       string `xml:"name"`
			Type       string `xml:"type"`
			Location   Point  `xml:"location>ElevatedPoint"`
		} `xml:"NavaidTimeSlice"`
	} `xml:"timeSlice"`
}

// DesignatedPoint mirrors an aixm:DesignatedPoint feature member.
type DesignatedPoint struct {
	UUID      string `xml:"id,attr"`
	TimeSlice struct {
		DesignatedPointTimeSlice struct {
			Designator string `xml:"designator"`
			Name       string `xml:"name"`
			Type       string `xml:"type"`
			Location   Point  `xml:"location>Point"`
		} `xml:"DesignatedPointTimeSlice"`
	} `xml:"timeSlice"`
}

// Route mirrors an aixm:Route feature member, an airway as a whole
// rather than one of its segments.
type Route struct {
	UUID      string `xml:"id,attr"`
	TimeSlice struct {
		RouteTimeSlice struct {
			Designator         string `xml:"designatorPrefix"`
			DesignatorSecond   string `xml:"designatorSecondLetter"`
			DesignatorNumber   string `xml:"designatorNumber"`
			MultipleIdentifier string `xml:"multipleIdentifier"`
		} `xml:"RouteTimeSlice"`
	} `xml:"timeSlice"`
}

// RouteSegment mirrors an aixm:RouteSegment feature member: one directed
// edge of an airway, referencing its owning Route and its two endpoint
// points by href.
type RouteSegment struct {
	UUID      string `xml:"id,attr"`
	TimeSlice struct {
		RouteSegmentTimeSlice struct {
			RouteFormed struct {
				Href Ref `xml:"href,attr"`
			} `xml:"routeFormed"`
			Start struct {
				PointRef struct {
					Href Ref `xml:"href,attr"`
				} `xml:"StartPoint>pointChoice_navaidSystem,omitempty"`
			} `xml:"start"`
			End struct {
				PointRef struct {
					Href Ref `xml:"href,attr"`
				} `xml:"EndPoint>pointChoice_navaidSystem,omitempty"`
			} `xml:"end"`
		} `xml:"RouteSegmentTimeSlice"`
	} `xml:"timeSlice"`
}

// procedureLeg is the shared shape of StandardInstrumentArrival and
// StandardInstrumentDeparture legs: a directed edge referencing its
// owning procedure and two endpoint points by href.
type procedureLeg struct {
	UUID      string `xml:"id,attr"`
	TimeSlice struct {
		LegTimeSlice struct {
			LegsAt struct {
				Href Ref `xml:"href,attr"`
			} `xml:"legsAt"`
			Start struct {
				Href Ref `xml:"href,attr"`
			} `xml:"start>pointChoice_fix>href"`
			End struct {
				Href Ref `xml:"href,attr"`
			} `xml:"end>pointChoice_fix>href"`
		} `xml:"LegTimeSlice"`
	} `xml:"timeSlice"`
}

// ArrivalLeg mirrors an aixm:ArrivalLeg feature member.
type ArrivalLeg procedureLeg

// DepartureLeg mirrors an aixm:DepartureLeg feature member.
type DepartureLeg procedureLeg

// procedure is the shared shape of StandardInstrumentArrival and
// StandardInstrumentDeparture.
type procedure struct {
	UUID      string `xml:"id,attr"`
	TimeSlice struct {
		ProcedureTimeSlice struct {
			Designator  string `xml:"designator"`
			Instruction string `xml:"usage>instruction"`
			AirportHeliportRef struct {
				Href Ref `xml:"href,attr"`
			} `xml:"extension>AirportHeliportReferenceExtension>airportHeliport"`
			ConnectingPoint []struct {
				Href Ref `xml:"href,attr"`
			} `xml:"connectingPoint>href"`
		} `xml:"ProcedureTimeSlice"`
	} `xml:"timeSlice"`
}

// StandardInstrumentArrival mirrors an aixm:StandardInstrumentArrival
// feature member.
type StandardInstrumentArrival procedure

// StandardInstrumentDeparture mirrors an aixm:StandardInstrumentDeparture
// feature member.
type StandardInstrumentDeparture procedure
