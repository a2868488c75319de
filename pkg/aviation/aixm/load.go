// pkg/aviation/aixm/load.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aixm

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/flate"
	"golang.org/x/sync/errgroup"
)

func init() {
	// The reference archives are large; klauspost/compress's flate
	// implementation decodes noticeably faster than the standard
	// library's, and nine of these are opened concurrently at startup.
	zip.RegisterDecompressor(zip.Deflate, func(r io.Reader) io.ReadCloser {
		return flate.NewReader(r)
	})
}

// Archive holds every feature collection decoded from one reference
// data directory.
type Archive struct {
	AirportHeliports            []AirportHeliport
	Navaids                     []Navaid
	DesignatedPoints            []DesignatedPoint
	Routes                      []Route
	RouteSegments               []RouteSegment
	ArrivalLegs                 []ArrivalLeg
	DepartureLegs               []DepartureLeg
	StandardInstrumentArrivals  []StandardInstrumentArrival
	StandardInstrumentDepartures []StandardInstrumentDeparture
}

// archiveFile names the BASELINE.zip archive that holds one feature
// kind's members, keyed by the aixm feature member element name.
var archiveFile = map[string]string{
	"AirportHeliport":            "AirportHeliport.BASELINE.zip",
	"Navaid":                     "Navaid.BASELINE.zip",
	"DesignatedPoint":            "DesignatedPoint.BASELINE.zip",
	"Route":                      "Route.BASELINE.zip",
	"RouteSegment":               "RouteSegment.BASELINE.zip",
	"ArrivalLeg":                 "ArrivalLeg.BASELINE.zip",
	"DepartureLeg":               "DepartureLeg.BASELINE.zip",
	"StandardInstrumentArrival":  "StandardInstrumentArrival.BASELINE.zip",
	"StandardInstrumentDeparture": "StandardInstrumentDeparture.BASELINE.zip",
}

// Load reads all nine reference archives from dir concurrently and
// returns their decoded contents. A missing directory is reported as
// ErrArchiveDirNotFound-flavored *PathError by the caller's wrapping;
// a missing individual archive or malformed XML is returned as-is so
// the caller can distinguish configuration problems from data problems.
func Load(dir string) (*Archive, error) {
	if fi, err := os.Stat(dir); err != nil {
		return nil, err
	} else if !fi.IsDir() {
		return nil, fmt.Errorf("%s: not a directory", dir)
	}

	var g errgroup.Group
	a := &Archive{}

	g.Go(func() (err error) {
		a.AirportHeliports, err = loadArchive[AirportHeliport](dir, "AirportHeliport")
		return err
	})
	g.Go(func() (err error) {
		a.Navaids, err = loadArchive[Navaid](dir, "Navaid")
		return err
	})
	g.Go(func() (err error) {
		a.DesignatedPoints, err = loadArchive[DesignatedPoint](dir, "DesignatedPoint")
		return err
	})
	g.Go(func() (err error) {
		a.Routes, err = loadArchive[Route](dir, "Route")
		return err
	})
	g.Go(func() (err error) {
		a.RouteSegments, err = loadArchive[RouteSegment](dir, "RouteSegment")
		return err
	})
	g.Go(func() (err error) {
		a.ArrivalLegs, err = loadOptionalArchive[ArrivalLeg](dir, "ArrivalLeg")
		return err
	})
	g.Go(func() (err error) {
		a.DepartureLegs, err = loadOptionalArchive[DepartureLeg](dir, "DepartureLeg")
		return err
	})
	g.Go(func() (err error) {
		a.StandardInstrumentArrivals, err = loadOptionalArchive[StandardInstrumentArrival](dir, "StandardInstrumentArrival")
		return err
	})
	g.Go(func() (err error) {
		a.StandardInstrumentDepartures, err = loadOptionalArchive[StandardInstrumentDeparture](dir, "StandardInstrumentDeparture")
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return a, nil
}

// loadArchive opens the BASELINE.zip archive for elementName, decodes
// every top-level <elementName> feature member found in its single
// member document, and returns them in file order.
func loadArchive[T any](dir, elementName string) ([]T, error) {
	name, ok := archiveFile[elementName]
	if !ok {
		return nil, fmt.Errorf("%s: no archive mapping", elementName)
	}

	path := filepath.Join(dir, name)
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer zr.Close()

	var out []T
	for _, f := range zr.File {
		members, err := decodeMembers[T](f, elementName)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", path, f.Name, err)
		}
		out = append(out, members...)
	}
	return out, nil
}

// loadOptionalArchive is loadArchive for one of the four archive kinds
// that §6 allows a reference data directory to omit entirely (no SIDs/
// STARs modeled, typically). A missing archive file yields an empty
// collection rather than an error; a present-but-malformed one still
// fails the load.
func loadOptionalArchive[T any](dir, elementName string) ([]T, error) {
	name, ok := archiveFile[elementName]
	if !ok {
		return nil, fmt.Errorf("%s: no archive mapping", elementName)
	}
	if _, err := os.Stat(filepath.Join(dir, name)); os.IsNotExist(err) {
		return nil, nil
	}
	return loadArchive[T](dir, elementName)
}

// decodeMembers streams f's XML content, decoding every StartElement
// named elementName as a T. The full AIXM/GML schema is deep and mostly
// irrelevant to this decoder's needs, so rather than modeling the
// enclosing <Member>/<FeatureCollection> wrapper it just watches for
// the element name that matters as the token stream goes by.
func decodeMembers[T any](f *zip.File, elementName string) ([]T, error) {
	r, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()

	decoder := xml.NewDecoder(r)
	var out []T
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != elementName {
			continue
		}

		var v T
		if err := decoder.DecodeElement(&v, &se); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
