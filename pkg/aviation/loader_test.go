// pkg/aviation/loader_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTestArchive(t *testing.T, dir, name, member, body string) {
	t.Helper()
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("create %s: %v", name, err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create(member)
	if err != nil {
		t.Fatalf("zip.Create: %v", err)
	}
	if _, err := w.Write([]byte(body)); err != nil {
		t.Fatalf("write zip member: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
}

const gmlNS = `xmlns:gml="http://www.opengis.net/gml/3.2"`

func writeRequiredArchiveSet(t *testing.T, dir string) {
	t.Helper()
	writeTestArchive(t, dir, "AirportHeliport.BASELINE.zip", "AirportHeliport.xml",
		`<FC `+gmlNS+`><AirportHeliport gml:id="a1"><timeSlice><AirportHeliportTimeSlice>`+
			`<locationIndicator>KOAK</locationIndicator><ARP><ElevatedPoint><pos>37.72 -122.22</pos></ElevatedPoint></ARP>`+
			`</AirportHeliportTimeSlice></timeSlice></AirportHeliport></FC>`)
	writeTestArchive(t, dir, "Navaid.BASELINE.zip", "Navaid.xml", `<FC `+gmlNS+`></FC>`)
	writeTestArchive(t, dir, "DesignatedPoint.BASELINE.zip", "DesignatedPoint.xml", `<FC `+gmlNS+`></FC>`)
	writeTestArchive(t, dir, "Route.BASELINE.zip", "Route.xml", `<FC `+gmlNS+`></FC>`)
	writeTestArchive(t, dir, "RouteSegment.BASELINE.zip", "RouteSegment.xml", `<FC `+gmlNS+`></FC>`)
}

func TestNewBuildsStoreFromArchives(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dir := t.TempDir()
	writeRequiredArchiveSet(t, dir)

	store, err := New(dir, WithoutDiskCache())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if store.Airports().Len() != 1 {
		t.Fatalf("Airports().Len() = %d, want 1", store.Airports().Len())
	}
	ap, ok := store.Airports().Get("a1")
	if !ok || ap.Icao != "KOAK" {
		t.Errorf("airport a1 = %+v, ok=%v", ap, ok)
	}
}

func TestNewMissingDirectory(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "nope")); !errors.Is(err, ErrArchiveDirNotFound) {
		t.Errorf("New on missing dir: err = %v, want ErrArchiveDirNotFound", err)
	}
}

func TestNewMissingRequiredArchive(t *testing.T) {
	dir := t.TempDir()
	writeRequiredArchiveSet(t, dir)
	if err := os.Remove(filepath.Join(dir, "Navaid.BASELINE.zip")); err != nil {
		t.Fatalf("remove fixture: %v", err)
	}

	_, err := New(dir, WithoutDiskCache())
	if !errors.Is(err, ErrRequiredArchiveMissing) {
		t.Errorf("New with a missing required archive: err = %v, want ErrRequiredArchiveMissing", err)
	}
}

func TestNewRepeatedCallsAgreeViaDiskCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dir := t.TempDir()
	writeRequiredArchiveSet(t, dir)

	first, err := New(dir)
	if err != nil {
		t.Fatalf("New (first, populates cache): %v", err)
	}
	second, err := New(dir)
	if err != nil {
		t.Fatalf("New (second, should hit cache): %v", err)
	}
	if second.Airports().Len() != first.Airports().Len() {
		t.Errorf("cached load disagrees with original: %d vs %d airports",
			second.Airports().Len(), first.Airports().Len())
	}
}

func TestNewCacheKeyChangesWithArchiveContents(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dir := t.TempDir()
	writeRequiredArchiveSet(t, dir)

	if _, err := New(dir); err != nil {
		t.Fatalf("New (first): %v", err)
	}

	// Add a second airport and touch the directory; the archive set's
	// fingerprint should change and force a reparse rather than serving
	// the stale cached snapshot.
	writeTestArchive(t, dir, "AirportHeliport.BASELINE.zip", "AirportHeliport.xml",
		`<FC `+gmlNS+`><AirportHeliport gml:id="a1"><timeSlice><AirportHeliportTimeSlice>`+
			`<locationIndicator>KOAK</locationIndicator><ARP><ElevatedPoint><pos>37.72 -122.22</pos></ElevatedPoint></ARP>`+
			`</AirportHeliportTimeSlice></timeSlice></AirportHeliport>`+
			`<AirportHeliport gml:id="a2"><timeSlice><AirportHeliportTimeSlice>`+
			`<locationIndicator>KSFO</locationIndicator><ARP><ElevatedPoint><pos>37.62 -122.38</pos></ElevatedPoint></ARP>`+
			`</AirportHeliportTimeSlice></timeSlice></AirportHeliport></FC>`)

	second, err := New(dir)
	if err != nil {
		t.Fatalf("New (second, after content change): %v", err)
	}
	if second.Airports().Len() != 2 {
		t.Errorf("Airports().Len() after content change = %d, want 2 (stale cache was served)", second.Airports().Len())
	}
}
