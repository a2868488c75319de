// pkg/aviation/aixm/coords.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aixm

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePos parses a gml:pos string of the form "lat lon" or
// "lat lon elev", degrees as signed decimal.
func ParsePos(pos string) (lat, lon float64, err error) {
	fields := strings.Fields(pos)
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("%q: expected at least 2 fields in gml:pos", pos)
	}
	lat, err = strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%q: malformed latitude: %w", pos, err)
	}
	lon, err = strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%q: malformed longitude: %w", pos, err)
	}
	return lat, lon, nil
}
