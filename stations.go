package dataprep

import (
	"strconv"
	"strings"

	"github.com/tidwall/geojson/geometry"
)

// malaysiaBounds is a sanity check for registry coordinates. Anything
// outside is treated as bad data rather than a station abroad.
var malaysiaBounds = geometry.Rect{
	Min: geometry.Point{X: 99.0, Y: 1.0},
	Max: geometry.Point{X: 105.0, Y: 7.5},
}

// StationLocation pairs a fare-matrix station with coordinates. Order is the
// 1-based position of the station in the fare matrix.
type StationLocation struct {
	Station   string  `json:"station"`
	Order     int     `json:"order"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// buildStationLookup indexes registry rows by canonical station name. The
// first row to claim a key wins.
func buildStationLookup(rows []map[string]string) map[string]map[string]string {
	lookup := make(map[string]map[string]string)
	for _, row := range rows {
		name := strings.TrimSpace(row["station_name"])
		if name == "" {
			continue
		}
		key := CanonicalName(name)
		if key == "" {
			continue
		}
		if _, ok := lookup[key]; !ok {
			lookup[key] = row
		}
	}
	return lookup
}

// MatchStationLocations resolves each fare-matrix station to coordinates.
// Resolution order: manual alias then direct registry lookup, the registry
// hit validated against malaysiaBounds, then the manual coordinate table.
// Stations that survive none of those are returned as unmatched.
func MatchStationLocations(stationOrder []string, stationCSV string) ([]StationLocation, []string, error) {
	rows, err := loadCSV(stationCSV)
	if err != nil {
		return nil, nil, err
	}
	lookup := buildStationLookup(rows)

	matched := make([]StationLocation, 0, len(stationOrder))
	unmatched := []string{}

	for index, station := range stationOrder {
		key := CanonicalName(station)

		var row map[string]string
		if aliasKey, ok := manualAliases[key]; ok {
			row = lookup[aliasKey]
		} else {
			row = lookup[key]
		}

		manual, hasManual := manualCoordinates[key]

		if row == nil && !hasManual {
			unmatched = append(unmatched, station)
			continue
		}

		var lat, lon float64
		var valid bool

		if row != nil {
			lat, lon, valid = parseCoordinates(row["latitude"], row["longitude"])
			if valid && !malaysiaBounds.ContainsPoint(geometry.Point{X: lon, Y: lat}) {
				valid = false
			}
		}

		if !valid && hasManual {
			lat, lon = manual.Y, manual.X
			valid = true
		}

		if !valid {
			unmatched = append(unmatched, station)
			continue
		}

		matched = append(matched, StationLocation{
			Station:   station,
			Order:     index + 1,
			Latitude:  lat,
			Longitude: lon,
		})
	}

	return matched, unmatched, nil
}

func parseCoordinates(latRaw, lonRaw string) (lat, lon float64, ok bool) {
	lat, latErr := strconv.ParseFloat(strings.TrimSpace(latRaw), 64)
	lon, lonErr := strconv.ParseFloat(strings.TrimSpace(lonRaw), 64)
	if latErr != nil || lonErr != nil {
		return 0, 0, false
	}
	return lat, lon, true
}
