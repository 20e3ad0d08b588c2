package dataprep

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

type AmpangOpts struct {
	FarePath     string
	StationsPath string
	OutDir       string
	SQLitePath   string // also write the tidy tables to this SQLite file
}

type AmpangSummary struct {
	StationsInMatrix int      `json:"stations_in_matrix"`
	MatchedLocations int      `json:"matched_locations"`
	Unmatched        []string `json:"unmatched"`
	FareRecords      int      `json:"fare_records"`
}

// PrepareAmpang runs the fare and station pipeline: pivot the wide fare
// matrix to tidy rows, match matrix stations to coordinates, and write the
// dashboard artifacts into OutDir. Unmatched stations are reported in the
// summary, not treated as an error.
func PrepareAmpang(opts *AmpangOpts) (*AmpangSummary, error) {
	if opts == nil {
		opts = &AmpangOpts{}
	}
	farePath := opts.FarePath
	if farePath == "" {
		farePath = "Fare.csv"
	}
	stationsPath := opts.StationsPath
	if stationsPath == "" {
		stationsPath = "lrt-malaysia.csv"
	}
	outDir := opts.OutDir
	if outDir == "" {
		outDir = "data"
	}

	slog.Info(fmt.Sprintf("Preparing fare data from %s into %s", farePath, outDir))

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}

	stationOrder, fares, err := ReadFareMatrix(farePath)
	if err != nil {
		return nil, err
	}

	if err := writeJSON(filepath.Join(outDir, "fare_long.json"), fares); err != nil {
		return nil, err
	}
	if err := writeFareCSV(filepath.Join(outDir, "fare_long.csv"), fares); err != nil {
		return nil, err
	}

	locations, unmatched, err := MatchStationLocations(stationOrder, stationsPath)
	if err != nil {
		return nil, err
	}

	if err := writeJSON(filepath.Join(outDir, "ampang_station_locations.json"), locations); err != nil {
		return nil, err
	}
	if err := writeJSON(filepath.Join(outDir, "ampang_route.json"), locations); err != nil {
		return nil, err
	}
	if err := writeJSON(filepath.Join(outDir, "ampang_station_list.json"), stationOrder); err != nil {
		return nil, err
	}

	if len(locations) >= 2 {
		routePath := filepath.Join(outDir, "ampang_route.geojson")
		if err := os.WriteFile(routePath, []byte(routeLineString(locations).JSON()), 0o644); err != nil {
			return nil, err
		}
		slog.Info(fmt.Sprintf("Wrote %s", routePath))
	}

	if opts.SQLitePath != "" {
		if err := WriteDatabase(opts.SQLitePath, fares, locations); err != nil {
			return nil, err
		}
	}

	return &AmpangSummary{
		StationsInMatrix: len(stationOrder),
		MatchedLocations: len(locations),
		Unmatched:        unmatched,
		FareRecords:      len(fares),
	}, nil
}
