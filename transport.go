package dataprep

import (
	"cmp"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"
)

type BusStateRecord struct {
	State           string   `json:"state"`
	TerminalCount   int      `json:"terminal_count"`
	SampleTerminals []string `json:"sample_terminals"`
	Latitude        float64  `json:"latitude"`
	Longitude       float64  `json:"longitude"`
}

type VehicleTrendRecord struct {
	Year        int    `json:"year"`
	VehicleType string `json:"vehicle_type"`
	Count       int    `json:"count"`
}

type RidershipRecord struct {
	Month            string `json:"month"`
	Mode             string `json:"mode"`
	AverageRidership int    `json:"average_ridership"`
}

// BuildStateBusCounts groups terminal rows by state, keeping only states in
// busStateCoords. Output is sorted by descending terminal count, ties broken
// by state name; sample_terminals lists the first five alphabetically.
func BuildStateBusCounts(rows []map[string]string) []BusStateRecord {
	grouped := make(map[string][]string)
	for _, row := range rows {
		state := strings.TrimSpace(row["State"])
		terminal := strings.TrimSpace(row["Terminal / Station"])
		if state == "" || terminal == "" {
			continue
		}
		grouped[state] = append(grouped[state], terminal)
	}

	states := make([]string, 0, len(grouped))
	for state := range grouped {
		states = append(states, state)
	}
	slices.Sort(states)

	records := make([]BusStateRecord, 0, len(states))
	for _, state := range states {
		coords, ok := busStateCoords[state]
		if !ok {
			continue
		}
		terminals := grouped[state]
		sorted := slices.Clone(terminals)
		slices.Sort(sorted)
		records = append(records, BusStateRecord{
			State:           state,
			TerminalCount:   len(terminals),
			SampleTerminals: sorted[:min(5, len(sorted))],
			Latitude:        coords.Y,
			Longitude:       coords.X,
		})
	}

	slices.SortStableFunc(records, func(a, b BusStateRecord) int {
		return b.TerminalCount - a.TerminalCount
	})
	return records
}

// BuildMotorVehicleTrend parses (year, type, count) triples. The source
// export truncates the year header to "Yea"; accept either spelling. Rows
// with missing or non-numeric fields are skipped.
func BuildMotorVehicleTrend(rows []map[string]string) []VehicleTrendRecord {
	var tidy []VehicleTrendRecord
	for _, row := range rows {
		yearRaw := row["Yea"]
		if yearRaw == "" {
			yearRaw = row["Year"]
		}
		vehicleType := strings.TrimSpace(row["Type of vehicle"])
		valueRaw := row["Value"]
		if yearRaw == "" || vehicleType == "" || valueRaw == "" {
			continue
		}
		year, err := strconv.Atoi(strings.TrimSpace(yearRaw))
		if err != nil {
			continue
		}
		value, err := strconv.Atoi(strings.TrimSpace(valueRaw))
		if err != nil {
			continue
		}
		tidy = append(tidy, VehicleTrendRecord{Year: year, VehicleType: vehicleType, Count: value})
	}

	slices.SortFunc(tidy, func(a, b VehicleTrendRecord) int {
		if c := cmp.Compare(a.VehicleType, b.VehicleType); c != 0 {
			return c
		}
		return cmp.Compare(a.Year, b.Year)
	})
	return tidy
}

// ridershipDateFormats in the order tried. The log mixes US-style and
// day-first dates.
var ridershipDateFormats = []string{"01/02/2006", "02/01/2006"}

// BuildRailMonthlyRidership buckets daily ridership by (mode, year-month)
// and emits the rounded mean per bucket. Rows with unparseable dates and
// blank or non-numeric fields are dropped.
func BuildRailMonthlyRidership(rows []map[string]string) []RidershipRecord {
	type bucket struct {
		mode  string
		month string
	}
	type sums struct {
		total int
		count int
	}
	aggregates := make(map[bucket]sums)

	for _, row := range rows {
		dateRaw := strings.TrimSpace(row["date"])
		if dateRaw == "" {
			continue
		}

		var date time.Time
		var parsed bool
		for _, format := range ridershipDateFormats {
			if d, err := time.Parse(format, dateRaw); err == nil {
				date = d
				parsed = true
				break
			}
		}
		if !parsed {
			continue
		}
		month := date.Format("2006-01")

		for _, field := range railFields {
			valueRaw := strings.TrimSpace(strings.ReplaceAll(row[field.Field], ",", ""))
			if valueRaw == "" {
				continue
			}
			value, err := strconv.ParseFloat(valueRaw, 64)
			if err != nil {
				continue
			}
			key := bucket{mode: field.Label, month: month}
			agg := aggregates[key]
			agg.total += int(value)
			agg.count++
			aggregates[key] = agg
		}
	}

	tidy := make([]RidershipRecord, 0, len(aggregates))
	for key, agg := range aggregates {
		if agg.count == 0 {
			continue
		}
		tidy = append(tidy, RidershipRecord{
			Month:            key.month,
			Mode:             key.mode,
			AverageRidership: int(math.Round(float64(agg.total) / float64(agg.count))),
		})
	}

	slices.SortFunc(tidy, func(a, b RidershipRecord) int {
		if c := cmp.Compare(a.Mode, b.Mode); c != 0 {
			return c
		}
		return cmp.Compare(a.Month, b.Month)
	})
	return tidy
}

type TransportOpts struct {
	SourceDir string
	OutDir    string
}

type TransportSummary struct {
	BusStates        int `json:"bus_states"`
	VehicleRecords   int `json:"vehicle_records"`
	RidershipRecords int `json:"ridership_records"`
}

const vehiclesFilename = "2000 2021 Number of Cumulative Motor Vehicles Regi.csv"

// PrepareTransport runs the three independent aggregation pipelines and
// writes one JSON summary file each. A missing source file is fatal.
func PrepareTransport(opts *TransportOpts) (*TransportSummary, error) {
	if opts == nil {
		opts = &TransportOpts{}
	}
	sourceDir := opts.SourceDir
	if sourceDir == "" {
		sourceDir = "source"
	}
	outDir := opts.OutDir
	if outDir == "" {
		outDir = "data"
	}

	slog.Info(fmt.Sprintf("Preparing transport statistics from %s into %s", sourceDir, outDir))

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}

	busRows, err := loadCSV(resolveSource(sourceDir, "bus_domestic.csv"))
	if err != nil {
		return nil, err
	}
	busRecords := BuildStateBusCounts(busRows)
	if err := writeJSON(filepath.Join(outDir, "state_bus_counts.json"), busRecords); err != nil {
		return nil, err
	}

	vehicleRows, err := loadCSV(resolveSource(sourceDir, vehiclesFilename))
	if err != nil {
		return nil, err
	}
	vehicleRecords := BuildMotorVehicleTrend(vehicleRows)
	if err := writeJSON(filepath.Join(outDir, "motor_vehicles_trend.json"), vehicleRecords); err != nil {
		return nil, err
	}

	ridershipRows, err := loadCSV(resolveSource(sourceDir, "ridership_headline.csv"))
	if err != nil {
		return nil, err
	}
	ridershipRecords := BuildRailMonthlyRidership(ridershipRows)
	if err := writeJSON(filepath.Join(outDir, "rail_monthly_ridership.json"), ridershipRecords); err != nil {
		return nil, err
	}

	return &TransportSummary{
		BusStates:        len(busRecords),
		VehicleRecords:   len(vehicleRecords),
		RidershipRecords: len(ridershipRecords),
	}, nil
}

// resolveSource prefers sourceDir but falls back to the working directory,
// where some of the raw exports were originally checked in.
func resolveSource(sourceDir, name string) string {
	path := filepath.Join(sourceDir, name)
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return name
}
