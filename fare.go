package dataprep

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
)

var ErrEmptyMatrix = errors.New("fare matrix is empty")

// FareRecord is one tidy origin-destination fare observation.
type FareRecord struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Fare        float64 `json:"fare"`
}

// ReadFareMatrix pivots a wide fare matrix to tidy rows. The first header
// cell is ignored; the rest name destinations. Each body row names an origin
// in its first cell. Station order is origins in first-seen order followed by
// any destinations that only appear in the header. Blank and non-numeric
// cells are skipped: they mean "no fare defined", not an error. Self fares
// are kept as-is, including zero values.
func ReadFareMatrix(path string) ([]string, []FareRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("%s: %w", path, ErrEmptyMatrix)
	} else if err != nil {
		return nil, nil, err
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	destinations := make([]string, 0, len(header))
	for _, col := range header[1:] {
		destinations = append(destinations, strings.TrimSpace(col))
	}

	var stationOrder []string
	var records []FareRecord

	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, nil, err
		}
		if len(row) == 0 {
			continue
		}

		origin := strings.TrimSpace(row[0])
		if origin == "" {
			continue
		}
		if !slices.Contains(stationOrder, origin) {
			stationOrder = append(stationOrder, origin)
		}

		for i, dest := range destinations {
			if i+1 >= len(row) {
				break
			}
			value := strings.TrimSpace(row[i+1])
			if dest == "" || value == "" {
				continue
			}
			fare, err := strconv.ParseFloat(value, 64)
			if err != nil {
				// Malformed cell, no fare defined
				continue
			}
			records = append(records, FareRecord{Origin: origin, Destination: dest, Fare: fare})
		}
	}

	// Destinations that never appear as an origin still belong to the line
	for _, dest := range destinations {
		if dest != "" && !slices.Contains(stationOrder, dest) {
			stationOrder = append(stationOrder, dest)
		}
	}

	return stationOrder, records, nil
}
