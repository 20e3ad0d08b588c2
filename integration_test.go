package dataprep

import (
	"encoding/json"
	"fmt"
	"os"
	"testing"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/geojson"
)

func TestPrepareAmpang(t *testing.T) {
	outDir := testTempdir(t)

	summary, err := PrepareAmpang(&AmpangOpts{
		FarePath:     "./sample_data/Fare.csv",
		StationsPath: "./sample_data/lrt-malaysia.csv",
		OutDir:       outDir,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, summary.StationsInMatrix)
	assert.Equal(t, 4, summary.MatchedLocations)
	assert.Equal(t, []string{"Chan Sow Lin"}, summary.Unmatched)
	assert.Equal(t, 13, summary.FareRecords)

	goldenFiles := []string{
		"fare_long.json",
		"fare_long.csv",
		"ampang_station_locations.json",
		"ampang_route.json",
		"ampang_station_list.json",
	}
	for _, name := range goldenFiles {
		t.Run(name, func(t *testing.T) {
			assertFileEqual(t, "./sample_data/golden/"+name, outDir+"/"+name)
		})
	}
}

func TestPrepareAmpangRouteGeoJSON(t *testing.T) {
	outDir := testTempdir(t)

	_, err := PrepareAmpang(&AmpangOpts{
		FarePath:     "./sample_data/Fare.csv",
		StationsPath: "./sample_data/lrt-malaysia.csv",
		OutDir:       outDir,
	})
	require.NoError(t, err)

	raw, err := os.ReadFile(outDir + "/ampang_route.geojson")
	require.NoError(t, err)

	route, err := geojson.Parse(string(raw), &geojson.ParseOptions{RequireValid: true})
	require.NoError(t, err)
	assert.Equal(t, 4, route.NumPoints())
}

func TestPrepareAmpangWithDatabase(t *testing.T) {
	outDir := testTempdir(t)

	_, err := PrepareAmpang(&AmpangOpts{
		FarePath:     "./sample_data/Fare.csv",
		StationsPath: "./sample_data/lrt-malaysia.csv",
		OutDir:       outDir,
		SQLitePath:   outDir + "/ampang.db",
	})
	require.NoError(t, err)

	_, err = os.Stat(outDir + "/ampang.db")
	require.NoError(t, err)
}

func TestPrepareAmpangMissingFare(t *testing.T) {
	outDir := testTempdir(t)

	_, err := PrepareAmpang(&AmpangOpts{
		FarePath:     outDir + "/no-such-file.csv",
		StationsPath: "./sample_data/lrt-malaysia.csv",
		OutDir:       outDir,
	})
	require.Error(t, err)
}

func TestPrepareTransport(t *testing.T) {
	outDir := testTempdir(t)

	summary, err := PrepareTransport(&TransportOpts{
		SourceDir: "./sample_data",
		OutDir:    outDir,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.BusStates)
	assert.Equal(t, 3, summary.VehicleRecords)
	assert.Equal(t, 4, summary.RidershipRecords)

	var bus []BusStateRecord
	readJSONFile(t, outDir+"/state_bus_counts.json", &bus)
	require.Len(t, bus, 2)
	assert.Equal(t, "Johor", bus[0].State)
	assert.Equal(t, 3, bus[0].TerminalCount)

	var vehicles []VehicleTrendRecord
	readJSONFile(t, outDir+"/motor_vehicles_trend.json", &vehicles)
	assert.Equal(t, VehicleTrendRecord{Year: 2019, VehicleType: "Cars", Count: 10000000}, vehicles[0])

	var ridership []RidershipRecord
	readJSONFile(t, outDir+"/rail_monthly_ridership.json", &ridership)
	assert.Equal(t, RidershipRecord{Month: "2022-01", Mode: "LRT Ampang", AverageRidership: 1100}, ridership[0])
}

func TestPrepareTransportMissingSource(t *testing.T) {
	outDir := testTempdir(t)

	_, err := PrepareTransport(&TransportOpts{
		SourceDir: outDir, // empty directory, no fallbacks present
		OutDir:    outDir,
	})
	require.Error(t, err)
}

func assertFileEqual(t *testing.T, expected, actual string) {
	t.Helper()

	want, err := os.ReadFile(expected)
	require.NoError(t, err)
	got, err := os.ReadFile(actual)
	require.NoError(t, err)

	edits := myers.ComputeEdits(span.URIFromPath(actual), string(want), string(got))
	if len(edits) > 0 {
		t.Errorf("%s != %s\n%s", expected, actual,
			gotextdiff.ToUnified("expected/"+expected, "actual/"+actual, string(want), edits))
	}
}

func readJSONFile(t *testing.T, path string, out any) {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

func testTempdir(t *testing.T) string {
	dir, err := os.MkdirTemp("", "")
	require.NoError(t, err)
	t.Cleanup(func() {
		if t.Failed() {
			fmt.Println("Preserving tempdir after failed test", dir)
		} else {
			_ = os.RemoveAll(dir)
		}
	})
	return dir
}
