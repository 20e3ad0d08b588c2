package dataprep

import (
	"testing"

	"crawshaw.io/sqlite"
	"crawshaw.io/sqlite/sqlitex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDatabase(t *testing.T) {
	outDir := testTempdir(t)
	dbPath := outDir + "/ampang.db"

	fares := []FareRecord{
		{Origin: "KLCC", Destination: "Ampang Park", Fare: 1.2},
		{Origin: "KLCC", Destination: "KLCC", Fare: 0},
	}
	locations := []StationLocation{
		{Station: "KLCC", Order: 1, Latitude: 3.1588, Longitude: 101.7133},
	}

	require.NoError(t, WriteDatabase(dbPath, fares, locations))

	conn, err := sqlite.OpenConn(dbPath, sqlite.SQLITE_OPEN_READONLY)
	require.NoError(t, err)
	defer func() { _ = conn.Close() }()

	var count int
	err = sqlitex.Exec(conn, "SELECT count(*) AS count FROM fare_long", func(stmt *sqlite.Stmt) error {
		count = int(stmt.GetInt64("count"))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var fare float64
	err = sqlitex.Exec(conn, "SELECT fare FROM fare_long WHERE destination = ?", func(stmt *sqlite.Stmt) error {
		fare = stmt.GetFloat("fare")
		return nil
	}, "Ampang Park")
	require.NoError(t, err)
	assert.Equal(t, 1.2, fare)

	var order int64
	err = sqlitex.Exec(conn, `SELECT "order" FROM station_locations WHERE station = ?`, func(stmt *sqlite.Stmt) error {
		order = stmt.GetInt64("order")
		return nil
	}, "KLCC")
	require.NoError(t, err)
	assert.Equal(t, int64(1), order)
}

func TestWriteDatabaseReplacesExisting(t *testing.T) {
	outDir := testTempdir(t)
	dbPath := outDir + "/ampang.db"

	require.NoError(t, WriteDatabase(dbPath, []FareRecord{{Origin: "A", Destination: "B", Fare: 1}}, nil))
	require.NoError(t, WriteDatabase(dbPath, nil, nil))

	conn, err := sqlite.OpenConn(dbPath, sqlite.SQLITE_OPEN_READONLY)
	require.NoError(t, err)
	defer func() { _ = conn.Close() }()

	var count int
	err = sqlitex.Exec(conn, "SELECT count(*) AS count FROM fare_long", func(stmt *sqlite.Stmt) error {
		count = int(stmt.GetInt64("count"))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
