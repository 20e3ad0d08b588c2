package dataprep

import (
	"crawshaw.io/sqlite"
	"crawshaw.io/sqlite/sqlitex"
	"errors"
	"fmt"
	"log/slog"
	"os"
)

func sqlitexNoop(stmt *sqlite.Stmt) error { return nil }

var databasePragmas = map[string]string{
	"synchronous": "OFF",
}

// WriteDatabase writes the tidy fare table and matched station locations to
// a fresh SQLite database for ad-hoc querying. Any existing file at path is
// replaced.
func WriteDatabase(path string, fares []FareRecord, locations []StationLocation) error {
	if path == "" {
		panic("Missing path")
	}

	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	db, err := sqlite.OpenConn(path, 0)
	if err != nil {
		return err
	}
	defer func() {
		if db != nil {
			_ = db.Close()
		}
	}()

	for pragma, value := range databasePragmas {
		err = sqlitex.Exec(db, "PRAGMA "+pragma+" = "+value, sqlitexNoop)
		if err != nil {
			return err
		}
	}

	if err := sqlitex.ExecTransient(db, "CREATE TABLE fare_long (origin TEXT, destination TEXT, fare REAL)", sqlitexNoop); err != nil {
		return err
	}
	if err := sqlitex.ExecTransient(db, `CREATE TABLE station_locations (station TEXT, "order" INTEGER, latitude REAL, longitude REAL)`, sqlitexNoop); err != nil {
		return err
	}

	if err := insertFares(db, fares); err != nil {
		return err
	}
	if err := insertLocations(db, locations); err != nil {
		return err
	}

	err = db.Close()
	db = nil
	if err != nil {
		return err
	}

	slog.Info(fmt.Sprintf("Wrote %s", path))
	return nil
}

func insertFares(db *sqlite.Conn, fares []FareRecord) error {
	stmt, err := db.Prepare("INSERT INTO fare_long (origin, destination, fare) VALUES (?1, ?2, ?3)")
	if err != nil {
		return err
	}
	for _, rec := range fares {
		if err := stmt.Reset(); err != nil {
			return err
		}
		if err := stmt.ClearBindings(); err != nil {
			return err
		}
		stmt.BindText(1, rec.Origin)
		stmt.BindText(2, rec.Destination)
		stmt.BindFloat(3, rec.Fare)
		if _, err := stmt.Step(); err != nil {
			return err
		}
	}
	slog.Info(fmt.Sprintf("Wrote %d fare rows", len(fares)))
	return nil
}

func insertLocations(db *sqlite.Conn, locations []StationLocation) error {
	stmt, err := db.Prepare(`INSERT INTO station_locations (station, "order", latitude, longitude) VALUES (?1, ?2, ?3, ?4)`)
	if err != nil {
		return err
	}
	for _, loc := range locations {
		if err := stmt.Reset(); err != nil {
			return err
		}
		if err := stmt.ClearBindings(); err != nil {
			return err
		}
		stmt.BindText(1, loc.Station)
		stmt.BindInt64(2, int64(loc.Order))
		stmt.BindFloat(3, loc.Latitude)
		stmt.BindFloat(4, loc.Longitude)
		if _, err := stmt.Step(); err != nil {
			return err
		}
	}
	slog.Info(fmt.Sprintf("Wrote %d station rows", len(locations)))
	return nil
}
