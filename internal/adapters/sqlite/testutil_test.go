// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() to ensure tests run against
// the authoritative schema, preventing drift between test and production.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/rocketsim/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	testDB.SetMaxOpenConns(1)

	// Use the authoritative schema from schema.go
	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedTelemetry inserts n in-flight snapshots for a flight, sequence 1..n.
func seedTelemetry(t *testing.T, db *sql.DB, flightID string, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		_, err := db.Exec(
			"INSERT INTO telemetry (flight_id, sequence, stage, fuel, altitude, speed, status) VALUES (?, ?, 1, ?, ?, ?, 'IN_FLIGHT')",
			flightID, i, 100-float64(i), 10*float64(i), 1000*float64(i),
		)
		if err != nil {
			t.Fatalf("failed to seed telemetry: %v", err)
		}
	}
}
