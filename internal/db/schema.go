package db

import "database/sql"

// SchemaSQL is the complete schema of the flight journal.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. Tests load it via
// GetSchemaSQL() instead of declaring their own tables.
const SchemaSQL = `
-- Telemetry snapshots, one row per observer notification
CREATE TABLE IF NOT EXISTS telemetry (
	flight_id TEXT NOT NULL,
	sequence INTEGER NOT NULL,
	stage INTEGER NOT NULL CHECK(stage >= 0),
	fuel REAL NOT NULL CHECK(fuel >= 0 AND fuel <= 100),
	altitude REAL NOT NULL CHECK(altitude >= 0),
	speed REAL NOT NULL CHECK(speed >= 0),
	status TEXT NOT NULL CHECK(status IN ('PRE_LAUNCH', 'CHECKS_IN_PROGRESS', 'READY_TO_LAUNCH', 'IN_FLIGHT', 'ORBIT_ACHIEVED', 'MISSION_FAILED')),
	recorded_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (flight_id, sequence)
);

CREATE INDEX IF NOT EXISTS idx_telemetry_status ON telemetry(flight_id, status);

-- Successfully executed commands
CREATE TABLE IF NOT EXISTS commands (
	id TEXT PRIMARY KEY,
	flight_id TEXT NOT NULL,
	position INTEGER NOT NULL,
	description TEXT NOT NULL,
	executed_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	UNIQUE(flight_id, position)
);
`

// InitSchema creates the database schema
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(SchemaSQL)
	return err
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
