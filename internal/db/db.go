package db

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// MemoryDSN opens a private in-memory database. Nothing outlives the process.
const MemoryDSN = ":memory:"

// Open returns an initialized in-memory journal database.
//
// Each sqlite3 connection to :memory: is its own database, so the pool is
// pinned to a single connection.
func Open() (*sql.DB, error) {
	database, err := sql.Open("sqlite3", MemoryDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	database.SetMaxOpenConns(1)
	database.SetMaxIdleConns(1)
	database.SetConnMaxLifetime(0)

	if err := InitSchema(database); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return database, nil
}
