// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/rocketsim/internal/ports/secondary"
)

// FlightJournal implements secondary.FlightJournal with SQLite.
type FlightJournal struct {
	db *sql.DB
	// retain caps telemetry rows per flight; 0 keeps everything.
	retain int
}

// NewFlightJournal creates a new SQLite flight journal.
func NewFlightJournal(db *sql.DB, retain int) *FlightJournal {
	return &FlightJournal{db: db, retain: retain}
}

// RecordSnapshot persists a telemetry snapshot.
func (j *FlightJournal) RecordSnapshot(ctx context.Context, record *secondary.TelemetryRecord) error {
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO telemetry (flight_id, sequence, stage, fuel, altitude, speed, status) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.FlightID,
		record.Sequence,
		record.Stage,
		record.Fuel,
		record.Altitude,
		record.Speed,
		record.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to record telemetry: %w", err)
	}

	if j.retain > 0 {
		_, err = j.db.ExecContext(ctx,
			`DELETE FROM telemetry WHERE flight_id = ? AND sequence <= ?`,
			record.FlightID,
			record.Sequence-j.retain,
		)
		if err != nil {
			return fmt.Errorf("failed to prune telemetry: %w", err)
		}
	}

	return nil
}

// ListSnapshots retrieves the most recent snapshots matching the filters, oldest first.
func (j *FlightJournal) ListSnapshots(ctx context.Context, filters secondary.TelemetryFilters) ([]*secondary.TelemetryRecord, error) {
	query := `SELECT flight_id, sequence, stage, fuel, altitude, speed, status, recorded_at FROM telemetry WHERE 1=1`
	args := []any{}

	if filters.FlightID != "" {
		query += " AND flight_id = ?"
		args = append(args, filters.FlightID)
	}
	if filters.Status != "" {
		query += " AND status = ?"
		args = append(args, filters.Status)
	}

	query += " ORDER BY sequence DESC"

	if filters.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filters.Limit)
	}

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list telemetry: %w", err)
	}
	defer rows.Close()

	var records []*secondary.TelemetryRecord
	for rows.Next() {
		var recordedAt sql.NullString
		r := &secondary.TelemetryRecord{}
		if err := rows.Scan(&r.FlightID, &r.Sequence, &r.Stage, &r.Fuel, &r.Altitude, &r.Speed, &r.Status, &recordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan telemetry: %w", err)
		}
		r.RecordedAt = recordedAt.String
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Newest rows were selected; hand them back in flight order.
	for i, k := 0, len(records)-1; i < k; i, k = i+1, k-1 {
		records[i], records[k] = records[k], records[i]
	}

	return records, nil
}

// RecordCommand persists an executed command at the end of the flight's sequence.
func (j *FlightJournal) RecordCommand(ctx context.Context, record *secondary.CommandRecord) error {
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO commands (id, flight_id, position, description)
		 VALUES (?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM commands WHERE flight_id = ?), ?)`,
		record.ID,
		record.FlightID,
		record.FlightID,
		record.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to record command: %w", err)
	}
	return nil
}

// ListCommands retrieves executed commands for a flight in execution order.
func (j *FlightJournal) ListCommands(ctx context.Context, flightID string) ([]*secondary.CommandRecord, error) {
	rows, err := j.db.QueryContext(ctx,
		`SELECT id, flight_id, description, executed_at FROM commands WHERE flight_id = ? ORDER BY position`,
		flightID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list commands: %w", err)
	}
	defer rows.Close()

	var records []*secondary.CommandRecord
	for rows.Next() {
		var executedAt sql.NullString
		r := &secondary.CommandRecord{}
		if err := rows.Scan(&r.ID, &r.FlightID, &r.Description, &executedAt); err != nil {
			return nil, fmt.Errorf("failed to scan command: %w", err)
		}
		r.ExecutedAt = executedAt.String
		records = append(records, r)
	}
	return records, rows.Err()
}

// Ensure FlightJournal implements the interface
var _ secondary.FlightJournal = (*FlightJournal)(nil)
