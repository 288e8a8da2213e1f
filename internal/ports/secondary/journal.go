package secondary

import "context"

// FlightJournal defines the secondary port for the in-process flight journal.
// Journal entries are immutable - no Update operations.
type FlightJournal interface {
	// RecordSnapshot appends a telemetry snapshot.
	RecordSnapshot(ctx context.Context, record *TelemetryRecord) error

	// ListSnapshots retrieves the most recent snapshots matching the filters, newest last.
	ListSnapshots(ctx context.Context, filters TelemetryFilters) ([]*TelemetryRecord, error)

	// RecordCommand appends an executed command.
	RecordCommand(ctx context.Context, record *CommandRecord) error

	// ListCommands retrieves executed commands for a flight in execution order.
	ListCommands(ctx context.Context, flightID string) ([]*CommandRecord, error)
}

// TelemetryRecord represents a telemetry snapshot as stored in the journal.
type TelemetryRecord struct {
	FlightID   string
	Sequence   int
	Stage      int
	Fuel       float64
	Altitude   float64
	Speed      float64
	Status     string
	RecordedAt string
}

// TelemetryFilters contains filter options for querying snapshots.
type TelemetryFilters struct {
	FlightID string
	Status   string
	Limit    int
}

// CommandRecord represents an executed command as stored in the journal.
type CommandRecord struct {
	ID          string
	FlightID    string
	Description string
	ExecutedAt  string
}
