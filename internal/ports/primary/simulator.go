// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the outside world drives the application.
package primary

import (
	"context"

	"github.com/example/rocketsim/internal/core/command"
	"github.com/example/rocketsim/internal/core/flight"
)

// SimulatorService defines the primary port for driving a simulated launch.
type SimulatorService interface {
	// Execute runs a rocket-driving request (start_checks, launch, fast_forward)
	// through the command invoker.
	Execute(ctx context.Context, req command.Request) error

	// State returns the current rocket snapshot.
	State() flight.RocketState

	// FlightID identifies the current flight in the journal.
	FlightID() string

	// History lists successfully executed commands in execution order.
	History(ctx context.Context) ([]CommandEntry, error)

	// Telemetry lists the most recent journal snapshots, oldest first.
	Telemetry(ctx context.Context, limit int) ([]*TelemetryEntry, error)

	// Metrics returns the current flight gauges keyed by metric name.
	Metrics() (map[string]float64, error)

	// Logs returns the log history in emission order.
	Logs() []LogEntry
}

// CommandEntry is an executed command at the port boundary.
type CommandEntry struct {
	ID          string
	Description string
	ExecutedAt  string
}

// TelemetryEntry is a journal snapshot at the port boundary.
type TelemetryEntry struct {
	Sequence   int
	Stage      int
	Fuel       float64
	Altitude   float64
	Speed      float64
	Status     string
	RecordedAt string
}

// LogEntry is a log history line at the port boundary.
type LogEntry struct {
	Time    string
	Level   string
	Message string
}
