package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/example/rocketsim/internal/core/command"
	"github.com/example/rocketsim/internal/core/flight"
	"github.com/example/rocketsim/internal/logging"
	"github.com/example/rocketsim/internal/ports/primary"
	"github.com/example/rocketsim/internal/ports/secondary"
)

// MetricsSource provides the current flight gauges.
type MetricsSource interface {
	Snapshot() (map[string]float64, error)
}

// LogSource provides the log history.
type LogSource interface {
	Entries() []logging.Entry
}

// SimulatorServiceImpl implements the SimulatorService interface.
type SimulatorServiceImpl struct {
	system   *RocketSystem
	invoker  *CommandInvoker
	journal  secondary.FlightJournal
	metrics  MetricsSource
	logs     LogSource
	flightID string
	logger   *slog.Logger

	// commandIDs[i] is the journal ID of invoker.History()[i].
	commandIDs []string
}

// NewSimulatorService creates a new SimulatorService with injected dependencies.
func NewSimulatorService(
	system *RocketSystem,
	invoker *CommandInvoker,
	journal secondary.FlightJournal,
	metrics MetricsSource,
	logs LogSource,
	flightID string,
	logger *slog.Logger,
) *SimulatorServiceImpl {
	return &SimulatorServiceImpl{
		system:   system,
		invoker:  invoker,
		journal:  journal,
		metrics:  metrics,
		logs:     logs,
		flightID: flightID,
		logger:   logger,
	}
}

// Execute runs a rocket command through the invoker and journals it.
func (s *SimulatorServiceImpl) Execute(ctx context.Context, req command.Request) error {
	if !req.Mutates() {
		return flight.NewInvalidCommandError(string(req.Kind), "not a rocket command")
	}

	cmd, err := NewCommand(s.system, req)
	if err != nil {
		return err
	}

	if err := s.invoker.ExecuteCommand(ctx, cmd); err != nil {
		return err
	}

	record := &secondary.CommandRecord{
		ID:          uuid.NewString(),
		FlightID:    s.flightID,
		Description: cmd.Description(),
	}
	s.commandIDs = append(s.commandIDs, record.ID)

	// The command already ran; a journal failure only loses its timestamp.
	if err := s.journal.RecordCommand(ctx, record); err != nil {
		s.logger.Warn("failed to journal command", "id", record.ID, "command", record.Description, "error", err)
		return nil
	}
	s.logger.Debug("command journaled", "id", record.ID, "command", record.Description)
	return nil
}

// State returns the current rocket snapshot.
func (s *SimulatorServiceImpl) State() flight.RocketState {
	return s.system.State()
}

// FlightID identifies the current flight in the journal.
func (s *SimulatorServiceImpl) FlightID() string {
	return s.flightID
}

// History lists the invoker's executed commands in execution order, with
// journal timestamps where the journal has them.
func (s *SimulatorServiceImpl) History(ctx context.Context) ([]primary.CommandEntry, error) {
	executedAt := make(map[string]string)
	records, err := s.journal.ListCommands(ctx, s.flightID)
	if err != nil {
		s.logger.Warn("failed to list journaled commands", "error", err)
	}
	for _, r := range records {
		executedAt[r.ID] = r.ExecutedAt
	}

	commands := s.invoker.History()
	entries := make([]primary.CommandEntry, len(commands))
	for i, cmd := range commands {
		entries[i] = primary.CommandEntry{Description: cmd.Description()}
		if i < len(s.commandIDs) {
			entries[i].ID = s.commandIDs[i]
			entries[i].ExecutedAt = executedAt[entries[i].ID]
		}
	}
	return entries, nil
}

// Telemetry lists the most recent journal snapshots, oldest first.
func (s *SimulatorServiceImpl) Telemetry(ctx context.Context, limit int) ([]*primary.TelemetryEntry, error) {
	records, err := s.journal.ListSnapshots(ctx, secondary.TelemetryFilters{
		FlightID: s.flightID,
		Limit:    limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list telemetry: %w", err)
	}

	entries := make([]*primary.TelemetryEntry, len(records))
	for i, r := range records {
		entries[i] = s.recordToTelemetryEntry(r)
	}
	return entries, nil
}

// Metrics returns the current flight gauges.
func (s *SimulatorServiceImpl) Metrics() (map[string]float64, error) {
	if s.metrics == nil {
		return map[string]float64{}, nil
	}
	return s.metrics.Snapshot()
}

// Logs returns the log history in emission order.
func (s *SimulatorServiceImpl) Logs() []primary.LogEntry {
	if s.logs == nil {
		return nil
	}
	entries := s.logs.Entries()
	out := make([]primary.LogEntry, len(entries))
	for i, e := range entries {
		msg := e.Message
		if e.Attrs != "" {
			msg += " " + e.Attrs
		}
		out[i] = primary.LogEntry{
			Time:    e.Time.Format(time.TimeOnly),
			Level:   e.Level.String(),
			Message: msg,
		}
	}
	return out
}

// Helper methods

func (s *SimulatorServiceImpl) recordToTelemetryEntry(r *secondary.TelemetryRecord) *primary.TelemetryEntry {
	return &primary.TelemetryEntry{
		Sequence:   r.Sequence,
		Stage:      r.Stage,
		Fuel:       r.Fuel,
		Altitude:   r.Altitude,
		Speed:      r.Speed,
		Status:     r.Status,
		RecordedAt: r.RecordedAt,
	}
}

// Ensure SimulatorServiceImpl implements the interface
var _ primary.SimulatorService = (*SimulatorServiceImpl)(nil)
