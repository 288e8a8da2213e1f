package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/example/rocketsim/internal/core/flight"
	"github.com/example/rocketsim/internal/logging"
	"github.com/example/rocketsim/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockFlightJournal implements secondary.FlightJournal for testing.
type mockFlightJournal struct {
	mu         sync.Mutex
	snapshots  []*secondary.TelemetryRecord
	commands   []*secondary.CommandRecord
	recordErr  error
	commandErr error
	listErr    error
}

func newMockFlightJournal() *mockFlightJournal {
	return &mockFlightJournal{}
}

func (m *mockFlightJournal) RecordSnapshot(ctx context.Context, record *secondary.TelemetryRecord) error {
	if m.recordErr != nil {
		return m.recordErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots = append(m.snapshots, record)
	return nil
}

func (m *mockFlightJournal) ListSnapshots(ctx context.Context, filters secondary.TelemetryFilters) ([]*secondary.TelemetryRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*secondary.TelemetryRecord
	for _, r := range m.snapshots {
		if filters.FlightID != "" && r.FlightID != filters.FlightID {
			continue
		}
		out = append(out, r)
	}
	if filters.Limit > 0 && len(out) > filters.Limit {
		out = out[len(out)-filters.Limit:]
	}
	return out, nil
}

func (m *mockFlightJournal) RecordCommand(ctx context.Context, record *secondary.CommandRecord) error {
	if m.commandErr != nil {
		return m.commandErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	record.ExecutedAt = fmt.Sprintf("t%d", len(m.commands)+1)
	m.commands = append(m.commands, record)
	return nil
}

func (m *mockFlightJournal) ListCommands(ctx context.Context, flightID string) ([]*secondary.CommandRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*secondary.CommandRecord
	for _, r := range m.commands {
		if r.FlightID == flightID {
			out = append(out, r)
		}
	}
	return out, nil
}

// recordingObserver captures every snapshot it receives.
type recordingObserver struct {
	name   string
	states []flight.RocketState
	calls  *[]string
	err    error
}

func (o *recordingObserver) Update(ctx context.Context, state flight.RocketState) error {
	o.states = append(o.states, state)
	if o.calls != nil {
		*o.calls = append(*o.calls, o.name)
	}
	return o.err
}

func (o *recordingObserver) last() flight.RocketState {
	return o.states[len(o.states)-1]
}

// stubCommand is a Command with fixed behaviour.
type stubCommand struct {
	desc     string
	allowed  bool
	execErr  error
	executed int
}

func (c *stubCommand) Execute(ctx context.Context) error {
	c.executed++
	return c.execErr
}

func (c *stubCommand) CanExecute() bool { return c.allowed }
func (c *stubCommand) Description() string { return c.desc }

type stubMetrics struct {
	values map[string]float64
	err    error
}

func (m stubMetrics) Snapshot() (map[string]float64, error) { return m.values, m.err }

type stubLogs []logging.Entry

func (l stubLogs) Entries() []logging.Entry { return l }

var errObserver = errors.New("display offline")

// newTestSystem builds a rocket with no delays, no faults and a logger whose
// history can be inspected.
func newTestSystem(faults FaultInjector) (*RocketSystem, *logging.History) {
	logger, history := newTestLogger()
	return NewRocketSystem(RocketSystemOptions{Logger: logger, Faults: faults}), history
}

func newTestLogger() (*slog.Logger, *logging.History) {
	logger, history, err := logging.New(discard{}, logging.Options{Level: "debug"})
	if err != nil {
		panic(err)
	}
	return logger, history
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
