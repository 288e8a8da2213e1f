package app

import (
	"context"

	"github.com/example/rocketsim/internal/core/flight"
	"github.com/example/rocketsim/internal/ports/secondary"
)

// FlightRecorder journals every notified snapshot for one flight.
type FlightRecorder struct {
	journal  secondary.FlightJournal
	flightID string
	sequence int
}

// NewFlightRecorder creates a recorder writing under flightID.
func NewFlightRecorder(journal secondary.FlightJournal, flightID string) *FlightRecorder {
	return &FlightRecorder{journal: journal, flightID: flightID}
}

// Update implements secondary.StateObserver.
func (r *FlightRecorder) Update(ctx context.Context, state flight.RocketState) error {
	r.sequence++
	return r.journal.RecordSnapshot(ctx, &secondary.TelemetryRecord{
		FlightID: r.flightID,
		Sequence: r.sequence,
		Stage:    state.Stage,
		Fuel:     state.Fuel,
		Altitude: state.Altitude,
		Speed:    state.Speed,
		Status:   string(state.Status),
	})
}

var _ secondary.StateObserver = (*FlightRecorder)(nil)
