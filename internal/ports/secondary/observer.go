// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"

	"github.com/example/rocketsim/internal/core/flight"
)

// StateObserver receives a snapshot after every state-affecting transition.
// Returning an error aborts the remaining notifications and fails the
// operation that triggered them.
type StateObserver interface {
	Update(ctx context.Context, state flight.RocketState) error
}

// StateObserverFunc adapts a function to StateObserver.
type StateObserverFunc func(ctx context.Context, state flight.RocketState) error

// Update calls f.
func (f StateObserverFunc) Update(ctx context.Context, state flight.RocketState) error {
	return f(ctx, state)
}
