package app

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/example/rocketsim/internal/core/flight"
	"github.com/example/rocketsim/internal/ports/secondary"
)

// PreLaunchSubsystems are checked in order before every launch.
var PreLaunchSubsystems = []string{
	"Propulsion",
	"Navigation",
	"Guidance",
	"Communications",
	"Life Support",
}

// FaultInjector decides whether a subsystem check hits a transient fault.
// Faults are always recovered by an automatic retry.
type FaultInjector func(subsystem string) bool

// RandomFaults injects faults with the given probability. A nil rng uses the
// global source.
func RandomFaults(probability float64, rng *rand.Rand) FaultInjector {
	return func(string) bool {
		if rng != nil {
			return rng.Float64() < probability
		}
		return rand.Float64() < probability
	}
}

// NoFaults never injects a fault.
func NoFaults() FaultInjector {
	return func(string) bool { return false }
}

// RocketSystemOptions configures a RocketSystem.
type RocketSystemOptions struct {
	Logger *slog.Logger
	Faults FaultInjector
	// CheckDelay is the pause before each subsystem check.
	CheckDelay time.Duration
}

// RocketSystem owns the rocket state, the active stage and the observers.
// It is not safe for concurrent use.
type RocketSystem struct {
	state      flight.RocketState
	stage      flight.StageStrategy
	observers  []secondary.StateObserver
	logger     *slog.Logger
	faults     FaultInjector
	checkDelay time.Duration
}

// NewRocketSystem creates a rocket on the pad.
func NewRocketSystem(opts RocketSystemOptions) *RocketSystem {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	faults := opts.Faults
	if faults == nil {
		faults = NoFaults()
	}
	return &RocketSystem{
		state:      flight.InitialState(),
		logger:     logger,
		faults:     faults,
		checkDelay: opts.CheckDelay,
	}
}

// State returns a snapshot of the current state.
func (s *RocketSystem) State() flight.RocketState {
	return s.state
}

// ActiveStage returns the active stage strategy, or nil before launch.
func (s *RocketSystem) ActiveStage() flight.StageStrategy {
	return s.stage
}

// AddObserver registers an observer. Observers are notified in registration
// order; registering the same observer twice notifies it twice.
func (s *RocketSystem) AddObserver(o secondary.StateObserver) {
	s.observers = append(s.observers, o)
}

// PerformPreLaunchChecks runs the subsystem checks and readies the rocket.
func (s *RocketSystem) PerformPreLaunchChecks(ctx context.Context) error {
	if err := flight.CanStartChecks(s.state.Status).InvalidState("pre-launch checks"); err != nil {
		return err
	}

	s.state.Status = flight.StatusChecksInProgress
	s.logger.Info("pre-launch checks started", "subsystems", len(PreLaunchSubsystems))

	for _, subsystem := range PreLaunchSubsystems {
		if err := sleep(ctx, s.checkDelay); err != nil {
			s.logger.Error("pre-launch checks interrupted", "subsystem", subsystem, "error", err)
			return fmt.Errorf("pre-launch check of %s: %w", subsystem, err)
		}
		if s.faults(subsystem) {
			s.logger.Warn("transient fault detected, retrying", "subsystem", subsystem)
			s.logger.Info("retry succeeded", "subsystem", subsystem)
		}
		s.logger.Info("subsystem check passed", "subsystem", subsystem)
	}

	s.state.Status = flight.StatusReadyToLaunch
	s.logger.Info("all systems go", "status", s.state.Status)

	if err := s.notify(ctx); err != nil {
		s.logger.Error("pre-launch checks failed", "error", err)
		return err
	}
	return nil
}

// Launch lifts off with the first stage.
func (s *RocketSystem) Launch(ctx context.Context) error {
	if err := flight.CanLaunch(s.state.Status).InvalidState("launch"); err != nil {
		return err
	}

	stage, err := flight.CreateStage(1)
	if err != nil {
		return fmt.Errorf("select first stage: %w", err)
	}

	s.state.Stage = stage.Number()
	s.state.Status = flight.StatusInFlight
	s.stage = stage
	s.logger.Info("liftoff", "stage", stage.Name())

	return s.notify(ctx)
}

// AdvanceTime runs up to seconds one-second updates, stopping at the first
// halt (orbit or fuel exhaustion).
func (s *RocketSystem) AdvanceTime(ctx context.Context, seconds int) error {
	if err := flight.CanAdvanceTime(s.state.Status).InvalidState("advance time"); err != nil {
		return err
	}

	for i := 0; i < seconds; i++ {
		halted, err := s.updateFlightParameters(ctx)
		if err != nil {
			return err
		}
		if halted {
			return nil
		}
	}
	return nil
}

// updateFlightParameters applies one second of flight and notifies observers.
func (s *RocketSystem) updateFlightParameters(ctx context.Context) (bool, error) {
	next, outcome := flight.Step(s.state, s.stage)
	s.state = next

	switch outcome {
	case flight.StepFuelExhausted:
		s.logger.Error("mission failed: insufficient fuel", "stage", next.Stage, "altitude_km", next.Altitude)
		return true, s.notify(ctx)

	case flight.StepOrbitAchieved:
		s.logger.Info("orbit achieved", "altitude_km", next.Altitude, "fuel", next.Fuel)
		return true, s.notify(ctx)

	case flight.StepSeparated:
		stage, err := flight.CreateStage(next.Stage)
		if err != nil {
			s.logger.Error("stage separation failed", "stage", next.Stage, "error", err)
			return true, fmt.Errorf("stage separation: %w", err)
		}
		s.logger.Info("stage separation", "from", s.stage.Name(), "to", stage.Name(), "fuel", next.Fuel)
		s.stage = stage
	}

	return false, s.notify(ctx)
}

// notify fans the current snapshot out to every observer. The first failing
// observer stops the fan-out.
func (s *RocketSystem) notify(ctx context.Context) error {
	snapshot := s.state
	for _, o := range s.observers {
		if err := o.Update(ctx, snapshot); err != nil {
			return fmt.Errorf("observer update: %w", err)
		}
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
