package app

import (
	"context"
	"fmt"

	"github.com/example/rocketsim/internal/core/command"
	"github.com/example/rocketsim/internal/core/flight"
)

// Command is a guarded operation on the rocket.
type Command interface {
	Execute(ctx context.Context) error
	CanExecute() bool
	Description() string
}

// guarded is implemented by commands that can explain a failed precondition.
type guarded interface {
	Guard() flight.GuardResult
}

// StartChecksCommand runs the pre-launch checks.
type StartChecksCommand struct {
	system *RocketSystem
}

// NewStartChecksCommand creates a StartChecksCommand.
func NewStartChecksCommand(system *RocketSystem) *StartChecksCommand {
	return &StartChecksCommand{system: system}
}

func (c *StartChecksCommand) Execute(ctx context.Context) error {
	return c.system.PerformPreLaunchChecks(ctx)
}

func (c *StartChecksCommand) Guard() flight.GuardResult {
	return flight.CanStartChecks(c.system.State().Status)
}

func (c *StartChecksCommand) CanExecute() bool { return c.Guard().Allowed }

func (c *StartChecksCommand) Description() string { return "start pre-launch checks" }

// LaunchCommand lifts off.
type LaunchCommand struct {
	system *RocketSystem
}

// NewLaunchCommand creates a LaunchCommand.
func NewLaunchCommand(system *RocketSystem) *LaunchCommand {
	return &LaunchCommand{system: system}
}

func (c *LaunchCommand) Execute(ctx context.Context) error {
	return c.system.Launch(ctx)
}

func (c *LaunchCommand) Guard() flight.GuardResult {
	return flight.CanLaunch(c.system.State().Status)
}

func (c *LaunchCommand) CanExecute() bool { return c.Guard().Allowed }

func (c *LaunchCommand) Description() string { return "launch" }

// FastForwardCommand advances the flight.
type FastForwardCommand struct {
	system  *RocketSystem
	seconds int
}

// NewFastForwardCommand creates a FastForwardCommand.
func NewFastForwardCommand(system *RocketSystem, seconds int) *FastForwardCommand {
	return &FastForwardCommand{system: system, seconds: seconds}
}

func (c *FastForwardCommand) Execute(ctx context.Context) error {
	return c.system.AdvanceTime(ctx, c.seconds)
}

func (c *FastForwardCommand) Guard() flight.GuardResult {
	if c.seconds <= 0 {
		return flight.GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("fast forward needs a positive duration (got %d)", c.seconds),
		}
	}
	return flight.CanAdvanceTime(c.system.State().Status)
}

func (c *FastForwardCommand) CanExecute() bool { return c.Guard().Allowed }

func (c *FastForwardCommand) Description() string {
	return fmt.Sprintf("fast forward %ds", c.seconds)
}

// NewCommand maps a parsed request to its command.
func NewCommand(system *RocketSystem, req command.Request) (Command, error) {
	switch req.Kind {
	case command.KindStartChecks:
		return NewStartChecksCommand(system), nil
	case command.KindLaunch:
		return NewLaunchCommand(system), nil
	case command.KindFastForward:
		return NewFastForwardCommand(system, req.Seconds), nil
	default:
		return nil, flight.NewInvalidCommandError(string(req.Kind), "not a rocket command")
	}
}
