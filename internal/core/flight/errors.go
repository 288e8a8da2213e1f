package flight

import (
	"errors"
	"fmt"
)

// ErrSimulation is the base of every simulation error. Use errors.Is to classify.
var ErrSimulation = errors.New("simulation error")

// InvalidStateError is returned when an operation runs outside the status it requires.
type InvalidStateError struct {
	Operation string
	Reason    string
}

// NewInvalidStateError creates an InvalidStateError.
func NewInvalidStateError(operation, reason string) *InvalidStateError {
	return &InvalidStateError{Operation: operation, Reason: reason}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid state for %s: %s", e.Operation, e.Reason)
}

func (e *InvalidStateError) Unwrap() error { return ErrSimulation }

// InvalidCommandError is returned for input that cannot be turned into a command.
type InvalidCommandError struct {
	Input  string
	Reason string
}

// NewInvalidCommandError creates an InvalidCommandError.
func NewInvalidCommandError(input, reason string) *InvalidCommandError {
	return &InvalidCommandError{Input: input, Reason: reason}
}

func (e *InvalidCommandError) Error() string {
	return fmt.Sprintf("invalid command %q: %s", e.Input, e.Reason)
}

func (e *InvalidCommandError) Unwrap() error { return ErrSimulation }

// UnknownStageError is returned when no strategy exists for a stage number.
type UnknownStageError struct {
	Stage int
}

func (e *UnknownStageError) Error() string {
	return fmt.Sprintf("no stage strategy defined for stage %d", e.Stage)
}

func (e *UnknownStageError) Unwrap() error { return ErrSimulation }
