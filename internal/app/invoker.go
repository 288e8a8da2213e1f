package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/example/rocketsim/internal/core/flight"
)

// CommandInvoker runs commands behind their precondition guard and keeps the
// history of the ones that succeeded.
type CommandInvoker struct {
	logger  *slog.Logger
	history []Command
}

// NewCommandInvoker creates an invoker with an empty history.
func NewCommandInvoker(logger *slog.Logger) *CommandInvoker {
	if logger == nil {
		logger = slog.Default()
	}
	return &CommandInvoker{logger: logger}
}

// ExecuteCommand checks the command's precondition, executes it and records
// it. Rejected or failed commands are not recorded.
func (i *CommandInvoker) ExecuteCommand(ctx context.Context, cmd Command) error {
	desc := cmd.Description()

	if !cmd.CanExecute() {
		reason := "command preconditions not met"
		if g, ok := cmd.(guarded); ok {
			reason = g.Guard().Reason
		}
		i.logger.Warn("command rejected", "command", desc, "reason", reason)
		return flight.NewInvalidStateError(desc, reason)
	}

	i.logger.Info("executing command", "command", desc)
	if err := cmd.Execute(ctx); err != nil {
		i.logger.Error("command failed", "command", desc, "error", err)
		return fmt.Errorf("%s: %w", desc, err)
	}

	i.history = append(i.history, cmd)
	return nil
}

// History returns a copy of the executed commands in execution order.
func (i *CommandInvoker) History() []Command {
	out := make([]Command, len(i.history))
	copy(out, i.history)
	return out
}
