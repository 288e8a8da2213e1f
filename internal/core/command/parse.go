// Package command contains the pure parsing rules for simulator input lines.
// This is part of the Functional Core - no I/O, only pure functions.
package command

import (
	"strconv"
	"strings"

	"github.com/example/rocketsim/internal/core/flight"
)

// Kind identifies a simulator command.
type Kind string

const (
	KindStartChecks Kind = "start_checks"
	KindLaunch      Kind = "launch"
	KindFastForward Kind = "fast_forward"
	KindStatus      Kind = "status"
	KindHelp        Kind = "help"
	KindExit        Kind = "exit"
	KindHistory     Kind = "history"
	KindTelemetry   Kind = "telemetry"
	KindMetrics     Kind = "metrics"
	KindLog         Kind = "log"
)

// DefaultTelemetryLimit is the number of journal rows shown by a bare telemetry command.
const DefaultTelemetryLimit = 20

// Request is a parsed input line.
type Request struct {
	Kind Kind
	// Seconds is set for fast_forward.
	Seconds int
	// Limit is set for telemetry.
	Limit int
}

// Mutates reports whether the request drives the rocket (and is therefore
// routed through the command invoker and recorded in history).
func (r Request) Mutates() bool {
	switch r.Kind {
	case KindStartChecks, KindLaunch, KindFastForward:
		return true
	default:
		return false
	}
}

// HelpEntry documents one command for the help listing.
type HelpEntry struct {
	Usage       string
	Description string
}

// Help returns the command list in display order.
func Help() []HelpEntry {
	return []HelpEntry{
		{Usage: "start_checks", Description: "run pre-launch checks"},
		{Usage: "launch", Description: "launch the rocket once checks have passed"},
		{Usage: "fast_forward <seconds>", Description: "advance the flight by a positive number of seconds"},
		{Usage: "status", Description: "print the current rocket state"},
		{Usage: "history", Description: "list executed commands"},
		{Usage: "telemetry [n]", Description: "show the last n recorded flight snapshots"},
		{Usage: "metrics", Description: "show flight gauges"},
		{Usage: "log", Description: "show the log history"},
		{Usage: "help", Description: "show this list"},
		{Usage: "exit", Description: "leave the simulator"},
	}
}

// Parse turns an input line into a Request.
// Unknown commands and malformed arguments yield an InvalidCommandError.
func Parse(line string) (Request, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Request{}, flight.NewInvalidCommandError(line, "empty input")
	}

	kind := Kind(strings.ToLower(fields[0]))
	args := fields[1:]

	switch kind {
	case KindStartChecks, KindLaunch, KindStatus, KindHelp, KindExit, KindHistory, KindMetrics, KindLog:
		if len(args) != 0 {
			return Request{}, flight.NewInvalidCommandError(line, string(kind)+" takes no arguments")
		}
		return Request{Kind: kind}, nil

	case KindFastForward:
		if len(args) != 1 {
			return Request{}, flight.NewInvalidCommandError(line, "usage: fast_forward <seconds>")
		}
		seconds, err := positiveInt(args[0])
		if err != nil {
			return Request{}, flight.NewInvalidCommandError(line, "seconds must be a positive integer")
		}
		return Request{Kind: kind, Seconds: seconds}, nil

	case KindTelemetry:
		if len(args) > 1 {
			return Request{}, flight.NewInvalidCommandError(line, "usage: telemetry [n]")
		}
		limit := DefaultTelemetryLimit
		if len(args) == 1 {
			n, err := positiveInt(args[0])
			if err != nil {
				return Request{}, flight.NewInvalidCommandError(line, "n must be a positive integer")
			}
			limit = n
		}
		return Request{Kind: kind, Limit: limit}, nil

	default:
		return Request{}, flight.NewInvalidCommandError(line, "unknown command (type 'help')")
	}
}

func positiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}
