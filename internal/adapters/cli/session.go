// Package cli provides thin CLI adapters that translate between terminal I/O
// and application services. Adapters parse input and format output, but
// delegate business logic to services.
package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/example/rocketsim/internal/core/command"
	"github.com/example/rocketsim/internal/core/flight"
	"github.com/example/rocketsim/internal/metrics"
	"github.com/example/rocketsim/internal/ports/primary"
)

// Prompt is printed before every interactive line.
const Prompt = "rocketsim> "

// MaxLineBytes bounds one input line. Longer lines are rejected as invalid
// commands without being buffered.
const MaxLineBytes = 4096

// oversizedPreview is how much of a rejected line is echoed back.
const oversizedPreview = 32

func okMark() string { return color.New(color.FgGreen).Sprint("✓") }
func failMark() string { return color.New(color.FgRed).Sprint("✗") }

// Session is a line-oriented driver for a SimulatorService.
// It depends only on the SimulatorService interface, enabling easy testing with mocks.
type Session struct {
	service primary.SimulatorService
	out     io.Writer
	logger  *slog.Logger
}

// NewSession creates a new Session writing to out.
func NewSession(service primary.SimulatorService, out io.Writer, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		service: service,
		out:     out,
		logger:  logger,
	}
}

// Run reads commands from in until exit, end of input or cancellation.
// Command errors are reported and do not end the session.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	reader := bufio.NewReader(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(s.out, Prompt)

		line, size, err := readLine(reader)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		if size > MaxLineBytes {
			s.report(flight.NewInvalidCommandError(line+"...", fmt.Sprintf("line of %d bytes exceeds %d", size, MaxLineBytes)))
			continue
		}

		exit, err := s.Handle(ctx, line)
		if err != nil {
			s.report(err)
			continue
		}
		if exit {
			return nil
		}
	}
}

// RunScript executes steps in order as if typed, pausing delay between steps.
// A failing step is reported and the script continues.
func (s *Session) RunScript(ctx context.Context, steps []string, delay time.Duration) error {
	for i, step := range steps {
		if i > 0 && delay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintf(s.out, "%s%s\n", Prompt, step)
		exit, err := s.Handle(ctx, step)
		if err != nil {
			s.report(err)
			continue
		}
		if exit {
			return nil
		}
	}
	return nil
}

// Handle processes one input line. Blank lines are ignored.
func (s *Session) Handle(ctx context.Context, line string) (exit bool, err error) {
	if strings.TrimSpace(line) == "" {
		return false, nil
	}

	req, err := command.Parse(line)
	if err != nil {
		return false, err
	}

	if req.Mutates() {
		return false, s.execute(ctx, req)
	}

	switch req.Kind {
	case command.KindExit:
		fmt.Fprintln(s.out, "Goodbye.")
		return true, nil
	case command.KindHelp:
		s.printHelp()
	case command.KindStatus:
		s.printStatus(s.service.State())
	case command.KindHistory:
		return false, s.printHistory(ctx)
	case command.KindTelemetry:
		return false, s.printTelemetry(ctx, req.Limit)
	case command.KindMetrics:
		return false, s.printMetrics()
	case command.KindLog:
		s.printLog()
	}
	return false, nil
}

func (s *Session) execute(ctx context.Context, req command.Request) error {
	before := s.service.State().Status

	if err := s.service.Execute(ctx, req); err != nil {
		return err
	}

	state := s.service.State()
	fmt.Fprintf(s.out, "%s %s: %s\n", okMark(), req.Kind, state.Status)
	if state.Status.IsTerminal() && !before.IsTerminal() {
		s.printOutcome(state)
	}
	return nil
}

// report logs a failed line. Simulation errors are expected user mistakes;
// anything else is logged as unexpected.
func (s *Session) report(err error) {
	if errors.Is(err, flight.ErrSimulation) {
		s.logger.Error("command error", "error", err)
	} else {
		s.logger.Error("unexpected error", "error", err)
	}
	fmt.Fprintf(s.out, "%s %v\n", failMark(), err)
}

func (s *Session) printOutcome(state flight.RocketState) {
	switch state.Status {
	case flight.StatusOrbitAchieved:
		banner := color.New(color.FgGreen, color.Bold).Sprint("ORBIT ACHIEVED")
		fmt.Fprintf(s.out, "\n*** %s *** altitude %.1f km, fuel %.1f%%\n\n", banner, state.Altitude, state.Fuel)
	case flight.StatusMissionFailed:
		banner := color.New(color.FgRed, color.Bold).Sprint("MISSION FAILED")
		fmt.Fprintf(s.out, "\n*** %s *** insufficient fuel at %.1f km (stage %d)\n\n", banner, state.Altitude, state.Stage)
	}
}

func (s *Session) printHelp() {
	fmt.Fprintln(s.out, "\nCommands:")
	for _, h := range command.Help() {
		fmt.Fprintf(s.out, "  %-24s %s\n", h.Usage, h.Description)
	}
	fmt.Fprintln(s.out)
}

func (s *Session) printStatus(state flight.RocketState) {
	fmt.Fprintf(s.out, "\nFlight:   %s\n", s.service.FlightID())
	fmt.Fprintf(s.out, "Status:   %s\n", colorStatus(state.Status))
	fmt.Fprintf(s.out, "Stage:    %d\n", state.Stage)
	fmt.Fprintf(s.out, "Fuel:     %.1f%%\n", state.Fuel)
	fmt.Fprintf(s.out, "Altitude: %.1f km\n", state.Altitude)
	fmt.Fprintf(s.out, "Speed:    %.0f km/h\n", state.Speed)
	fmt.Fprintln(s.out)
}

func (s *Session) printHistory(ctx context.Context) error {
	entries, err := s.service.History(ctx)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(s.out, "No commands executed")
		return nil
	}

	for i, e := range entries {
		fmt.Fprintf(s.out, "%3d. %s\n", i+1, e.Description)
	}
	return nil
}

func (s *Session) printTelemetry(ctx context.Context, limit int) error {
	entries, err := s.service.Telemetry(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to load telemetry: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(s.out, "No telemetry recorded")
		return nil
	}

	w := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEQ\tSTAGE\tFUEL\tALTITUDE\tSPEED\tSTATUS")
	for _, e := range entries {
		fmt.Fprintf(w, "%d\t%d\t%.1f%%\t%.1f km\t%.0f km/h\t%s\n",
			e.Sequence, e.Stage, e.Fuel, e.Altitude, e.Speed, e.Status)
	}
	return w.Flush()
}

func (s *Session) printMetrics() error {
	values, err := s.service.Metrics()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	for _, name := range metrics.SortedNames(values) {
		fmt.Fprintf(s.out, "%-48s %g\n", name, values[name])
	}
	return nil
}

func (s *Session) printLog() {
	entries := s.service.Logs()
	if len(entries) == 0 {
		fmt.Fprintln(s.out, "Log is empty")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(s.out, "%s %-5s %s\n", e.Time, e.Level, e.Message)
	}
}

func colorStatus(status flight.MissionStatus) string {
	switch status {
	case flight.StatusOrbitAchieved:
		return color.New(color.FgGreen).Sprint(status)
	case flight.StatusMissionFailed:
		return color.New(color.FgRed).Sprint(status)
	case flight.StatusInFlight:
		return color.New(color.FgCyan).Sprint(status)
	default:
		return string(status)
	}
}

// readLine reads one line without its terminator and returns its length.
// Only the first MaxLineBytes are buffered; an oversized line keeps a short
// preview. A final line without a newline is returned with a nil error.
func readLine(r *bufio.Reader) (string, int, error) {
	var buf []byte
	size, read := 0, 0
	for {
		chunk, err := r.ReadSlice('\n')
		read += len(chunk)
		partial := errors.Is(err, bufio.ErrBufferFull)
		if err != nil && !partial && !errors.Is(err, io.EOF) {
			return "", 0, err
		}
		if !partial {
			chunk = bytes.TrimRight(chunk, "\r\n")
		}
		size += len(chunk)
		buf = appendBounded(buf, chunk, size)

		switch {
		case partial:
			continue
		case errors.Is(err, io.EOF) && read == 0:
			return "", 0, io.EOF
		}
		return string(buf), size, nil
	}
}

func appendBounded(buf, chunk []byte, size int) []byte {
	if size <= MaxLineBytes {
		return append(buf, chunk...)
	}
	if len(buf) >= oversizedPreview {
		return buf[:oversizedPreview]
	}
	n := min(oversizedPreview-len(buf), len(chunk))
	return append(buf, chunk[:n]...)
}
