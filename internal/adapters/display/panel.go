// Package display renders in-flight telemetry for a terminal.
package display

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/example/rocketsim/internal/core/flight"
	"github.com/example/rocketsim/internal/ports/secondary"
)

// Options configures a Panel.
type Options struct {
	Color bool
}

// Panel is a StateObserver that draws a bordered telemetry box for every
// snapshot received while the rocket is in flight. Other snapshots are ignored.
type Panel struct {
	out    io.Writer
	box    lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	warn   lipgloss.Style
	frames int
}

// NewPanel creates a Panel writing to out.
func NewPanel(out io.Writer, opts Options) *Panel {
	r := lipgloss.NewRenderer(out)

	p := &Panel{
		out:   out,
		box:   r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		label: r.NewStyle().Width(10),
		value: r.NewStyle().Bold(true),
		warn:  r.NewStyle().Bold(true),
	}
	if opts.Color {
		p.box = p.box.BorderForeground(lipgloss.Color("12"))
		p.label = p.label.Foreground(lipgloss.Color("8"))
		p.value = p.value.Foreground(lipgloss.Color("10"))
		p.warn = p.warn.Foreground(lipgloss.Color("11"))
	}
	return p
}

// Update implements secondary.StateObserver.
func (p *Panel) Update(ctx context.Context, state flight.RocketState) error {
	if state.Status != flight.StatusInFlight {
		return nil
	}
	p.frames++
	if _, err := fmt.Fprintln(p.out, p.Render(state)); err != nil {
		return fmt.Errorf("failed to draw telemetry panel: %w", err)
	}
	return nil
}

// Frames reports how many panels have been drawn.
func (p *Panel) Frames() int {
	return p.frames
}

// Render returns the panel for state without writing it.
func (p *Panel) Render(state flight.RocketState) string {
	fuel := p.value
	if state.Fuel <= 2*flight.OrbitMinFuelLevel {
		fuel = p.warn
	}

	rows := []string{
		p.row("Stage", p.value, fmt.Sprintf("%d", state.Stage)),
		p.row("Fuel", fuel, fmt.Sprintf("%.1f%%", state.Fuel)),
		p.row("Altitude", p.value, fmt.Sprintf("%.1f km", state.Altitude)),
		p.row("Speed", p.value, fmt.Sprintf("%.0f km/h", state.Speed)),
		p.row("Status", p.value, string(state.Status)),
	}
	return p.box.Render(strings.Join(rows, "\n"))
}

func (p *Panel) row(name string, style lipgloss.Style, value string) string {
	return p.label.Render(name) + style.Render(value)
}

var _ secondary.StateObserver = (*Panel)(nil)
