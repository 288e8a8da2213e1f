// Package patterns holds small standalone demonstrations of the design
// patterns the simulator is built from. Each demo writes a narrative to w.
package patterns

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// RunFunc runs one demo.
type RunFunc func(ctx context.Context, w io.Writer, logger *slog.Logger) error

// Demo is a named entry of the catalog.
type Demo struct {
	Name    string
	Summary string
	Run     RunFunc
}

// Catalog returns every demo in presentation order.
func Catalog() []Demo {
	return []Demo{
		{Name: "observer", Summary: "scoreboard pushing goals to subscribers", Run: RunObserver},
		{Name: "strategy", Summary: "route planning with interchangeable strategies", Run: RunStrategy},
		{Name: "singleton", Summary: "one settings registry shared by its consumers", Run: RunSingleton},
		{Name: "factory", Summary: "vehicles built by kind", Run: RunFactory},
		{Name: "decorator", Summary: "notifiers wrapped in formatting layers", Run: RunDecorator},
		{Name: "adapter", Summary: "legacy Fahrenheit sensor behind a Celsius interface", Run: RunAdapter},
	}
}

// Select returns the named demos in the order given, or the whole catalog
// when names is empty.
func Select(names []string) ([]Demo, error) {
	all := Catalog()
	if len(names) == 0 {
		return all, nil
	}

	byName := make(map[string]Demo, len(all))
	for _, d := range all {
		byName[d.Name] = d
	}

	selected := make([]Demo, 0, len(names))
	for _, name := range names {
		d, ok := byName[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("unknown pattern %q (available: %s)", name, strings.Join(Names(), ", "))
		}
		selected = append(selected, d)
	}
	return selected, nil
}

// Names lists the catalog names in order.
func Names() []string {
	all := Catalog()
	names := make([]string, len(all))
	for i, d := range all {
		names[i] = d.Name
	}
	return names
}

func header(w io.Writer, title string) {
	fmt.Fprintf(w, "\n=== %s ===\n", title)
}
