package patterns

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"
)

// Route is a planned trip.
type Route struct {
	Mode       string
	DistanceKm float64
	Duration   time.Duration
}

// RouteStrategy plans a trip over a distance.
type RouteStrategy interface {
	Mode() string
	Plan(distanceKm float64) Route
}

type speedStrategy struct {
	mode string
	kmh  float64
	// stops adds a fixed pause per started 10 km.
	stops time.Duration
}

func (s speedStrategy) Mode() string { return s.mode }

func (s speedStrategy) Plan(distanceKm float64) Route {
	hours := distanceKm / s.kmh
	d := time.Duration(hours * float64(time.Hour))
	d += time.Duration(math.Ceil(distanceKm/10)) * s.stops
	return Route{Mode: s.mode, DistanceKm: distanceKm, Duration: d.Round(time.Minute)}
}

// Driving, Cycling and Walking are the built-in strategies.
var (
	Driving RouteStrategy = speedStrategy{mode: "driving", kmh: 60, stops: 2 * time.Minute}
	Cycling RouteStrategy = speedStrategy{mode: "cycling", kmh: 18}
	Walking RouteStrategy = speedStrategy{mode: "walking", kmh: 5}
)

// Navigator plans routes with a replaceable strategy.
type Navigator struct {
	strategy RouteStrategy
}

// NewNavigator creates a navigator using strategy.
func NewNavigator(strategy RouteStrategy) *Navigator {
	return &Navigator{strategy: strategy}
}

// SetStrategy swaps the planning strategy.
func (n *Navigator) SetStrategy(strategy RouteStrategy) {
	n.strategy = strategy
}

// Plan plans a trip with the current strategy.
func (n *Navigator) Plan(distanceKm float64) (Route, error) {
	if distanceKm <= 0 {
		return Route{}, fmt.Errorf("distance must be positive (got %.1f km)", distanceKm)
	}
	return n.strategy.Plan(distanceKm), nil
}

// RunStrategy plans the same trip three ways.
func RunStrategy(ctx context.Context, w io.Writer, logger *slog.Logger) error {
	header(w, "Strategy: route planning")

	const distance = 12.0
	nav := NewNavigator(Driving)
	for _, s := range []RouteStrategy{Driving, Cycling, Walking} {
		nav.SetStrategy(s)
		route, err := nav.Plan(distance)
		if err != nil {
			return err
		}
		logger.Debug("route planned", "mode", route.Mode, "duration", route.Duration)
		fmt.Fprintf(w, "  %-8s %.0f km in %s\n", route.Mode, route.DistanceKm, route.Duration)
	}
	return nil
}
