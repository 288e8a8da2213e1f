// Package metrics publishes flight telemetry as Prometheus gauges.
package metrics

import (
	"context"
	"fmt"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/example/rocketsim/internal/core/flight"
	"github.com/example/rocketsim/internal/ports/secondary"
)

// FlightMetrics tracks the rocket state as gauges on a private registry.
type FlightMetrics struct {
	registry *prometheus.Registry

	altitude prometheus.Gauge
	speed    prometheus.Gauge
	fuel     prometheus.Gauge
	stage    prometheus.Gauge
	status   prometheus.Gauge

	updatesTotal   prometheus.Counter
	terminalStates *prometheus.CounterVec
}

// NewFlightMetrics creates and registers the flight gauges.
func NewFlightMetrics(namespace string) *FlightMetrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &FlightMetrics{
		registry: reg,
		altitude: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "rocket",
			Name:      "altitude_km",
			Help:      "Current altitude in kilometres",
		}),
		speed: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "rocket",
			Name:      "speed_kmh",
			Help:      "Current speed in km/h",
		}),
		fuel: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "rocket",
			Name:      "fuel_percent",
			Help:      "Remaining fuel in percent",
		}),
		stage: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "rocket",
			Name:      "stage",
			Help:      "Active stage number (0 on the pad)",
		}),
		status: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "mission",
			Name:      "status",
			Help:      "Mission status (0=PRE_LAUNCH, 1=CHECKS_IN_PROGRESS, 2=READY_TO_LAUNCH, 3=IN_FLIGHT, 4=ORBIT_ACHIEVED, 5=MISSION_FAILED)",
		}),
		updatesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "mission",
			Name:      "updates_total",
			Help:      "Total number of state notifications",
		}),
		terminalStates: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "mission",
			Name:      "terminal_total",
			Help:      "Missions that reached a terminal status",
		}, []string{"status"}),
	}
}

// Update records a snapshot. It implements secondary.StateObserver.
func (m *FlightMetrics) Update(_ context.Context, state flight.RocketState) error {
	m.altitude.Set(state.Altitude)
	m.speed.Set(state.Speed)
	m.fuel.Set(state.Fuel)
	m.stage.Set(float64(state.Stage))
	m.status.Set(float64(state.Status.Ordinal()))
	m.updatesTotal.Inc()
	if state.Status.IsTerminal() {
		m.terminalStates.WithLabelValues(string(state.Status)).Inc()
	}
	return nil
}

// Registry exposes the private registry, e.g. for an exposition handler.
func (m *FlightMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Snapshot gathers every gauge and counter into a name->value map.
// Labelled series are keyed as name{label="value"}.
func (m *FlightMetrics) Snapshot() (map[string]float64, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}

	out := make(map[string]float64)
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			key := mf.GetName()
			if labels := metric.GetLabel(); len(labels) > 0 {
				key += "{"
				for i, l := range labels {
					if i > 0 {
						key += ","
					}
					key += fmt.Sprintf("%s=%q", l.GetName(), l.GetValue())
				}
				key += "}"
			}
			switch {
			case metric.GetGauge() != nil:
				out[key] = metric.GetGauge().GetValue()
			case metric.GetCounter() != nil:
				out[key] = metric.GetCounter().GetValue()
			}
		}
	}
	return out, nil
}

// SortedNames returns the keys of a snapshot in lexical order.
func SortedNames(snapshot map[string]float64) []string {
	names := make([]string, 0, len(snapshot))
	for name := range snapshot {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var _ secondary.StateObserver = (*FlightMetrics)(nil)
