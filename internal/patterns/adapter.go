package patterns

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Thermometer reads a temperature in Celsius.
type Thermometer interface {
	Celsius() float64
}

// FahrenheitSensor is a legacy device that only reports Fahrenheit.
type FahrenheitSensor struct {
	Reading float64
}

// ReadFahrenheit returns the raw reading.
func (s *FahrenheitSensor) ReadFahrenheit() float64 {
	return s.Reading
}

// SensorAdapter exposes a FahrenheitSensor as a Thermometer.
type SensorAdapter struct {
	sensor *FahrenheitSensor
}

// NewSensorAdapter wraps sensor.
func NewSensorAdapter(sensor *FahrenheitSensor) *SensorAdapter {
	return &SensorAdapter{sensor: sensor}
}

func (a *SensorAdapter) Celsius() float64 {
	return (a.sensor.ReadFahrenheit() - 32) * 5 / 9
}

var _ Thermometer = (*SensorAdapter)(nil)

// RunAdapter reads a few legacy values through the Celsius interface.
func RunAdapter(ctx context.Context, w io.Writer, logger *slog.Logger) error {
	header(w, "Adapter: Fahrenheit sensor")

	sensor := &FahrenheitSensor{}
	var thermometer Thermometer = NewSensorAdapter(sensor)
	for _, f := range []float64{32, 98.6, 212, -40} {
		sensor.Reading = f
		fmt.Fprintf(w, "  %6.1f°F -> %6.1f°C\n", f, thermometer.Celsius())
	}
	logger.Debug("sensor adapted")
	return nil
}
