package flight

import "fmt"

// Orbit thresholds.
const (
	OrbitAltitudeKm   = 160.0
	OrbitMinFuelLevel = 5.0
	FullTank          = 100.0
)

// RocketState is a snapshot of the rocket. It is a value type: every copy is
// an independent snapshot.
type RocketState struct {
	Stage    int
	Fuel     float64 // percent, [0,100]
	Altitude float64 // km
	Speed    float64 // km/h
	Status   MissionStatus
}

// InitialState returns the state of a rocket sitting on the pad.
func InitialState() RocketState {
	return RocketState{
		Stage:  0,
		Fuel:   FullTank,
		Status: InitialStatus(),
	}
}

// String renders the snapshot on a single line.
func (s RocketState) String() string {
	return fmt.Sprintf("stage=%d fuel=%.1f%% altitude=%.1fkm speed=%.0fkm/h status=%s",
		s.Stage, s.Fuel, s.Altitude, s.Speed, s.Status)
}
