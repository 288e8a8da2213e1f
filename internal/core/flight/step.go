package flight

// StepOutcome classifies the result of a one-second update.
type StepOutcome int

const (
	// StepContinue means the flight goes on with the same stage.
	StepContinue StepOutcome = iota
	// StepSeparated means the active stage separated; the caller must select
	// the strategy for the new stage number.
	StepSeparated
	// StepOrbitAchieved halts the flight successfully.
	StepOrbitAchieved
	// StepFuelExhausted halts the flight with a failure.
	StepFuelExhausted
)

// Halts reports whether the flight loop must stop after this outcome.
func (o StepOutcome) Halts() bool {
	return o == StepOrbitAchieved || o == StepFuelExhausted
}

func (o StepOutcome) String() string {
	switch o {
	case StepContinue:
		return "continue"
	case StepSeparated:
		return "separated"
	case StepOrbitAchieved:
		return "orbit_achieved"
	case StepFuelExhausted:
		return "fuel_exhausted"
	default:
		return "unknown"
	}
}

// Step applies one second of flight to state using the active stage.
// This is a pure function: the caller owns the resulting state.
//
// The orbit check runs before the separation check, so a second that reaches
// orbit altitude and the separation threshold together is an orbit.
func Step(state RocketState, stage StageStrategy) (RocketState, StepOutcome) {
	next := state

	next.Fuel -= stage.FuelBurnRate()
	if next.Fuel <= 0 {
		next.Fuel = 0
		next.Status = StatusMissionFailed
		return next, StepFuelExhausted
	}

	next.Altitude += stage.AltitudeIncrement()
	next.Speed += stage.SpeedIncrement()

	if next.Altitude >= OrbitAltitudeKm && next.Fuel >= OrbitMinFuelLevel {
		next.Status = StatusOrbitAchieved
		return next, StepOrbitAchieved
	}

	if stage.ShouldSeparate(next.Fuel) {
		next.Stage++
		return next, StepSeparated
	}

	return next, StepContinue
}
