package flight

// StageStrategy describes the propulsion parameters of one stage.
type StageStrategy interface {
	Number() int
	Name() string
	// FuelBurnRate is the fuel consumed per second, in percent.
	FuelBurnRate() float64
	// AltitudeIncrement is the altitude gained per second, in km.
	AltitudeIncrement() float64
	// SpeedIncrement is the speed gained per second, in km/h.
	SpeedIncrement() float64
	// ShouldSeparate reports whether the stage separates at the given fuel level.
	ShouldSeparate(fuel float64) bool
}

type firstStage struct{}

func (firstStage) Number() int { return 1 }
func (firstStage) Name() string { return "Stage 1 (booster)" }
func (firstStage) FuelBurnRate() float64 { return 1.0 }
func (firstStage) AltitudeIncrement() float64 { return 10.0 }
func (firstStage) SpeedIncrement() float64 { return 1000.0 }
func (firstStage) ShouldSeparate(fuel float64) bool { return fuel <= 30.0 }

// The second stage only separates on an empty tank, which exhaustion handling
// always catches first.
type secondStage struct{}

func (secondStage) Number() int { return 2 }
func (secondStage) Name() string { return "Stage 2 (upper)" }
func (secondStage) FuelBurnRate() float64 { return 0.5 }
func (secondStage) AltitudeIncrement() float64 { return 15.0 }
func (secondStage) SpeedIncrement() float64 { return 1500.0 }
func (secondStage) ShouldSeparate(fuel float64) bool { return fuel <= 0 }

var (
	stageOne StageStrategy = firstStage{}
	stageTwo StageStrategy = secondStage{}
)

// CreateStage returns the strategy for stage n. Only stages 1 and 2 exist.
func CreateStage(n int) (StageStrategy, error) {
	switch n {
	case 1:
		return stageOne, nil
	case 2:
		return stageTwo, nil
	default:
		return nil, &UnknownStageError{Stage: n}
	}
}
