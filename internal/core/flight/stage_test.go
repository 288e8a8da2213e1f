package flight

import (
	"errors"
	"testing"
)

func TestCreateStage(t *testing.T) {
	tests := []struct {
		name      string
		stage     int
		wantBurn  float64
		wantAlt   float64
		wantSpeed float64
		wantErr   bool
	}{
		{name: "stage 1", stage: 1, wantBurn: 1.0, wantAlt: 10, wantSpeed: 1000},
		{name: "stage 2", stage: 2, wantBurn: 0.5, wantAlt: 15, wantSpeed: 1500},
		{name: "stage 0", stage: 0, wantErr: true},
		{name: "negative", stage: -1, wantErr: true},
		{name: "stage 3", stage: 3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CreateStage(tt.stage)
			if tt.wantErr {
				var stageErr *UnknownStageError
				if !errors.As(err, &stageErr) {
					t.Fatalf("CreateStage(%d) error = %v, want *UnknownStageError", tt.stage, err)
				}
				if stageErr.Stage != tt.stage {
					t.Errorf("UnknownStageError.Stage = %d, want %d", stageErr.Stage, tt.stage)
				}
				if !errors.Is(err, ErrSimulation) {
					t.Error("UnknownStageError does not wrap ErrSimulation")
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateStage(%d) unexpected error: %v", tt.stage, err)
			}
			if got.Number() != tt.stage {
				t.Errorf("Number() = %d, want %d", got.Number(), tt.stage)
			}
			if got.FuelBurnRate() != tt.wantBurn || got.AltitudeIncrement() != tt.wantAlt || got.SpeedIncrement() != tt.wantSpeed {
				t.Errorf("rates = (%v, %v, %v), want (%v, %v, %v)",
					got.FuelBurnRate(), got.AltitudeIncrement(), got.SpeedIncrement(),
					tt.wantBurn, tt.wantAlt, tt.wantSpeed)
			}
		})
	}
}

func TestCreateStageIsStable(t *testing.T) {
	first, _ := CreateStage(1)
	again, _ := CreateStage(1)
	second, _ := CreateStage(2)

	if first != again {
		t.Error("CreateStage(1) returned different strategies on repeated calls")
	}
	if first == second {
		t.Error("CreateStage(1) and CreateStage(2) returned the same strategy")
	}
	if first.Name() == second.Name() {
		t.Errorf("stage names collide: %q", first.Name())
	}
}

func TestFirstStageSeparation(t *testing.T) {
	stage, _ := CreateStage(1)
	tests := []struct {
		fuel float64
		want bool
	}{
		{fuel: 100, want: false},
		{fuel: 30.5, want: false},
		{fuel: 30, want: true},
		{fuel: 12, want: true},
	}
	for _, tt := range tests {
		if got := stage.ShouldSeparate(tt.fuel); got != tt.want {
			t.Errorf("ShouldSeparate(%v) = %v, want %v", tt.fuel, got, tt.want)
		}
	}
}
