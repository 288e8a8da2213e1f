package patterns

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ErrUnknownVehicle is returned for a kind the factory cannot build.
var ErrUnknownVehicle = errors.New("unknown vehicle kind")

// Vehicle is a product of NewVehicle.
type Vehicle interface {
	Kind() string
	Wheels() int
	Describe() string
}

type car struct{}

func (car) Kind() string { return "car" }
func (car) Wheels() int { return 4 }
func (car) Describe() string { return "seats five, drives on roads" }

type motorcycle struct{}

func (motorcycle) Kind() string { return "motorcycle" }
func (motorcycle) Wheels() int { return 2 }
func (motorcycle) Describe() string { return "seats two, lane-splits" }

type truck struct{}

func (truck) Kind() string { return "truck" }
func (truck) Wheels() int { return 18 }
func (truck) Describe() string { return "hauls freight" }

// NewVehicle builds a vehicle by kind, case-insensitively.
func NewVehicle(kind string) (Vehicle, error) {
	switch strings.ToLower(kind) {
	case "car":
		return car{}, nil
	case "motorcycle":
		return motorcycle{}, nil
	case "truck":
		return truck{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVehicle, kind)
	}
}

// RunFactory builds each kind, then asks for one the factory lacks.
func RunFactory(ctx context.Context, w io.Writer, logger *slog.Logger) error {
	header(w, "Factory: vehicles")

	for _, kind := range []string{"car", "motorcycle", "truck", "hovercraft"} {
		v, err := NewVehicle(kind)
		if errors.Is(err, ErrUnknownVehicle) {
			logger.Warn("vehicle not built", "kind", kind)
			fmt.Fprintf(w, "  %-10s -> %v\n", kind, err)
			continue
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %-10s -> %d wheels, %s\n", v.Kind(), v.Wheels(), v.Describe())
	}
	return nil
}
