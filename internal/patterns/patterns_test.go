package patterns

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/rocketsim/internal/logging"
)

func TestCatalogRunsEveryDemo(t *testing.T) {
	for _, demo := range Catalog() {
		t.Run(demo.Name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, demo.Run(context.Background(), &buf, logging.Discard()))
			assert.NotEmpty(t, buf.String())
		})
	}
}

func TestSelect(t *testing.T) {
	all, err := Select(nil)
	require.NoError(t, err)
	assert.Len(t, all, 6)
	assert.Equal(t, []string{"observer", "strategy", "singleton", "factory", "decorator", "adapter"}, Names())

	some, err := Select([]string{"Adapter", "observer"})
	require.NoError(t, err)
	require.Len(t, some, 2)
	assert.Equal(t, "adapter", some[0].Name)
	assert.Equal(t, "observer", some[1].Name)

	_, err = Select([]string{"visitor"})
	assert.ErrorContains(t, err, `unknown pattern "visitor"`)
}

type failingSubscriber struct{ err error }

func (f failingSubscriber) OnScore(ctx context.Context, score Score) error { return f.err }

func TestScoreboard_IsolatesFailures(t *testing.T) {
	board := NewScoreboard("A", "B", logging.Discard())
	first := &ArchiveSubscriber{}
	last := &ArchiveSubscriber{}
	errA := errors.New("a down")
	errB := errors.New("b down")
	board.Subscribe(first)
	board.Subscribe(failingSubscriber{err: errA})
	board.Subscribe(failingSubscriber{err: errB})
	board.Subscribe(last)

	err := board.Goal(context.Background(), true)

	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
	require.Len(t, first.Scores, 1)
	require.Len(t, last.Scores, 1)
	assert.Equal(t, Score{Home: "A", Away: "B", HomeGoals: 1}, last.Scores[0])
}

func TestScoreboard_Unsubscribe(t *testing.T) {
	board := NewScoreboard("A", "B", logging.Discard())
	archive := &ArchiveSubscriber{}
	board.Subscribe(archive)
	board.Subscribe(archive)

	require.NoError(t, board.Goal(context.Background(), false))
	board.Unsubscribe(archive)
	require.NoError(t, board.Goal(context.Background(), false))

	assert.Len(t, archive.Scores, 2)
	assert.Equal(t, "A 0 - 2 B", board.Score().String())
}

func TestNavigator(t *testing.T) {
	tests := []struct {
		strategy RouteStrategy
		want     time.Duration
	}{
		{Driving, 12*time.Minute + 4*time.Minute},
		{Cycling, 40 * time.Minute},
		{Walking, 2*time.Hour + 24*time.Minute},
	}

	nav := NewNavigator(Driving)
	for _, tt := range tests {
		nav.SetStrategy(tt.strategy)
		route, err := nav.Plan(12)
		require.NoError(t, err)
		assert.Equal(t, tt.strategy.Mode(), route.Mode)
		assert.Equal(t, tt.want, route.Duration, tt.strategy.Mode())
	}

	_, err := nav.Plan(0)
	assert.Error(t, err)
}

func TestSettings(t *testing.T) {
	s := NewSettings()
	s.Set("b", "2")
	s.Set("a", "1")
	s.Set("a", "3")

	v, ok := s.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "3", v)
	_, ok = s.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, []string{"a", "b"}, s.Keys())
}

func TestNewVehicle(t *testing.T) {
	tests := []struct {
		kind   string
		wheels int
	}{
		{"car", 4},
		{"Motorcycle", 2},
		{"TRUCK", 18},
	}
	for _, tt := range tests {
		v, err := NewVehicle(tt.kind)
		require.NoError(t, err, tt.kind)
		assert.Equal(t, tt.wheels, v.Wheels())
	}

	_, err := NewVehicle("boat")
	assert.ErrorIs(t, err, ErrUnknownVehicle)
}

func TestNotifierDecorators(t *testing.T) {
	fixed := func() time.Time { return time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC) }

	n := BorderNotifier{
		Char: "-",
		Next: TimestampNotifier{Now: fixed, Next: UppercaseNotifier{Next: PlainNotifier{}}},
	}

	got := n.Notify("go")
	assert.Equal(t, "-------------\n[09:30:00] GO\n-------------", got)
}

func TestSensorAdapter(t *testing.T) {
	sensor := &FahrenheitSensor{Reading: 212}
	thermometer := NewSensorAdapter(sensor)

	assert.InDelta(t, 100, thermometer.Celsius(), 1e-9)
	sensor.Reading = -40
	assert.InDelta(t, -40, thermometer.Celsius(), 1e-9)
}
