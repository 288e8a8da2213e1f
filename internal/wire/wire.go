// Package wire provides dependency injection for the rocketsim application.
// Everything is constructed once per App and passed down explicitly.
package wire

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"

	cliadapter "github.com/example/rocketsim/internal/adapters/cli"
	"github.com/example/rocketsim/internal/adapters/display"
	"github.com/example/rocketsim/internal/adapters/sqlite"
	"github.com/example/rocketsim/internal/app"
	"github.com/example/rocketsim/internal/config"
	"github.com/example/rocketsim/internal/core/flight"
	"github.com/example/rocketsim/internal/db"
	"github.com/example/rocketsim/internal/logging"
	"github.com/example/rocketsim/internal/metrics"
	"github.com/example/rocketsim/internal/ports/primary"
	"github.com/example/rocketsim/internal/ports/secondary"
)

// Options selects configuration and output streams.
type Options struct {
	// ConfigPath is an explicit config file; empty uses ./rocketsim.yaml if present.
	ConfigPath string
	// Out receives session and panel output. Defaults to stdout.
	Out io.Writer
	// LogOut receives log records. Defaults to stderr.
	LogOut io.Writer
	// Faults overrides the configured random fault injector.
	Faults app.FaultInjector
}

// App is a fully wired simulator for one flight.
type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	Logs     *logging.History
	Metrics  *metrics.FlightMetrics
	Panel    *display.Panel
	System   *app.RocketSystem
	Service  primary.SimulatorService
	Session  *cliadapter.Session
	FlightID string

	database *sql.DB
	// noColor is color.NoColor as found before this App changed it.
	noColor bool
}

// New loads configuration and builds every component.
func New(opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	return NewWithConfig(cfg, opts)
}

// NewWithConfig builds every component from an already loaded configuration.
func NewWithConfig(cfg *config.Config, opts Options) (*App, error) {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	logOut := opts.LogOut
	if logOut == nil {
		logOut = os.Stderr
	}
	noColor := color.NoColor
	if !cfg.Display.Color {
		color.NoColor = true
	}

	logger, history, err := NewLogger(cfg, logOut)
	if err != nil {
		color.NoColor = noColor
		return nil, err
	}

	database, err := db.Open()
	if err != nil {
		color.NoColor = noColor
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	flightID := "FLIGHT-" + uuid.NewString()[:8]
	logger = logger.With("flight", flightID)

	faults := opts.Faults
	if faults == nil {
		faults = app.RandomFaults(cfg.Checks.FaultProbability, nil)
	}

	// Secondary adapters
	journal := sqlite.NewFlightJournal(database, cfg.Telemetry.Retain)
	flightMetrics := metrics.NewFlightMetrics(cfg.Metrics.Namespace)
	panel := display.NewPanel(out, display.Options{Color: cfg.Display.Color})

	system := app.NewRocketSystem(app.RocketSystemOptions{
		Logger:     logger,
		Faults:     faults,
		CheckDelay: cfg.Checks.StepDelay,
	})
	system.AddObserver(app.NewFlightRecorder(journal, flightID))
	system.AddObserver(flightMetrics)
	system.AddObserver(panel)
	system.AddObserver(secondary.StateObserverFunc(func(ctx context.Context, state flight.RocketState) error {
		logger.Debug("state updated", "snapshot", state.String())
		return nil
	}))

	invoker := app.NewCommandInvoker(logger)
	service := app.NewSimulatorService(system, invoker, journal, flightMetrics, history, flightID, logger)

	return &App{
		Config:   cfg,
		Logger:   logger,
		Logs:     history,
		Metrics:  flightMetrics,
		Panel:    panel,
		System:   system,
		Service:  service,
		Session:  cliadapter.NewSession(service, out, logger),
		FlightID: flightID,
		database: database,
		noColor:  noColor,
	}, nil
}

// NewLogger builds the configured logger and its history, for commands that
// need nothing else from the App.
func NewLogger(cfg *config.Config, w io.Writer) (*slog.Logger, *logging.History, error) {
	logger, history, err := logging.New(w, logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, history, nil
}

// Close releases the flight journal and restores the process color setting.
func (a *App) Close() error {
	color.NoColor = a.noColor
	return a.database.Close()
}
