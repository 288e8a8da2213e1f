package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/rocketsim/internal/patterns"
	"github.com/example/rocketsim/internal/script"
)

// PatternsCmd returns the pattern demo command
func PatternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns [name...]",
		Short: "Run standalone design pattern demos",
		Long: fmt.Sprintf(`Run the named pattern demos in the order given, or all of them.

Available: %s`, strings.Join(patterns.Names(), ", ")),
		RunE: func(cmd *cobra.Command, args []string) error {
			demos, err := patterns.Select(args)
			if err != nil {
				return err
			}

			logger, err := newLogger(cmd)
			if err != nil {
				return err
			}

			return runDemos(cmd.Context(), cmd.OutOrStdout(), logger, demos, 0)
		},
	}
}

// DemoCmd returns the full demonstration command
func DemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run every pattern demo, then the built-in mission",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer a.Close()

			delay := a.Config.Demo.StepDelay
			if err := runDemos(cmd.Context(), cmd.OutOrStdout(), a.Logger, patterns.Catalog(), delay); err != nil {
				return err
			}

			mission := script.Default()
			fmt.Fprintf(cmd.OutOrStdout(), "\n=== Rocket launch: %s ===\n", mission.Name)
			return a.Session.RunScript(cmd.Context(), mission.Steps, delay)
		},
	}
}

func runDemos(ctx context.Context, out io.Writer, logger *slog.Logger, demos []patterns.Demo, delay time.Duration) error {
	for i, d := range demos {
		if i > 0 && delay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
		logger.Debug("running demo", "pattern", d.Name)
		if err := d.Run(ctx, out, logger); err != nil {
			return fmt.Errorf("%s demo: %w", d.Name, err)
		}
	}
	return nil
}
