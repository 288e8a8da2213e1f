package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/example/rocketsim/internal/cli"
	"github.com/example/rocketsim/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "rocketsim",
		Short:   "rocketsim - rocket launch simulator",
		Version: version.String(),
		Long: `rocketsim simulates a two-stage rocket from pre-launch checks to orbit.
Drive it interactively, fly a scripted mission, or run the pattern demos.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("config", "", "Config file (default ./rocketsim.yaml)")

	rootCmd.AddCommand(cli.RunCmd())
	rootCmd.AddCommand(cli.MissionCmd())
	rootCmd.AddCommand(cli.DemoCmd())
	rootCmd.AddCommand(cli.PatternsCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
