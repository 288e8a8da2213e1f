package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/rocketsim/internal/script"
)

// MissionCmd returns the scripted mission command
func MissionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mission",
		Short: "Fly a scripted mission",
		Long: `Run a mission script: a YAML file with a name and a list of simulator
commands, executed in order as if typed.

Examples:
  rocketsim mission                          # built-in orbital demo
  rocketsim mission --script hop.yaml        # custom script
  rocketsim mission --delay 0s               # no pause between steps`,
		Args: cobra.NoArgs,
		RunE: runMission,
	}

	cmd.Flags().String("script", "", "Mission script (YAML); defaults to the built-in mission")
	cmd.Flags().Duration("delay", -1, "Pause between steps (defaults to demo.step_delay)")

	return cmd
}

func runMission(cmd *cobra.Command, args []string) error {
	scriptPath, _ := cmd.Flags().GetString("script")
	delay, _ := cmd.Flags().GetDuration("delay")

	mission := script.Default()
	if scriptPath != "" {
		m, err := script.Load(scriptPath)
		if err != nil {
			return err
		}
		mission = m
	}

	a, err := newApp(cmd, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer a.Close()

	if delay < 0 {
		delay = a.Config.Demo.StepDelay
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Mission %q, flight %s (%d steps)\n", mission.Name, a.FlightID, len(mission.Steps))
	a.Logger.Info("scripted mission started", "mission", mission.Name, "steps", len(mission.Steps))
	return a.Session.RunScript(cmd.Context(), mission.Steps, delay)
}
