package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RunCmd returns the interactive simulator command
func RunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the interactive launch simulator",
		Long: `Start an interactive session that reads one command per line.

Commands:
  start_checks            run pre-launch checks
  launch                  lift off (after checks)
  fast_forward <seconds>  advance the flight
  status                  print the rocket state
  history, telemetry [n], metrics, log, help, exit

Invalid commands are reported and the session continues.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer a.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "Rocket launch simulator, flight %s. Type 'help' for commands.\n", a.FlightID)
			return a.Session.Run(cmd.Context(), cmd.InOrStdin())
		},
	}
}
