package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/example/rocketsim/internal/config"
	"github.com/example/rocketsim/internal/wire"
)

func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	return path
}

// newLogger loads the configuration and builds only the logger, for commands
// that do not fly a rocket.
func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	cfg, err := config.Load(configPath(cmd))
	if err != nil {
		return nil, err
	}
	logger, _, err := wire.NewLogger(cfg, cmd.ErrOrStderr())
	return logger, err
}

// newApp wires a simulator using the --config flag inherited from the root command.
func newApp(cmd *cobra.Command, out io.Writer) (*wire.App, error) {
	return wire.New(wire.Options{
		ConfigPath: configPath(cmd),
		Out:        out,
		LogOut:     cmd.ErrOrStderr(),
	})
}
