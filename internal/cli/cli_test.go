package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRoot struct {
	cmd        *cobra.Command
	out        *bytes.Buffer
	errOut     *bytes.Buffer
	configPath string
}

// newTestRoot mirrors the root command of cmd/rocketsim with a quiet config.
func newTestRoot(t *testing.T) *testRoot {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rocketsim.yaml")
	cfg := "checks:\n  step_delay: 0s\n  fault_probability: 0\ndemo:\n  step_delay: 0s\ndisplay:\n  color: false\nlog:\n  level: error\n"
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))

	root := &cobra.Command{Use: "rocketsim", SilenceUsage: true, SilenceErrors: true}
	root.PersistentFlags().String("config", "", "config file")
	root.AddCommand(RunCmd(), MissionCmd(), PatternsCmd(), DemoCmd())

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(errOut)
	return &testRoot{cmd: root, out: out, errOut: errOut, configPath: path}
}

func (r *testRoot) execute(stdin string, args ...string) error {
	r.cmd.SetArgs(append(args, "--config", r.configPath))
	r.cmd.SetIn(strings.NewReader(stdin))
	return r.cmd.ExecuteContext(context.Background())
}

func TestRunCmd(t *testing.T) {
	root := newTestRoot(t)

	err := root.execute("start_checks\nlaunch\nfast_forward 20\nexit\n", "run")

	require.NoError(t, err)
	assert.Contains(t, root.out.String(), "ORBIT ACHIEVED")
	assert.Contains(t, root.out.String(), "Goodbye.")
}

func TestMissionCmd(t *testing.T) {
	root := newTestRoot(t)

	err := root.execute("", "mission")

	require.NoError(t, err)
	assert.Contains(t, root.out.String(), `Mission "orbital demo"`)
	assert.Contains(t, root.out.String(), "ORBIT ACHIEVED")
	assert.Contains(t, root.out.String(), "4. fast forward 60s")
}

func TestMissionCmdMissingScript(t *testing.T) {
	root := newTestRoot(t)

	err := root.execute("", "mission", "--script", filepath.Join(t.TempDir(), "none.yaml"))

	assert.Error(t, err)
}

func TestPatternsCmd(t *testing.T) {
	root := newTestRoot(t)

	require.NoError(t, root.execute("", "patterns", "adapter", "factory"))

	assert.Contains(t, root.out.String(), "Adapter: Fahrenheit sensor")
	assert.Contains(t, root.out.String(), "Factory: vehicles")
	assert.NotContains(t, root.out.String(), "Observer")
	assert.Less(t, strings.Index(root.out.String(), "Adapter"), strings.Index(root.out.String(), "Factory"))
}

func TestPatternsCmdLogsWithoutAFlight(t *testing.T) {
	root := newTestRoot(t)
	require.NoError(t, os.WriteFile(root.configPath, []byte("log:\n  level: debug\n"), 0o644))

	require.NoError(t, root.execute("", "patterns", "strategy"))

	assert.Contains(t, root.errOut.String(), "running demo")
	assert.Contains(t, root.errOut.String(), "pattern=strategy")
	assert.NotContains(t, root.errOut.String(), "flight=")
}

func TestPatternsCmdBadConfig(t *testing.T) {
	root := newTestRoot(t)
	require.NoError(t, os.WriteFile(root.configPath, []byte("checks:\n  fault_probability: 3\n"), 0o644))

	err := root.execute("", "patterns")

	assert.ErrorContains(t, err, "checks.fault_probability")
}

func TestPatternsCmdUnknown(t *testing.T) {
	root := newTestRoot(t)

	err := root.execute("", "patterns", "visitor")

	assert.ErrorContains(t, err, "unknown pattern")
}

func TestDemoCmd(t *testing.T) {
	root := newTestRoot(t)

	require.NoError(t, root.execute("", "demo"))

	for _, want := range []string{"Observer", "Strategy", "Singleton", "Factory", "Decorator", "Adapter", "ORBIT ACHIEVED"} {
		assert.Contains(t, root.out.String(), want)
	}
}
