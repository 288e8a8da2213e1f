package script

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/rocketsim/internal/core/command"
)

func TestDefault(t *testing.T) {
	m := Default()

	assert.Equal(t, "orbital demo", m.Name)
	assert.Equal(t, []string{
		"start_checks",
		"launch",
		"fast_forward 10",
		"status",
		"fast_forward 60",
		"status",
		"history",
	}, m.Steps)

	for _, step := range m.Steps {
		_, err := command.Parse(step)
		assert.NoError(t, err, step)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantName  string
		wantSteps []string
		wantErr   error
	}{
		{
			name:      "named",
			input:     "name: short hop\nsteps: [start_checks, launch]\n",
			wantName:  "short hop",
			wantSteps: []string{"start_checks", "launch"},
		},
		{
			name:      "unnamed with blank steps",
			input:     "steps:\n  - status\n  - '  '\n  - ' help '\n",
			wantName:  "unnamed mission",
			wantSteps: []string{"status", "help"},
		},
		{
			name:    "no steps",
			input:   "name: empty\n",
			wantErr: ErrNoSteps,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse([]byte(tt.input))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, m.Name)
			assert.Equal(t, tt.wantSteps, m.Steps)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte("steps: {not: [a list"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mission.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steps: [start_checks]\n"), 0o644))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"start_checks"}, m.Steps)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
