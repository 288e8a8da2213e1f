package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/rocketsim/internal/core/command"
	"github.com/example/rocketsim/internal/core/flight"
)

func TestCommandGuardsFollowStatus(t *testing.T) {
	system, _ := newTestSystem(NoFaults())
	ctx := context.Background()

	checks := NewStartChecksCommand(system)
	launch := NewLaunchCommand(system)
	forward := NewFastForwardCommand(system, 3)

	tests := []struct {
		name        string
		advance     func()
		wantChecks  bool
		wantLaunch  bool
		wantForward bool
	}{
		{name: "on the pad", advance: func() {}, wantChecks: true},
		{name: "ready", advance: func() { require.NoError(t, checks.Execute(ctx)) }, wantLaunch: true},
		{name: "in flight", advance: func() { require.NoError(t, launch.Execute(ctx)) }, wantForward: true},
		{name: "in orbit", advance: func() { require.NoError(t, system.AdvanceTime(ctx, 100)) }},
	}

	for _, tt := range tests {
		tt.advance()
		assert.Equal(t, tt.wantChecks, checks.CanExecute(), "%s: start_checks", tt.name)
		assert.Equal(t, tt.wantLaunch, launch.CanExecute(), "%s: launch", tt.name)
		assert.Equal(t, tt.wantForward, forward.CanExecute(), "%s: fast_forward", tt.name)
	}
}

func TestFastForwardRejectsNonPositiveDuration(t *testing.T) {
	system, _ := newTestSystem(NoFaults())
	ctx := context.Background()
	require.NoError(t, system.PerformPreLaunchChecks(ctx))
	require.NoError(t, system.Launch(ctx))

	cmd := NewFastForwardCommand(system, 0)

	assert.False(t, cmd.CanExecute())
	assert.Contains(t, cmd.Guard().Reason, "positive")
}

func TestCommandDescriptions(t *testing.T) {
	system, _ := newTestSystem(NoFaults())

	assert.Equal(t, "start pre-launch checks", NewStartChecksCommand(system).Description())
	assert.Equal(t, "launch", NewLaunchCommand(system).Description())
	assert.Equal(t, "fast forward 42s", NewFastForwardCommand(system, 42).Description())
}

func TestNewCommand(t *testing.T) {
	system, _ := newTestSystem(NoFaults())

	tests := []struct {
		req     command.Request
		want    string
		wantErr bool
	}{
		{req: command.Request{Kind: command.KindStartChecks}, want: "start pre-launch checks"},
		{req: command.Request{Kind: command.KindLaunch}, want: "launch"},
		{req: command.Request{Kind: command.KindFastForward, Seconds: 7}, want: "fast forward 7s"},
		{req: command.Request{Kind: command.KindStatus}, wantErr: true},
	}

	for _, tt := range tests {
		cmd, err := NewCommand(system, tt.req)
		if tt.wantErr {
			var cmdErr *flight.InvalidCommandError
			assert.ErrorAs(t, err, &cmdErr)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, cmd.Description())
	}
}
