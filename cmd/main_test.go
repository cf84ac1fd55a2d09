package main

import (
	"testing"
	"time"

	"gameclock/internal/core/clock"
	"gameclock/internal/core/screen"
	"gameclock/internal/core/tick"

	"github.com/stretchr/testify/require"
)

func TestTrayStatus(t *testing.T) {
	require.Equal(t, "configuring", trayStatus(screen.View{Kind: screen.KindSettings}))
	require.Equal(t, "clocks stopped", trayStatus(screen.View{
		Kind:   screen.KindPause,
		Clocks: []clock.Status{{Index: 0, Remaining: time.Minute}},
	}))
	require.Equal(t, "clock 2 00:01:05", trayStatus(screen.View{
		Kind: screen.KindClock,
		Clocks: []clock.Status{
			{Index: 0, Remaining: time.Minute},
			{Index: 1, Remaining: 65 * time.Second, Running: true},
		},
	}))
}

func TestRootCommandFlags(t *testing.T) {
	command := newRootCommand()
	require.NoError(t, command.ParseFlags([]string{"--config", "clocks.yaml", "--debug", "--tick", "20ms"}))

	config, err := command.Flags().GetString("config")
	require.NoError(t, err)
	require.Equal(t, "clocks.yaml", config)

	debug, err := command.Flags().GetBool("debug")
	require.NoError(t, err)
	require.True(t, debug)

	interval, err := command.Flags().GetDuration("tick")
	require.NoError(t, err)
	require.Equal(t, 20*time.Millisecond, interval)

	fresh := newRootCommand()
	interval, err = fresh.Flags().GetDuration("tick")
	require.NoError(t, err)
	require.Equal(t, tick.DefaultInterval, interval)
}
