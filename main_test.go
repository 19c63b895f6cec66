package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/yardwalk/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags(t *testing.T) {
	t.Helper()
	window, player, debug, cli := *config.C, config.Player, config.Debug, CLI
	t.Cleanup(func() {
		*config.C = window
		config.Player = player
		config.Debug = debug
		CLI = cli
	})
}

func TestApplyFlags(t *testing.T) {
	resetFlags(t)
	path := filepath.Join(t.TempDir(), "yard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player:\n  walkSpeed: 6\n"), 0o600))

	CLI.Config = path
	CLI.Width = 800
	CLI.Debug = true
	require.NoError(t, applyFlags())

	assert.Equal(t, 6.0, config.Player.WalkSpeed)
	assert.Equal(t, 800, config.C.Width)
	assert.True(t, config.Debug.Overlay)
}

func TestApplyFlagsReportsBadConfig(t *testing.T) {
	resetFlags(t)
	path := filepath.Join(t.TempDir(), "yard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player:\n  groundedEpsilon: 0\n"), 0o600))

	CLI.Config = path
	CLI.Width = 800
	err := applyFlags()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.NotEqual(t, 800, config.C.Width, "flags are not applied after a failed load")
}
