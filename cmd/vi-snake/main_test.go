package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-snake/config"
)

// TestLoadConfigDefaults verifies no flags yields the stock config
func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

// TestLoadConfigFlagsOverrideFile verifies explicit flags win and unset flags keep file values
func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.toml")
	require.NoError(t, os.WriteFile(path, []byte("width = 14\nheight = 11\nmode = \"auto\"\n"), 0o644))

	cfg, err := loadConfig([]string{
		"-config", path,
		"-height", "9",
		"-on-end", "exit",
		"-enemy-warmup", "2s",
		"-sound=false",
		"-seed", "5",
	})
	require.NoError(t, err)

	assert.Equal(t, 14, cfg.Width, "file value kept")
	assert.Equal(t, 9, cfg.Height, "flag overrides file")
	assert.Equal(t, config.ModeAuto, cfg.Mode)
	assert.Equal(t, config.EndExit, cfg.OnEnd)
	assert.Equal(t, 2*time.Second, cfg.Enemy.Warmup.Duration)
	assert.False(t, cfg.Sound)
	assert.Equal(t, uint64(5), cfg.Seed)
}

// TestLoadConfigErrors verifies bad values surface their sentinels
func TestLoadConfigErrors(t *testing.T) {
	_, err := loadConfig([]string{"-mode", "turbo"})
	assert.True(t, errors.Is(err, config.ErrUnknownMode))

	_, err = loadConfig([]string{"-on-end", "never"})
	assert.True(t, errors.Is(err, config.ErrUnknownEndAction))

	_, err = loadConfig([]string{"-width", "2"})
	assert.True(t, errors.Is(err, config.ErrInvalidConfig))

	_, err = loadConfig([]string{"-no-such-flag"})
	assert.Error(t, err)
}
