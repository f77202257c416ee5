package main

import (
	"bytes"
	"flag"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(flag.NewFlagSet("mageduel", flag.ContinueOnError), nil)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.TurnDelay)
	assert.True(t, cfg.Color)
	assert.Empty(t, cfg.ProfileMode)
	assert.Equal(t, "./prof", cfg.ProfileDir)
}

func TestParseConfigEnvAndFlags(t *testing.T) {
	t.Setenv("MAGEDUEL_TURN_DELAY", "500ms")
	t.Setenv("MAGEDUEL_COLOR", "false")

	cfg, err := ParseConfig(flag.NewFlagSet("mageduel", flag.ContinueOnError), nil)
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, cfg.TurnDelay)
	assert.False(t, cfg.Color)

	cfg, err = ParseConfig(flag.NewFlagSet("mageduel", flag.ContinueOnError), []string{"-delay", "0s", "-color=true"})
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), cfg.TurnDelay)
	assert.True(t, cfg.Color)
}

func TestParseConfigErrors(t *testing.T) {
	t.Setenv("MAGEDUEL_TURN_DELAY", "soon")
	_, err := ParseConfig(flag.NewFlagSet("mageduel", flag.ContinueOnError), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")

	t.Setenv("MAGEDUEL_TURN_DELAY", "1s")
	_, err = ParseConfig(flag.NewFlagSet("mageduel", flag.ContinueOnError), []string{"-delay", "-1s"})
	assert.Error(t, err)

	_, err = ParseConfig(flag.NewFlagSet("mageduel", flag.ContinueOnError), []string{"-profile.mode", "gpu"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown profile mode "gpu"`)
}

func TestLoadEnvFile(t *testing.T) {
	t.Setenv("MAGEDUEL_TURN_DELAY", "")
	os.Unsetenv("MAGEDUEL_TURN_DELAY")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("MAGEDUEL_TURN_DELAY=250ms\n"), 0600))

	var logs bytes.Buffer
	loadEnvFile(log.New(&logs, "", 0), path)
	assert.Contains(t, logs.String(), "loaded")

	cfg, err := ParseConfig(flag.NewFlagSet("mageduel", flag.ContinueOnError), nil)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.TurnDelay)
}

func TestLoadEnvFileMissing(t *testing.T) {
	var logs bytes.Buffer
	loadEnvFile(log.New(&logs, "", 0), filepath.Join(t.TempDir(), "nope.env"))
	assert.Empty(t, logs.String())
}
