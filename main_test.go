package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termnav/internal/config"
)

func TestRootCommandLayout(t *testing.T) {
	cmd := newRootCommand()
	cmd.InitDefaultHelpCmd()

	for _, name := range []string{"router", "screen", "tea", "keys", "help"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}

	for _, flag := range []string{"config", "keymap", "input-mode", "height", "poll", "log-file", "log-level"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), flag)
	}
}

func TestApplyFlagsOverridesOnlyChangedValues(t *testing.T) {
	opts := &options{}
	cmd := buildRootCommand(opts)
	require.NoError(t, cmd.ParseFlags([]string{"--keymap", "vk", "--height", "12"}))

	cfg := config.DefaultConfig()
	applyFlags(cmd, opts, cfg)

	assert.Equal(t, "vk", cfg.Input.Keymap)
	assert.Equal(t, 12, cfg.UI.ViewportHeight)
	assert.Equal(t, "auto", cfg.Input.Mode)
	assert.Equal(t, 100, cfg.Input.PollIntervalMs)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfigExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "termnav.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntitle = \"demo\"\n"), 0644))

	cfg, got, err := loadConfig(&options{configPath: path})
	require.NoError(t, err)
	assert.Equal(t, path, got)
	assert.Equal(t, "demo", cfg.UI.Title)
	assert.Contains(t, cfg.Screens, config.ScreenRouter)

	_, _, err = loadConfig(&options{configPath: filepath.Join(dir, "missing.toml")})
	assert.Error(t, err, "an explicit config file must exist")
}

func TestSetupLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "termnav.log")

	log, closeLog, err := setupLogging(config.LogSettings{File: path, Level: "debug"})
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	log.Info("hello")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")

	_, _, err = setupLogging(config.LogSettings{Level: "loud"})
	assert.Error(t, err)
}

func TestUnknownScreenFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "termnav.toml")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	cmd := newRootCommand()
	cmd.SetArgs([]string{"screen", "nope", "--config", path, "--log-file", filepath.Join(dir, "termnav.log")})

	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown screen "nope"`)
}

func TestInvalidFlagValueFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "termnav.toml")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	cmd := newRootCommand()
	cmd.SetArgs([]string{"keys", "--config", path, "--keymap", "qwerty"})

	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "qwerty")
}

func TestLongHelpNamesQuitKeys(t *testing.T) {
	cmd := newRootCommand()
	assert.Contains(t, cmd.Long, "q or Ctrl-C quits")
	assert.NotContains(t, cmd.Long, "Esc")
}

func TestContentHeight(t *testing.T) {
	assert.Equal(t, 10, contentHeight(10, 40), "fixed viewport is the content height")
	assert.Equal(t, 1, contentHeight(1, 40))
	assert.Equal(t, 35, contentHeight(0, 40), "terminal height minus chrome")
	assert.Equal(t, 1, contentHeight(0, 3))
}
