//go:build e2e && unix

package main

import (
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCustomScreenFromConfig(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	tf.WriteFile("notes.txt", "first note\nsecond note\n")
	path := tf.WriteConfig(`
[ui]
title = "ops"

[[screens.deploy.pages]]
id = "targets"
title = "Targets"

[[screens.deploy.pages.sections]]
label = "Staging"
text = "staging.example.com"

[[screens.deploy.pages.sections]]
label = "Notes"
file = "notes.txt"
`)

	require.NoError(t, tf.StartApp("screen", "deploy", "--config", path))
	require.True(t, tf.SeeFramePlain("ops - Targets > Staging"))
	require.True(t, tf.SeeFramePlain("staging.example.com"))

	tf.Press(KeyDown)
	require.True(t, tf.SeeFramePlain("second note"), "file sections are read relative to the config")

	require.NoError(t, tf.Quit())
	exited, err := tf.WaitExit(2 * time.Second)
	require.True(t, exited)
	require.NoError(t, err)
}

func TestInvalidConfigExitsWithError(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	path := tf.WriteConfig(`
[input]
keymap = "qwerty"
`)

	require.NoError(t, tf.StartApp("--config", path))
	require.True(t, tf.SeePlain("qwerty"), "error should name the bad value")

	exited, err := tf.WaitExit(2 * time.Second)
	require.True(t, exited)
	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 1, exitErr.ExitCode())
}
