//go:build e2e && unix

package main

import (
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestApplicationExit(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp("--open=false"))
	require.True(t, tf.Ready(), "Should render the host screen")

	require.NoError(t, tf.Quit())
	if err := tf.Wait(1500 * time.Millisecond); err != nil {
		t.Logf("'q' didn't work, using Ctrl+C: %v", err)
		require.NoError(t, tf.SendCtrlC())
		if err := tf.Wait(750 * time.Millisecond); err != nil {
			tf.DumpTailOnFail(t, "exit-failure", 4096)
			t.Fatalf("Application did not exit: %v", err)
		}
	}
}

func TestHelpCommand(t *testing.T) {
	t.Parallel()

	out, err := exec.Command(binPath, "--help").CombinedOutput()
	require.NoError(t, err, "Help command should run without error")

	output := string(out)
	require.True(t, strings.Contains(output, "Usage"), "Help should contain usage")
	require.Contains(t, output, "--gesture")
	require.Contains(t, output, "search")
	require.Contains(t, output, "categories")
}
