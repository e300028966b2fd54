package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runConfigWith runs the config command with the given flag values and
// returns what it printed.
func runConfigWith(t *testing.T, path, difficulty string, defaults bool) string {
	t.Helper()
	oldPath, oldDiff, oldDefaults := flagConfig, flagDifficulty, flagDefaults
	t.Cleanup(func() {
		flagConfig, flagDifficulty, flagDefaults = oldPath, oldDiff, oldDefaults
	})
	flagConfig, flagDifficulty, flagDefaults = path, difficulty, defaults

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	require.NoError(t, runConfig(cmd, nil))
	return out.String()
}

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blocks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func TestConfigKeepsFileProgression(t *testing.T) {
	path := writeConfig(t, "difficulty:\n  enabled: false\n")

	for _, difficulty := range []string{"", "normal"} {
		out := runConfigWith(t, path, difficulty, false)
		assert.Contains(t, out, "difficulty:\n    enabled: false", "difficulty %q", difficulty)
	}
}

func TestConfigAppliesPreset(t *testing.T) {
	path := writeConfig(t, "rules:\n  freeze_delay: 0.4\n")

	out := runConfigWith(t, path, "hard", false)
	assert.Contains(t, out, "freeze_delay: 0.15")

	out = runConfigWith(t, path, "fixed", false)
	assert.Contains(t, out, "freeze_delay: 0.4")
	assert.Contains(t, out, "enabled: false")
}

func TestConfigRejectsUnknownPreset(t *testing.T) {
	t.Cleanup(func() { flagDifficulty = "" })
	flagDifficulty = "brutal"
	assert.Error(t, runConfig(&cobra.Command{}, nil))
}

func TestConfigPrintsDefaults(t *testing.T) {
	out := runConfigWith(t, "", "", true)
	assert.Contains(t, out, "# Falling blocks configuration.")
	assert.Contains(t, out, "randomizer: uniform")
}
