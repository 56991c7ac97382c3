package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dozer/internal/domain/build"
	"github.com/bnema/dozer/internal/domain/entity"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("DOZER_LOG_LEVEL", "error")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	app = nil
	eventsLimit, eventsPruneDays = 0, 0
	configForce, configSchemaOutput = false, ""
	runTUI = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		app = nil
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestConfigCommands(t *testing.T) {
	root := isolateXDG(t)
	configFile := filepath.Join(root, "config", "dozer", "config.toml")

	out, err := execute(t, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, configFile+"\n", out)

	out, err = execute(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote")
	data, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[lifecycle]")

	out, err = execute(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "already exists")

	out, err = execute(t, "config", "init", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote")

	out, err = execute(t, "config", "check")
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")

	out, err = execute(t, "config", "schema")
	require.NoError(t, err)
	assert.Contains(t, out, `"$id"`)
	assert.Contains(t, out, "idle_threshold")

	schemaFile := filepath.Join(root, "schema.json")
	_, err = execute(t, "config", "schema", "--output", schemaFile)
	require.NoError(t, err)
	assert.FileExists(t, schemaFile)
}

func TestConfigCheck_Invalid(t *testing.T) {
	root := isolateXDG(t)
	dir := filepath.Join(root, "config", "dozer")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[lifecycle]
tick_interval = "2h"
idle_threshold = "30m"
`), 0o644))

	out, err := execute(t, "config", "check")
	require.Error(t, err)
	assert.Contains(t, out, "tick_interval")
}

func TestProfilesCommands(t *testing.T) {
	isolateXDG(t)

	out, err := execute(t, "profiles")
	require.NoError(t, err)
	assert.Contains(t, out, "● balanced")
	assert.Contains(t, out, entity.ProfilePerformance)

	out, err = execute(t, "profiles", "use", "Minimal")
	require.NoError(t, err)
	assert.Contains(t, out, "minimal")

	out, err = execute(t, "profiles")
	require.NoError(t, err)
	assert.Contains(t, out, "● minimal")

	_, err = execute(t, "profiles", "use", "turbo")
	assert.ErrorIs(t, err, entity.ErrUnknownProfile)
}

func TestEventsCommands(t *testing.T) {
	isolateXDG(t)

	out, err := execute(t, "events", "--limit", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "No lifecycle events recorded.")

	out, err = execute(t, "events", "prune", "--days", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "removed 0 events older than 1 days")
}

func TestVersionCommand(t *testing.T) {
	isolateXDG(t)
	SetBuildInfo(build.Info{Version: "v1.2.3", Commit: "abc1234", GoVersion: "go1.25.3"})
	t.Cleanup(func() { SetBuildInfo(build.Info{}) })

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "v1.2.3")
	assert.Contains(t, out, "abc1234")
	assert.Nil(t, GetApp())
}
