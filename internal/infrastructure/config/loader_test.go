package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

func TestSetLifecycleDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "1m0s", mgr.viper.GetString("lifecycle.tick_interval"))
	assert.Equal(t, "30m0s", mgr.viper.GetString("lifecycle.idle_threshold"))
	assert.Equal(t, "about:blank", mgr.viper.GetString("lifecycle.blank_url"))
	assert.Equal(t, "balanced", mgr.viper.GetString("performance.profile"))
	assert.Equal(t, 3, mgr.viper.GetInt("engine.reclaim_workers"))
}

func TestManagerLoad_CreatesDefaultConfig(t *testing.T) {
	root := isolateXDG(t)
	dir := filepath.Join(root, "config", "dozer")

	mgr, err := NewManagerWithDir(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	_, err = os.Stat(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)

	cfg := mgr.Get()
	assert.Equal(t, 60*time.Second, cfg.Lifecycle.TickInterval.Std())
	assert.Equal(t, 1800*time.Second, cfg.Lifecycle.IdleThreshold.Std())
	assert.Equal(t, "[Suspended] ", cfg.Lifecycle.SuspendedLabelPrefix)
	assert.Equal(t, "balanced", cfg.Performance.Profile)
	assert.Equal(t, filepath.Join(root, "data", "dozer", "dozer.sqlite"), cfg.Database.Path)
	assert.Equal(t, filepath.Join(dir, "config.toml"), mgr.GetConfigFile())
}

func TestManagerLoad_FileAndEnvOverrides(t *testing.T) {
	isolateXDG(t)
	dir := t.TempDir()
	content := `
[lifecycle]
tick_interval = "30s"
idle_threshold = "10m"
exempt_pinned = true

[performance]
profile = "Reader"

[performance.profiles.reader]
webgl = false
javascript = true
images = false
animations = false
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))
	t.Setenv("DOZER_LOG_LEVEL", "debug")
	t.Setenv("DOZER_EVENTS_MAX_LISTED", "7")

	mgr, err := NewManagerWithDir(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, 30*time.Second, cfg.Lifecycle.TickInterval.Std())
	assert.Equal(t, 10*time.Minute, cfg.Lifecycle.IdleThreshold.Std())
	assert.True(t, cfg.Lifecycle.ExemptPinned)
	assert.Equal(t, "reader", cfg.Performance.Profile)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 7, cfg.Events.MaxListed)
	assert.Equal(t, "about:blank", cfg.Lifecycle.BlankURL)

	profiles, err := cfg.Performance.PerformanceProfiles()
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "reader", profiles[0].Name())
	assert.True(t, profiles[0].JavaScript())
	assert.False(t, profiles[0].Images())
}

func TestManagerLoad_RejectsInvalidConfig(t *testing.T) {
	isolateXDG(t)
	dir := t.TempDir()
	content := `
[lifecycle]
tick_interval = "2h"
idle_threshold = "1h"

[performance]
profile = "turbo"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))

	mgr, err := NewManagerWithDir(dir)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lifecycle.tick_interval")
	assert.Contains(t, err.Error(), "turbo")
}

func TestManagerLoad_RejectsBadDuration(t *testing.T) {
	isolateXDG(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[lifecycle]\ntick_interval = \"soon\"\n"), 0o644))

	mgr, err := NewManagerWithDir(dir)
	require.NoError(t, err)
	assert.Error(t, mgr.Load())
}

func TestManagerReload_NotifiesCallbacks(t *testing.T) {
	isolateXDG(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[lifecycle]\nidle_threshold = \"20m\"\n"), 0o644))

	mgr, err := NewManagerWithDir(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var got *Config
	mgr.OnConfigChange(func(c *Config) { got = c })

	require.NoError(t, os.WriteFile(path, []byte("[lifecycle]\nidle_threshold = \"5m\"\n"), 0o644))
	require.NoError(t, mgr.Reload())

	require.NotNil(t, got)
	assert.Equal(t, 5*time.Minute, got.Lifecycle.IdleThreshold.Std())
	assert.Equal(t, 5*time.Minute, mgr.Get().Lifecycle.IdleThreshold.Std())

	// Rewriting the same values is not a change.
	got = nil
	require.NoError(t, os.WriteFile(path, []byte("[lifecycle]\nidle_threshold = \"5m\"\n"), 0o644))
	require.NoError(t, mgr.Reload())
	assert.Nil(t, got)

	// A broken edit keeps the previous configuration.
	got = nil
	require.NoError(t, os.WriteFile(path, []byte("[lifecycle]\nidle_threshold = \"-1m\"\n"), 0o644))
	assert.Error(t, mgr.Reload())
	assert.Nil(t, got)
	assert.Equal(t, 5*time.Minute, mgr.Get().Lifecycle.IdleThreshold.Std())
}

func TestManagerGet_ReturnsCopy(t *testing.T) {
	isolateXDG(t)
	mgr, err := NewManagerWithDir(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Performance.Profiles["x"] = ProfileConfig{}
	cfg.Lifecycle.BlankURL = "changed"

	fresh := mgr.Get()
	assert.NotContains(t, fresh.Performance.Profiles, "x")
	assert.Equal(t, "about:blank", fresh.Lifecycle.BlankURL)
}
