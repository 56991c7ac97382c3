package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogRotator_RotatesWhenFull(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(RotatorConfig{Dir: dir, MaxSizeMB: 1, MaxBackups: 5})
	require.NoError(t, err)
	r.maxSize = 16 // force rotation with tiny writes
	t.Cleanup(func() { _ = r.Close() })

	_, err = r.Write([]byte("0123456789\n"))
	require.NoError(t, err)
	_, err = r.Write([]byte("abcdefghij\n"))
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var backups int
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), defaultLogFileName+".") {
			backups++
		}
	}
	assert.Equal(t, 1, backups)

	current, err := os.ReadFile(filepath.Join(dir, defaultLogFileName))
	require.NoError(t, err)
	assert.Equal(t, "abcdefghij\n", string(current))
}

func TestLogRotator_CleanupPrunesByAgeAndCount(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(RotatorConfig{Dir: dir, MaxBackups: 2, MaxAgeDays: 7})
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	now := time.Now()
	ages := map[string]time.Duration{
		"expired": 10 * 24 * time.Hour,
		"oldest":  3 * time.Hour,
		"middle":  2 * time.Hour,
		"newest":  time.Hour,
	}
	for name, age := range ages {
		path := filepath.Join(dir, defaultLogFileName+"."+name)
		require.NoError(t, os.WriteFile(path, []byte(name), 0o600))
		require.NoError(t, os.Chtimes(path, now.Add(-age), now.Add(-age)))
	}

	r.cleanup()

	var left []string
	for _, b := range r.backups() {
		left = append(left, strings.TrimPrefix(filepath.Base(b.path), defaultLogFileName+"."))
	}
	assert.Equal(t, []string{"middle", "newest"}, left)
}

func TestNewWithFile_DisabledWithoutStderrIsNop(t *testing.T) {
	logger, cleanup, err := NewWithFile(DefaultConfig(), FileConfig{})
	require.NoError(t, err)
	require.NotNil(t, cleanup)
	cleanup()
	assert.Equal(t, "disabled", logger.GetLevel().String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "debug", ParseLevel("DEBUG").String())
	assert.Equal(t, "warn", ParseLevel("warning").String())
	assert.Equal(t, "info", ParseLevel("nonsense").String())
}
