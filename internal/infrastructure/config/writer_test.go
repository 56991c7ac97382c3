package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConfigOrdered(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Performance.Profiles = map[string]ProfileConfig{"reader": {JavaScript: true}}

	require.NoError(t, WriteConfigOrdered(cfg, configPath))

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)

	var sections []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			sections = append(sections, strings.Trim(line, "[]"))
		}
	}
	for i := 1; i < len(sections); i++ {
		assert.LessOrEqual(t, sections[i-1], sections[i], "sections not sorted")
	}

	assert.True(t, strings.HasPrefix(string(content), "#:schema "+schemaID))
	assert.Contains(t, string(content), "tick_interval = '1m0s'")
	assert.Contains(t, string(content), "idle_threshold = '30m0s'")

	var decoded Config
	require.NoError(t, toml.Unmarshal(content, &decoded))
	assert.Equal(t, cfg.Lifecycle, decoded.Lifecycle)
	assert.Equal(t, cfg.Performance.Profiles, decoded.Performance.Profiles)
}

func TestWriteConfigOrdered_NilConfig(t *testing.T) {
	assert.Error(t, WriteConfigOrdered(nil, filepath.Join(t.TempDir(), "x.toml")))
}

func TestSortTOMLSections(t *testing.T) {
	input := `[performance]
profile = 'balanced'

[lifecycle]
blank_url = 'about:blank'

[engine]
headless = true
`
	expected := `[engine]
headless = true

[lifecycle]
blank_url = 'about:blank'

[performance]
profile = 'balanced'
`
	assert.Equal(t, expected, sortTOMLSections(input))
}
