package entity_test

import (
	"testing"

	"github.com/bnema/dozer/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinProfiles(t *testing.T) {
	byName := make(map[string]entity.PerformanceProfile)
	for _, p := range entity.BuiltinProfiles() {
		byName[p.Name()] = p
	}
	require.Len(t, byName, 3)

	balanced := byName[entity.ProfileBalanced]
	assert.True(t, balanced.WebGL())
	assert.True(t, balanced.JavaScript())
	assert.True(t, balanced.Images())
	assert.True(t, balanced.Animations())

	perf := byName[entity.ProfilePerformance]
	assert.False(t, perf.WebGL())
	assert.True(t, perf.JavaScript())
	assert.True(t, perf.Images())
	assert.False(t, perf.Animations())

	for c, v := range byName[entity.ProfileMinimal].Flags() {
		assert.False(t, v, "minimal profile should disable %s", c)
	}
}

func TestNewPerformanceProfile_RequiresName(t *testing.T) {
	_, err := entity.NewPerformanceProfile("  ", true, true, true, true)
	require.ErrorIs(t, err, entity.ErrInvalidProfile)

	p, err := entity.NewPerformanceProfile("reader", false, true, false, false)
	require.NoError(t, err)
	assert.Equal(t, "reader", p.Name())
	assert.Len(t, p.Flags(), 4)
	assert.True(t, p.Flag(entity.CapabilityJavaScript))
	assert.False(t, p.Flag(entity.Capability("bogus")))
}

func TestParseCapability(t *testing.T) {
	c, err := entity.ParseCapability(" Images ")
	require.NoError(t, err)
	assert.Equal(t, entity.CapabilityImages, c)

	_, err = entity.ParseCapability("plugins")
	assert.Error(t, err)
}
