package styles_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dozer/internal/application/usecase"
	"github.com/bnema/dozer/internal/cli/styles"
	"github.com/bnema/dozer/internal/domain/entity"
)

func TestFormatIdle(t *testing.T) {
	assert.Equal(t, "0s", styles.FormatIdle(0))
	assert.Equal(t, "59s", styles.FormatIdle(59))
	assert.Equal(t, "30m", styles.FormatIdle(1800))
	assert.Equal(t, "1h05m", styles.FormatIdle(3900))
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", styles.FormatBytes(512))
	assert.Equal(t, "1.0 KiB", styles.FormatBytes(1024))
	assert.Equal(t, "64.0 MiB", styles.FormatBytes(64<<20))
}

func TestTabRow(t *testing.T) {
	row := styles.TabRow(usecase.TabView{
		ID:     "0123456789abcdef",
		URL:    "https://example.com",
		Label:  "Example",
		State:  entity.TabStateSuspended,
		Pinned: true,
		Idle:   90 * time.Second,
	})
	assert.Equal(t, "01234567", row[0])
	assert.Equal(t, entity.TabStateSuspended.String()+"*", row[1])
	assert.Equal(t, "1m", row[4])
}

func TestThemeRenderers(t *testing.T) {
	theme := styles.NewTheme()

	out := theme.RenderProfiles(entity.BuiltinProfiles(), entity.ProfileMinimal)
	assert.Contains(t, out, "Performance profiles")
	assert.Contains(t, out, entity.ProfileBalanced)
	assert.Contains(t, out, "● minimal")

	assert.Contains(t, theme.StateBadge(entity.TabStateSuspended, 3), "3 suspended")
	assert.Contains(t, theme.StateBadge(entity.TabStateActive, 1), "1 active")
	assert.Contains(t, theme.RenderEvents(nil), "No lifecycle events")

	out = theme.RenderEvents([]*entity.LifecycleEvent{{
		Kind:      entity.EventTabSuspended,
		TabID:     "tab-1",
		URL:       "https://a",
		OK:        false,
		Detail:    errors.New("target crashed").Error(),
		CreatedAt: time.Now(),
	}})
	require.Contains(t, out, "tab_suspended")
	assert.Contains(t, out, "tab-1")
	assert.Contains(t, out, "target crashed")
	assert.Contains(t, out, "just now")
}
