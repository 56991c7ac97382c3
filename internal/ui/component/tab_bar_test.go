package component

import (
	"context"
	"testing"

	"github.com/bnema/dozer/internal/application/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ port.TabStrip = (*TabBar)(nil)

func TestTabBar_AddSetAndRemove(t *testing.T) {
	ctx := context.Background()
	tb := NewTabBar()

	changes := 0
	tb.SetOnChange(func() { changes++ })

	tb.AddTab("a", "Alpha")
	tb.AddTab("b", "Beta")
	tb.SetForeground("a")
	tb.SetIcon(ctx, "b", "images/suspended.png")
	tb.SetLabel(ctx, "b", "[Suspended] Beta")

	entries := tb.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, TabBarEntry{ID: "a", Label: "Alpha", Foreground: true}, entries[0])
	assert.Equal(t, TabBarEntry{ID: "b", Label: "[Suspended] Beta", Icon: "images/suspended.png"}, entries[1])
	assert.Equal(t, 5, changes)

	tb.SetIcon(ctx, "b", "")
	assert.Empty(t, tb.Icon("b"))

	tb.RemoveTab("a")
	assert.Empty(t, tb.Foreground())
	assert.Len(t, tb.Entries(), 1)
}

func TestTabBar_IgnoresUnknownTabs(t *testing.T) {
	ctx := context.Background()
	tb := NewTabBar()

	tb.SetLabel(ctx, "ghost", "x")
	tb.SetIcon(ctx, "ghost", "y")
	tb.RemoveTab("ghost")

	assert.Empty(t, tb.Label("ghost"))
	assert.Empty(t, tb.Entries())
}

func TestTabBar_AddExistingKeepsPosition(t *testing.T) {
	tb := NewTabBar()
	tb.AddTab("a", "one")
	tb.AddTab("b", "two")
	tb.AddTab("a", "renamed")

	entries := tb.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "a", string(entries[0].ID))
	assert.Equal(t, "renamed", entries[0].Label)
}
