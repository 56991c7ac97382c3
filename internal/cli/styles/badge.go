package styles

import (
	"fmt"
	"time"

	"github.com/bnema/dozer/internal/domain/entity"
)

// StateBadge renders the number of tabs in a state, e.g. "3 suspended".
func (t *Theme) StateBadge(state entity.TabState, n int) string {
	text := fmt.Sprintf("%d %s", n, state)
	if state == entity.TabStateSuspended {
		return t.AsleepBadge.Render(text)
	}
	return t.ActiveBadge.Render(text)
}

// OKBadge renders the outcome of a lifecycle event.
func (t *Theme) OKBadge(ok bool) string {
	if ok {
		return t.SuccessStyle.Render("✓")
	}
	return t.ErrorStyle.Render("✗")
}

// ProfileBadge renders the applied profile name.
func (t *Theme) ProfileBadge(name string) string {
	if name == "" {
		name = "none"
	}
	return t.Badge.Render(name)
}

// RelativeTime formats a time as a human-readable relative string.
func RelativeTime(tm time.Time) string {
	diff := time.Since(tm)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return tm.Local().Format("2006-01-02")
	}
}

// FormatIdle formats an idle duration in seconds as a compact string.
func FormatIdle(seconds float64) string {
	d := time.Duration(seconds) * time.Second
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	default:
		return fmt.Sprintf("%dh%02dm", int(d.Hours()), int(d.Minutes())%60)
	}
}

// FormatBytes formats a byte count with a binary unit.
func FormatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
