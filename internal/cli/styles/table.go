package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dozer/internal/application/usecase"
	"github.com/bnema/dozer/internal/domain/entity"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.Text).
		Background(theme.Raised).
		Bold(true)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// TabTableColumns returns columns for the tab monitor.
func TabTableColumns() []table.Column {
	return []table.Column{
		{Title: "ID", Width: 10},
		{Title: "State", Width: 10},
		{Title: "Label", Width: 30},
		{Title: "URL", Width: 36},
		{Title: "Idle", Width: 8},
	}
}

// TabRow converts a tab view to a table row. The id column is truncated for
// display; callers keep the full id next to the row index.
func TabRow(v usecase.TabView) table.Row {
	id := string(v.ID)
	if len(id) > 8 {
		id = id[:8]
	}
	state := v.State.String()
	if v.Pinned {
		state += "*"
	}
	return table.Row{id, state, v.Label, v.URL, FormatIdle(v.Idle.Seconds())}
}

// ProfileTableColumns returns columns for the profile list.
func ProfileTableColumns() []table.Column {
	return []table.Column{
		{Title: "Profile", Width: 14},
		{Title: "WebGL", Width: 7},
		{Title: "JS", Width: 7},
		{Title: "Images", Width: 7},
		{Title: "Motion", Width: 7},
	}
}

// ProfileRow converts a profile to a table row.
func ProfileRow(p entity.PerformanceProfile) table.Row {
	flags := p.Flags()
	return table.Row{
		p.Name(),
		onOff(flags[entity.CapabilityWebGL]),
		onOff(flags[entity.CapabilityJavaScript]),
		onOff(flags[entity.CapabilityImages]),
		onOff(flags[entity.CapabilityAnimations]),
	}
}

// RenderProfiles renders the profile list as plain CLI output, marking current.
func (t *Theme) RenderProfiles(profiles []entity.PerformanceProfile, current string) string {
	var b strings.Builder
	b.WriteString(t.Title.Render("Performance profiles"))
	b.WriteString("\n\n")
	b.WriteString(t.Subtle.Render(fmt.Sprintf("  %-14s %-7s %-7s %-7s %-7s", "PROFILE", "WEBGL", "JS", "IMAGES", "MOTION")))
	b.WriteString("\n")
	for _, p := range profiles {
		row := ProfileRow(p)
		line := fmt.Sprintf("%-14s %-7s %-7s %-7s %-7s", row[0], row[1], row[2], row[3], row[4])
		if p.Name() == current {
			b.WriteString(t.Highlight.Render("● " + line))
		} else {
			b.WriteString(t.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderEvents renders lifecycle events as plain CLI output, newest first.
func (t *Theme) RenderEvents(events []*entity.LifecycleEvent) string {
	if len(events) == 0 {
		return t.Subtle.Render("No lifecycle events recorded.")
	}

	var b strings.Builder
	b.WriteString(t.Title.Render("Lifecycle events"))
	b.WriteString("\n\n")
	for _, ev := range events {
		subject := string(ev.TabID)
		if subject == "" {
			subject = ev.Profile
		}
		line := fmt.Sprintf("%s %-20s %s", t.OKBadge(ev.OK), ev.Kind, subject)
		if ev.URL != "" {
			line += " " + t.Subtle.Render(ev.URL)
		}
		if ev.Detail != "" {
			line += " " + t.WarningStyle.Render(ev.Detail)
		}
		b.WriteString(line)
		b.WriteString("  ")
		b.WriteString(t.Subtle.Render(RelativeTime(ev.CreatedAt)))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
