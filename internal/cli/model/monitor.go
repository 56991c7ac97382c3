// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dozer/internal/application/usecase"
	"github.com/bnema/dozer/internal/cli/styles"
	"github.com/bnema/dozer/internal/domain/entity"
)

const monitorRefreshInterval = time.Second

// MonitorController is the lifecycle API the monitor drives.
type MonitorController interface {
	Tabs(ctx context.Context) ([]usecase.TabView, error)
	Stats(ctx context.Context) (entity.ResourceStats, error)
	SelectTab(ctx context.Context, id entity.TabID) error
	CycleProfile(ctx context.Context) (string, error)
	ReclaimAll(ctx context.Context) (usecase.ReclaimResult, error)
	SuspendIdleNow(ctx context.Context) ([]entity.TabID, error)
}

// MonitorModel shows live tab states and resource usage.
type MonitorModel struct {
	help  help.Model
	keys  monitorKeyMap
	table table.Model

	tabs          []usecase.TabView
	stats         entity.ResourceStats
	err           error
	statusMessage string
	width         int
	height        int

	ctx     context.Context
	ctrl    MonitorController
	theme   *styles.Theme
	changes <-chan struct{}
}

type monitorKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Profile key.Binding
	Reclaim key.Binding
	Suspend key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k monitorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Profile, k.Reclaim, k.Suspend, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k monitorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Profile, k.Reclaim, k.Suspend},
		{k.Help, k.Quit},
	}
}

func defaultMonitorKeyMap() monitorKeyMap {
	return monitorKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select/resume"),
		),
		Profile: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "next profile"),
		),
		Reclaim: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reclaim"),
		),
		Suspend: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "suspend idle"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewMonitorModel creates the live tab monitor.
func NewMonitorModel(ctx context.Context, theme *styles.Theme, ctrl MonitorController) MonitorModel {
	h := help.New()
	h.Styles = theme.HelpStyles()
	m := MonitorModel{
		help:   h,
		keys:   defaultMonitorKeyMap(),
		width:  100,
		height: 24,
		ctx:    ctx,
		ctrl:   ctrl,
		theme:  theme,
	}
	m.rebuildTable()
	return m
}

// WithTabChanges makes the monitor reload whenever ch fires, on top of the
// periodic refresh.
func (m MonitorModel) WithTabChanges(ch <-chan struct{}) MonitorModel {
	m.changes = ch
	return m
}

type snapshotMsg struct {
	tabs  []usecase.TabView
	stats entity.ResourceStats
	err   error
}

type refreshTickMsg time.Time

type tabsChangedMsg struct{}

type actionDoneMsg struct {
	status string
	err    error
}

// Init implements tea.Model.
func (m MonitorModel) Init() tea.Cmd {
	if m.changes != nil {
		return tea.Batch(m.loadSnapshot, scheduleRefresh(), waitForTabChange(m.changes))
	}
	return tea.Batch(m.loadSnapshot, scheduleRefresh())
}

func waitForTabChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return tabsChangedMsg{}
	}
}

func scheduleRefresh() tea.Cmd {
	return tea.Tick(monitorRefreshInterval, func(t time.Time) tea.Msg { return refreshTickMsg(t) })
}

func (m MonitorModel) loadSnapshot() tea.Msg {
	tabs, err := m.ctrl.Tabs(m.ctx)
	if err != nil {
		return snapshotMsg{err: err}
	}
	stats, err := m.ctrl.Stats(m.ctx)
	return snapshotMsg{tabs: tabs, stats: stats, err: err}
}

// Update implements tea.Model.
func (m MonitorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.rebuildTable()
		return m, nil

	case refreshTickMsg:
		return m, tea.Batch(m.loadSnapshot, scheduleRefresh())

	case tabsChangedMsg:
		return m, tea.Batch(m.loadSnapshot, waitForTabChange(m.changes))

	case snapshotMsg:
		m.err = msg.err
		if msg.err == nil {
			m.tabs = msg.tabs
			m.stats = msg.stats
			m.rebuildTable()
		}
		return m, nil

	case actionDoneMsg:
		if msg.err != nil {
			m.statusMessage = "Error: " + msg.err.Error()
		} else {
			m.statusMessage = msg.status
		}
		return m, m.loadSnapshot

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m MonitorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Select):
		tab, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, m.selectTab(tab)
	case key.Matches(msg, m.keys.Profile):
		return m, m.cycleProfile
	case key.Matches(msg, m.keys.Reclaim):
		return m, m.reclaim
	case key.Matches(msg, m.keys.Suspend):
		return m, m.suspendIdle
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m MonitorModel) selected() (usecase.TabView, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.tabs) {
		return usecase.TabView{}, false
	}
	return m.tabs[i], true
}

func (m MonitorModel) selectTab(tab usecase.TabView) tea.Cmd {
	return func() tea.Msg {
		err := m.ctrl.SelectTab(m.ctx, tab.ID)
		status := "Selected " + tab.Label
		if tab.State == entity.TabStateSuspended {
			status = "Resumed " + tab.Label
		}
		return actionDoneMsg{status: status, err: err}
	}
}

func (m MonitorModel) cycleProfile() tea.Msg {
	name, err := m.ctrl.CycleProfile(m.ctx)
	return actionDoneMsg{status: "Profile " + name + " applied", err: err}
}

func (m MonitorModel) reclaim() tea.Msg {
	result, err := m.ctrl.ReclaimAll(m.ctx)
	if err != nil {
		return actionDoneMsg{err: err}
	}
	if !result.OK {
		return actionDoneMsg{err: fmt.Errorf("%d of %d clears failed: %w", result.Failed, result.Attempted, result.Err)}
	}
	return actionDoneMsg{status: fmt.Sprintf("Reclaimed %d caches", result.Attempted)}
}

func (m MonitorModel) suspendIdle() tea.Msg {
	ids, err := m.ctrl.SuspendIdleNow(m.ctx)
	return actionDoneMsg{status: fmt.Sprintf("Suspended %d tabs", len(ids)), err: err}
}

func (m *MonitorModel) rebuildTable() {
	rows := make([]table.Row, len(m.tabs))
	for i, v := range m.tabs {
		rows[i] = styles.TabRow(v)
	}

	tableHeight := len(rows) + 1
	if tableHeight > m.height-8 {
		tableHeight = m.height - 8
	}
	if tableHeight < 3 {
		tableHeight = 3
	}

	cursor := m.table.Cursor()
	m.table = styles.NewStyledTable(m.theme, styles.TabTableColumns(), rows, m.width-4, tableHeight)
	if cursor > 0 && cursor < len(rows) {
		m.table.SetCursor(cursor)
	}
}

// View implements tea.Model.
func (m MonitorModel) View() string {
	t := m.theme

	s := m.stats
	header := lipgloss.JoinHorizontal(
		lipgloss.Top,
		t.Title.Render("dozer"),
		"  ",
		t.ProfileBadge(s.Profile),
		" ",
		t.StateBadge(entity.TabStateActive, s.Active),
		" ",
		t.StateBadge(entity.TabStateSuspended, s.Suspended),
	)
	if s.RSSBytes > 0 {
		header = lipgloss.JoinHorizontal(lipgloss.Top, header, " ",
			t.BadgeMuted.Render("rss "+styles.FormatBytes(s.RSSBytes)))
	}

	var body string
	if len(m.tabs) == 0 {
		body = t.Subtle.Render("No tabs open")
	} else {
		body = m.table.View()
	}

	status := ""
	switch {
	case m.err != nil:
		status = t.ErrorStyle.Render("Error: " + m.err.Error())
	case m.statusMessage != "":
		status = t.Subtle.Render(m.statusMessage)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"",
		body,
		"",
		status,
		m.help.View(m.keys),
	)
}

var _ tea.Model = MonitorModel{}
