package tui

import (
	"context"
	"strings"

	"item-stats-service/internal/dashboard/core/domain"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type SnapshotLoader interface {
	Execute(ctx context.Context, onUpdate func(domain.Snapshot)) domain.Snapshot
}

// --- Messages ---
type snapshotMsg domain.Snapshot

type loadDoneMsg struct{}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	bodyStyle  = lipgloss.NewStyle().PaddingLeft(2)
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

// Model is the dashboard screen. Each Model is one activation: the load
// sequence starts in Init and runs exactly once.
type Model struct {
	ctx      context.Context
	loader   SnapshotLoader
	updates  chan domain.Snapshot
	snapshot domain.Snapshot
	spinner  spinner.Model
	done     bool
}

func NewModel(ctx context.Context, loader SnapshotLoader) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		ctx:    ctx,
		loader: loader,
		// one slot per field so the loader never blocks after the program
		// has exited
		updates: make(chan domain.Snapshot, 3),
		spinner: sp,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd(), waitForUpdate(m.updates))
}

func (m Model) loadCmd() tea.Cmd {
	ctx, loader, updates := m.ctx, m.loader, m.updates
	return func() tea.Msg {
		loader.Execute(ctx, func(s domain.Snapshot) { updates <- s })
		close(updates)
		return nil
	}
}

func waitForUpdate(updates <-chan domain.Snapshot) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-updates
		if !ok {
			return loadDoneMsg{}
		}
		return snapshotMsg(s)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case snapshotMsg:
		m.snapshot = domain.Snapshot(msg)
		return m, waitForUpdate(m.updates)
	case loadDoneMsg:
		m.done = true
		return m, nil
	case spinner.TickMsg:
		if !m.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	title := titleStyle.Render("Items Dashboard")
	if m.loading() {
		title += " " + m.spinner.View()
	}
	b.WriteString(title)
	b.WriteString("\n\n")

	for _, line := range m.snapshot.Lines() {
		b.WriteString(bodyStyle.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("q: quit"))
	b.WriteString("\n")
	return b.String()
}

// loading stays true while any field is unresolved, including after the
// sequence stopped on a failure.
func (m Model) loading() bool {
	return !m.snapshot.Complete()
}

// Snapshot returns the values currently on screen.
func (m Model) Snapshot() domain.Snapshot {
	return m.snapshot
}
