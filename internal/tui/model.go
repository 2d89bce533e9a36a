package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kalij01/ecobank-report-codes/internal/chart"
)

// ErrAborted is returned by Show when the analyst stops the report from a
// chart window.
var ErrAborted = errors.New("report aborted")

type keyMap struct {
	Next  key.Binding
	Abort key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Abort}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Next: key.NewBinding(
		key.WithKeys("enter", " ", "q", "esc", "n"),
		key.WithHelp("enter/q", "close chart"),
	),
	Abort: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "stop report"),
	),
}

// Model is a single chart window. It quits as soon as the chart is
// dismissed.
type Model struct {
	chart     chart.Chart
	index     int
	total     int
	help      help.Model
	dismissed bool
	aborted   bool
	width     int
	height    int
}

func NewModel(c chart.Chart, index, total int) Model {
	return Model{
		chart: c,
		index: index,
		total: total,
		help:  help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Abort):
			m.aborted = true
			return m, tea.Quit
		case key.Matches(msg, keys.Next):
			m.dismissed = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m Model) View() string {
	if m.dismissed || m.aborted {
		return ""
	}

	frame, chartWidth, chartHeight := GetAdaptiveStyles(m.width, m.height)

	header := headerStyle.Render(fmt.Sprintf("Chart %d of %d · %s", m.index, m.total, m.chart.Kind))
	body := chart.Render(m.chart, chartWidth, chartHeight)
	footer := helpStyle.Render(m.help.View(keys))

	content := frame.Render(lipgloss.JoinVertical(lipgloss.Left, header, body, footer))

	if m.width > 0 {
		content = lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			content,
		)
	}

	return content
}

// Dismissed reports whether the chart was closed normally.
func (m Model) Dismissed() bool {
	return m.dismissed
}

// Aborted reports whether the analyst asked to stop the report.
func (m Model) Aborted() bool {
	return m.aborted
}
