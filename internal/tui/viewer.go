package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kalij01/ecobank-report-codes/internal/chart"
)

// Viewer shows each chart in its own full-screen program. Show blocks until
// the chart window is closed.
type Viewer struct {
	options []tea.ProgramOption
}

// NewViewer uses the alternate screen unless other program options are given.
func NewViewer(opts ...tea.ProgramOption) *Viewer {
	if len(opts) == 0 {
		opts = []tea.ProgramOption{tea.WithAltScreen()}
	}
	return &Viewer{options: opts}
}

func (v *Viewer) Show(index, total int, c chart.Chart) error {
	p := tea.NewProgram(NewModel(c, index, total), v.options...)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to display chart %q: %w", c.Title, err)
	}

	if m, ok := final.(Model); ok && m.Aborted() {
		return ErrAborted
	}
	return nil
}

// Printer writes charts one after another to w, for terminals that cannot
// host the interactive viewer.
type Printer struct {
	w      io.Writer
	width  int
	height int
}

func NewPrinter(w io.Writer, width, height int) *Printer {
	return &Printer{w: w, width: width, height: height}
}

func (p *Printer) Show(index, total int, c chart.Chart) error {
	_, err := fmt.Fprintf(p.w, "[%d/%d]\n%s\n\n", index, total, chart.Render(c, p.width, p.height))
	return err
}
