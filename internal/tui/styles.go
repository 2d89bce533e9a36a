package tui

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#000000"}).
			Background(lipgloss.AdaptiveColor{Light: "#005577", Dark: "#00aadd"}).
			Bold(true).
			Padding(0, 1).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#626262", Dark: "#a8a8a8"}).
			MarginTop(1)

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#005577", Dark: "#00aadd"}).
			Padding(1, 2)
)

// frame chrome: border (2) plus horizontal padding (4), and border plus
// vertical padding, header and help lines.
const (
	frameWidth  = 6
	frameHeight = 8
)

// GetAdaptiveStyles returns the frame style sized to the terminal and the
// area left for the chart inside it.
func GetAdaptiveStyles(width, height int) (frame lipgloss.Style, chartWidth, chartHeight int) {
	if width <= 0 || height <= 0 {
		return frameStyle, 0, 0
	}

	maxWidth := width - 2 // Leave some margin
	adaptiveFrameStyle := frameStyle.Copy().MaxWidth(maxWidth)

	return adaptiveFrameStyle, maxWidth - frameWidth, height - frameHeight
}
