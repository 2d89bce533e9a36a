package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	minPlotHeight = 4
	maxPlotHeight = 18
	maxBarWidth   = 6

	barRune   = "█"
	stripRune = "█"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"}).
			Bold(true).
			MarginBottom(1)

	axisStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#626262", Dark: "#a8a8a8"})

	axisLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#005577", Dark: "#00aadd"}).
			Bold(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#b58900", Dark: "#f1fa8c"})
)

// Render draws c to fit a terminal of the given size. A non-positive size
// falls back to 80x24.
func Render(c Chart, width, height int) string {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	var body string
	switch {
	case c.Empty():
		body = emptyStyle.Render("No data")
	case c.Kind == KindPie:
		body = renderPie(c, width)
	default:
		body = renderColumns(c, width, height)
	}

	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(c.Title), body)
}

// renderColumns draws vertical bars. Each category is a group holding one
// bar per series.
func renderColumns(c Chart, width, height int) string {
	labels := c.Labels()
	groups := len(labels)
	bars := len(c.Series)

	peak := c.Max()
	if peak <= 0 {
		peak = 1
	}

	gutter := lipgloss.Width(formatValue(peak))
	gap := 1
	if bars > 1 {
		gap = 2
	}
	avail := width - gutter - 2
	barWidth := clamp((avail/groups-gap)/bars, 1, maxBarWidth)
	slot := bars*barWidth + gap
	plotCols := groups * slot

	labelLines := 1
	if c.Rotation != 0 {
		labelLines = groups
	}
	reserved := 6 + labelLines
	if bars > 1 {
		reserved += 2
	}
	plotHeight := clamp(height-reserved, minPlotHeight, maxPlotHeight)

	var lines []string
	if c.YAxis != "" {
		lines = append(lines, axisLabelStyle.Render(c.YAxis))
	}

	for row := plotHeight; row >= 1; row-- {
		var b strings.Builder
		b.WriteString(axisStyle.Render(padLeft(tick(row, plotHeight, peak), gutter) + " │"))
		for g := 0; g < groups; g++ {
			for s := 0; s < bars; s++ {
				v := c.Series[s].Data[g].Value
				b.WriteString(barCell(v, row, peak, plotHeight, barWidth, c.Series[s].Color))
			}
			b.WriteString(strings.Repeat(" ", gap))
		}
		lines = append(lines, b.String())
	}
	lines = append(lines, axisStyle.Render(padLeft("0", gutter)+" └"+strings.Repeat("─", plotCols)))

	indent := strings.Repeat(" ", gutter+2)
	lines = append(lines, tickLabels(labels, indent, slot, width, c.Rotation)...)

	if c.XAxis != "" {
		lines = append(lines, indent+axisLabelStyle.Render(c.XAxis))
	}
	if bars > 1 {
		lines = append(lines, "", legend(c.Series))
	}

	return strings.Join(lines, "\n")
}

// barCell draws one bar's slice at plot row row (1 is the baseline row).
// The row just above a bar carries its value when the value fits.
func barCell(v float64, row int, peak float64, plotHeight, barWidth int, color string) string {
	h := barHeight(v, peak, plotHeight)
	switch {
	case h >= row:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(strings.Repeat(barRune, barWidth))
	case h+1 == row:
		label := formatValue(v)
		if lipgloss.Width(label) <= barWidth {
			return padRight(label, barWidth)
		}
	}
	return strings.Repeat(" ", barWidth)
}

// barHeight scales v to plot rows. Any positive value gets at least one row.
func barHeight(v, peak float64, plotHeight int) int {
	if v <= 0 {
		return 0
	}
	h := int(math.Round(v / peak * float64(plotHeight)))
	if h == 0 {
		h = 1
	}
	return h
}

func tick(row, plotHeight int, peak float64) string {
	switch {
	case row == plotHeight:
		return formatValue(peak)
	case plotHeight >= minPlotHeight && row == (plotHeight+1)/2:
		return formatValue(peak * float64(row) / float64(plotHeight))
	}
	return ""
}

// tickLabels lays category labels under their groups. Level labels are cut
// to the group width; rotated labels are drawn one per line, each starting
// under its group, which slants the block like angled text.
func tickLabels(labels []string, indent string, slot, width, rotation int) []string {
	if rotation == 0 {
		var b strings.Builder
		b.WriteString(indent)
		for _, l := range labels {
			b.WriteString(padRight(truncate(l, slot-1), slot))
		}
		return []string{axisStyle.Render(strings.TrimRight(b.String(), " "))}
	}

	lines := make([]string, len(labels))
	for i, l := range labels {
		offset := lipgloss.Width(indent) + i*slot
		room := width - offset
		if room < 4 {
			room = 4
		}
		lines[i] = strings.Repeat(" ", offset) + axisStyle.Render(truncate(l, room))
	}
	return lines
}

func legend(series []Series) string {
	items := make([]string, len(series))
	for i, s := range series {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Render("■")
		items[i] = swatch + " " + s.Name
	}
	return strings.Join(items, "   ")
}

// renderPie draws the wedges as one proportional strip followed by a legend
// with counts and one-decimal percentages.
func renderPie(c Chart, width int) string {
	data := c.Series[0].Data
	total := c.Total()
	if total <= 0 {
		return emptyStyle.Render("No responses")
	}

	stripWidth := clamp(width-4, 10, 60)
	cells := allocate(data, total, stripWidth)

	var strip strings.Builder
	for i, n := range cells {
		if n == 0 {
			continue
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(colorAt(i)))
		strip.WriteString(style.Render(strings.Repeat(stripRune, n)))
	}

	labelWidth := 0
	for _, p := range data {
		if w := lipgloss.Width(p.Label); w > labelWidth {
			labelWidth = w
		}
	}
	labelWidth = clamp(labelWidth, 1, width/2)

	pcts := c.Percentages()
	lines := []string{strip.String(), strip.String(), ""}
	for i, p := range data {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(colorAt(i))).Render("■")
		lines = append(lines, fmt.Sprintf("%s %s  %6s  %s",
			swatch,
			padRight(truncate(p.Label, labelWidth), labelWidth),
			pcts[i],
			axisStyle.Render("("+formatValue(p.Value)+")"),
		))
	}
	return strings.Join(lines, "\n")
}

// allocate splits width cells between the points by largest remainder so the
// shares always add up to width.
func allocate(data []Point, total float64, width int) []int {
	cells := make([]int, len(data))
	rems := make([]float64, len(data))
	used := 0
	for i, p := range data {
		exact := p.Value / total * float64(width)
		cells[i] = int(math.Floor(exact))
		rems[i] = exact - float64(cells[i])
		used += cells[i]
	}
	for ; used < width; used++ {
		best := -1
		for i, r := range rems {
			if data[i].Value > 0 && (best < 0 || r > rems[best]) {
				best = i
			}
		}
		if best < 0 {
			break
		}
		cells[best]++
		rems[best] = -1
	}
	return cells
}

func formatValue(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

func padLeft(s string, n int) string {
	if w := lipgloss.Width(s); w < n {
		return strings.Repeat(" ", n-w) + s
	}
	return s
}

func padRight(s string, n int) string {
	if w := lipgloss.Width(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
