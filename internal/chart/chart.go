// Package chart turns frequency tables and cross-tabulations into chart
// descriptions and draws them for a terminal.
package chart

import (
	"fmt"

	"github.com/kalij01/ecobank-report-codes/internal/analysis"
)

type Kind int

const (
	KindBar Kind = iota
	KindPie
	KindGroupedBar
)

func (k Kind) String() string {
	switch k {
	case KindBar:
		return "bar"
	case KindPie:
		return "pie"
	case KindGroupedBar:
		return "grouped bar"
	}
	return "unknown"
}

// Point is one category and its value.
type Point struct {
	Label string
	Value float64
}

// Series is one set of bars. Bar and pie charts carry a single series;
// grouped bars carry one series per column category.
type Series struct {
	Name  string
	Data  []Point
	Color string
}

// Chart describes what to draw. Every series lists the same categories in
// the same order.
type Chart struct {
	Kind     Kind
	Title    string
	XAxis    string
	YAxis    string
	Series   []Series
	Rotation int // x tick label rotation in degrees, 0 keeps labels level
}

// Default palette, cycled when there are more series or wedges than colors.
var palette = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

func colorAt(i int) string {
	return palette[i%len(palette)]
}

type Option func(*options)

type options struct {
	top      int
	rotation int
}

// WithTop keeps the n largest categories and folds the rest into "Other".
func WithTop(n int) Option {
	return func(o *options) {
		o.top = n
	}
}

// WithRotation sets the x tick label rotation in degrees.
func WithRotation(degrees int) Option {
	return func(o *options) {
		o.rotation = degrees
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Bar plots counts in their given order.
func Bar(counts analysis.Counts, title, xLabel, yLabel string, opts ...Option) Chart {
	o := applyOptions(opts)
	counts = analysis.TopN(counts, o.top)

	return Chart{
		Kind:  KindBar,
		Title: title,
		XAxis: xLabel,
		YAxis: yLabel,
		Series: []Series{{
			Name:  yLabel,
			Data:  points(counts),
			Color: colorAt(0),
		}},
		Rotation: o.rotation,
	}
}

// Pie draws every category as a wedge.
func Pie(counts analysis.Counts, title string) Chart {
	return Chart{
		Kind:  KindPie,
		Title: title,
		Series: []Series{{
			Name: title,
			Data: points(counts),
		}},
	}
}

// GroupedBar draws one group per row category of ct, with one bar per
// column category inside each group.
func GroupedBar(ct *analysis.CrossTab, title, xLabel, yLabel string, opts ...Option) Chart {
	o := applyOptions(opts)

	series := make([]Series, len(ct.Cols))
	for j, col := range ct.Cols {
		data := make([]Point, len(ct.Rows))
		for i, row := range ct.Rows {
			data[i] = Point{Label: row, Value: float64(ct.Cell(i, j))}
		}
		series[j] = Series{Name: col, Data: data, Color: colorAt(j)}
	}

	return Chart{
		Kind:     KindGroupedBar,
		Title:    title,
		XAxis:    xLabel,
		YAxis:    yLabel,
		Series:   series,
		Rotation: o.rotation,
	}
}

func points(counts analysis.Counts) []Point {
	data := make([]Point, len(counts))
	for i, b := range counts {
		data[i] = Point{Label: b.Label, Value: float64(b.Count)}
	}
	return data
}

// Labels returns the category labels along the x axis, or the wedge labels
// of a pie.
func (c Chart) Labels() []string {
	if len(c.Series) == 0 {
		return nil
	}
	labels := make([]string, len(c.Series[0].Data))
	for i, p := range c.Series[0].Data {
		labels[i] = p.Label
	}
	return labels
}

// Max is the largest value across every series.
func (c Chart) Max() float64 {
	var m float64
	for _, s := range c.Series {
		for _, p := range s.Data {
			if p.Value > m {
				m = p.Value
			}
		}
	}
	return m
}

// Total sums the first series.
func (c Chart) Total() float64 {
	if len(c.Series) == 0 {
		return 0
	}
	var total float64
	for _, p := range c.Series[0].Data {
		total += p.Value
	}
	return total
}

func (c Chart) Empty() bool {
	return len(c.Series) == 0 || len(c.Series[0].Data) == 0
}

// Percentages labels each wedge with its share of the total, to one decimal.
func (c Chart) Percentages() []string {
	if len(c.Series) == 0 {
		return nil
	}
	total := c.Total()
	out := make([]string, len(c.Series[0].Data))
	for i, p := range c.Series[0].Data {
		share := 0.0
		if total > 0 {
			share = p.Value / total * 100
		}
		out[i] = fmt.Sprintf("%.1f%%", share)
	}
	return out
}
