package view

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/eltonkaiton/mombasa-admin/internal/domain"
)

var palette = map[string]string{
	"warning": "#ffc107",
	"primary": "#0d6efd",
	"danger":  "#dc3545",
	"success": "#198754",
}

// Bar is one horizontal bar of the summary chart.
type Bar struct {
	Label   string
	Value   int64
	Percent float64
	Color   string
}

// Slice is one segment of the summary pie, as percentages of the circle.
type Slice struct {
	Label string
	Value int64
	Start float64
	End   float64
	Color string
}

// Chart is the bar and pie rendering of the report metrics in plain CSS.
type Chart struct {
	Bars   []Bar
	Slices []Slice
}

// NewChart lays out metrics. Bars are sized against the largest value and
// slices against the total; all-zero input yields empty bars and no slices.
func NewChart(metrics []domain.Metric) Chart {
	var max, total int64
	for _, m := range metrics {
		if m.Value > max {
			max = m.Value
		}
		total += m.Value
	}

	chart := Chart{Bars: make([]Bar, 0, len(metrics))}
	var cursor float64
	for _, m := range metrics {
		color := palette[m.Color]
		bar := Bar{Label: m.Label, Value: m.Value, Color: color}
		if max > 0 {
			bar.Percent = float64(m.Value) * 100 / float64(max)
		}
		chart.Bars = append(chart.Bars, bar)

		if total > 0 && m.Value > 0 {
			share := float64(m.Value) * 100 / float64(total)
			chart.Slices = append(chart.Slices, Slice{
				Label: m.Label,
				Value: m.Value,
				Start: cursor,
				End:   cursor + share,
				Color: color,
			})
			cursor += share
		}
	}
	return chart
}

// Gradient is the conic-gradient CSS painting the pie.
func (c Chart) Gradient() template.CSS {
	if len(c.Slices) == 0 {
		return template.CSS("background: #e9ecef")
	}
	stops := make([]string, 0, len(c.Slices))
	for _, s := range c.Slices {
		stops = append(stops, fmt.Sprintf("%s %.2f%% %.2f%%", s.Color, s.Start, s.End))
	}
	return template.CSS("background: conic-gradient(" + strings.Join(stops, ", ") + ")")
}
