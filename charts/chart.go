// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package charts builds bar charts from count maps and renders them as SVG.
package charts

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/danielhkuo/voter-browser/models"
)

var ErrNoBars = errors.New("chart has no bars")

// Bar is one category of a chart.
type Bar struct {
	Label   string
	Value   int64
	Color   RGBA
	Tooltip string
}

// Chart is a fully resolved bar chart: labels on the category axis, counts
// as bar heights, y axis starting at YMin.
type Chart struct {
	MountID    string
	Label      string
	Bars       []Bar
	YMin       float64
	YMax       float64
	ShowLegend bool

	printer *message.Printer
}

// Options tune chart construction. The zero value uses DefaultColors and
// American English number formatting.
type Options struct {
	Colors  ColorSpec
	Printer *message.Printer
}

// New builds the chart mounted at mountID for counts, keeping their order.
func New(mountID, label string, counts models.CountMap, opts Options) Chart {
	p := opts.Printer
	if p == nil {
		p = message.NewPrinter(language.AmericanEnglish)
	}
	colors := ResolveColors(DefaultColors, opts.Colors)

	c := Chart{
		MountID: mountID,
		Label:   label,
		Bars:    make([]Bar, len(counts)),
		printer: p,
	}
	for i, e := range counts {
		c.Bars[i] = Bar{
			Label:   e.Label,
			Value:   e.Count,
			Color:   colors.At(i),
			Tooltip: Tooltip(p, label, e.Count),
		}
		if float64(e.Count) > c.YMax {
			c.YMax = float64(e.Count)
		}
	}
	return c
}

// Tooltip formats "<label>: <count>" with the printer's thousands separators.
// An empty label leaves only the count.
func Tooltip(p *message.Printer, label string, count int64) string {
	if label == "" {
		return p.Sprintf("%d", count)
	}
	return label + ": " + p.Sprintf("%d", count)
}

// Render writes the chart as SVG.
func (c Chart) Render(w io.Writer, width, height int) error {
	if len(c.Bars) == 0 {
		return ErrNoBars
	}

	bars := make([]chart.Value, len(c.Bars))
	for i, b := range c.Bars {
		fill := b.Color.Drawing()
		bars[i] = chart.Value{
			Label: b.Label,
			Value: float64(b.Value),
			Style: chart.Style{
				FillColor:   fill,
				StrokeColor: fill.WithAlpha(255),
				StrokeWidth: 1,
			},
		}
	}

	// a flat range cannot be drawn
	yMax := c.YMax
	if yMax <= c.YMin {
		yMax = c.YMin + 1
	}

	p := c.printer
	if p == nil {
		p = message.NewPrinter(language.AmericanEnglish)
	}

	bc := chart.BarChart{
		Title:      c.Label,
		Width:      width,
		Height:     height,
		BarWidth:   barWidth(width, len(bars)),
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10}},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: c.YMin, Max: yMax},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return p.Sprintf("%d", int64(f))
				}
				return ""
			},
		},
		Bars: bars,
	}
	if err := bc.Render(escapedSVG, w); err != nil {
		return fmt.Errorf("render %s: %w", c.MountID, err)
	}
	return nil
}

// escapingRenderer escapes text nodes, which go-chart's SVG canvas writes
// verbatim. Measuring still sees the raw label.
type escapingRenderer struct {
	chart.Renderer
}

func (r escapingRenderer) Text(body string, x, y int) {
	r.Renderer.Text(html.EscapeString(body), x, y)
}

func escapedSVG(width, height int) (chart.Renderer, error) {
	r, err := chart.SVG(width, height)
	if err != nil {
		return nil, err
	}
	return escapingRenderer{r}, nil
}

// SVG renders the chart into a string.
func (c Chart) SVG(width, height int) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(&buf, width, height); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func barWidth(width, n int) int {
	if n <= 0 {
		return 0
	}
	w := (width - 80) / (n * 2)
	if w < 8 {
		w = 8
	}
	if w > 60 {
		w = 60
	}
	return w
}
