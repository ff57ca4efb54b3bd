// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package page assembles the browsing page: the voter table and the
// statistics charts, loaded concurrently and rendered with html/template.
package page

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"strconv"
	"sync"

	"golang.org/x/text/language"

	"github.com/danielhkuo/voter-browser/charts"
	"github.com/danielhkuo/voter-browser/models"
	"github.com/danielhkuo/voter-browser/stats"
	"github.com/danielhkuo/voter-browser/table"
)

// Default chart size in pixels
const (
	ChartWidth  = 480
	ChartHeight = 300
)

// PageLengths are the page sizes offered by the selector.
var PageLengths = []int{10, 25, 50, 100}

// Fetcher is the upstream both flows read from; *client.Client satisfies it.
type Fetcher interface {
	table.Fetcher
	stats.Fetcher
}

// Options configure one page view.
type Options struct {
	Client  Fetcher
	Request models.DataRequest
	Locale  language.Tag
	Logger  *slog.Logger

	// Zero means ChartWidth / ChartHeight.
	ChartWidth  int
	ChartHeight int
}

// ChartView is a chart with its rendered SVG. SVG is empty when the chart
// has no bars.
type ChartView struct {
	charts.Chart
	SVG template.HTML
}

// View is the model the page template renders.
type View struct {
	Table  table.View
	Charts []ChartView
	// StatsErr is set when /stats could not be loaded; the panel stays empty.
	StatsErr error
	Locale   language.Tag
}

// Init builds the page for one request: the table flow and the statistics
// flow run concurrently and Init returns once both have settled. Failures
// are logged by the controllers and leave their part of the page empty.
func Init(ctx context.Context, opts Options) *View {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	width, height := opts.ChartWidth, opts.ChartHeight
	if width <= 0 {
		width = ChartWidth
	}
	if height <= 0 {
		height = ChartHeight
	}

	tc := table.NewController(opts.Client, log)
	sc := stats.NewController(opts.Client, opts.Locale, log)
	v := &View{Locale: opts.Locale}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		v.Table, _ = tc.Load(ctx, opts.Request)
	}()
	go func() {
		defer wg.Done()
		built, err := sc.Load(ctx)
		if err != nil {
			v.StatsErr = err
			return
		}
		v.Charts = renderCharts(built, width, height, log)
	}()
	wg.Wait()

	return v
}

func renderCharts(built []charts.Chart, width, height int, log *slog.Logger) []ChartView {
	out := make([]ChartView, 0, len(built))
	for _, c := range built {
		cv := ChartView{Chart: c}
		svg, err := c.SVG(width, height)
		switch {
		case err == nil:
			// escaped by the chart renderer
			cv.SVG = template.HTML(svg)
		case errors.Is(err, charts.ErrNoBars):
		default:
			log.Error("failed to render chart", "chart", c.MountID, "error", err)
		}
		out = append(out, cv)
	}
	return out
}

func (v *View) link(path string, edit func(*models.DataRequest)) string {
	req := v.Table.Request
	// draw only matters to grid clients
	req.Draw = 1
	if edit != nil {
		edit(&req)
	}
	return path + "?" + req.Values().Encode()
}

// SortURL links to the first page sorted by column, flipping the direction
// when column is already the sort column.
func (v *View) SortURL(column int) string {
	return v.link("/", func(r *models.DataRequest) {
		if r.OrderColumn == column && r.OrderDir == models.SortAsc {
			r.OrderDir = models.SortDesc
		} else {
			r.OrderDir = models.SortAsc
		}
		r.OrderColumn = column
		r.Start = 0
	})
}

// SortMark is the arrow shown next to the sorted column header.
func (v *View) SortMark(column int) string {
	if v.Table.Request.OrderColumn != column {
		return ""
	}
	if v.Table.Request.OrderDir == models.SortDesc {
		return "▼"
	}
	return "▲"
}

// PrevURL links to the previous page.
func (v *View) PrevURL() string {
	return v.link("/", func(r *models.DataRequest) {
		r.Start -= r.Length
		if r.Start < 0 {
			r.Start = 0
		}
	})
}

// NextURL links to the next page.
func (v *View) NextURL() string {
	return v.link("/", func(r *models.DataRequest) {
		r.Start += r.Length
	})
}

// LengthURL links to the first page with n rows per page.
func (v *View) LengthURL(n int) string {
	return v.link("/", func(r *models.DataRequest) {
		r.Length = n
		r.Start = 0
	})
}

// ExportURL links to the export of the current page in format.
func (v *View) ExportURL(format string) string {
	return v.link("/export/"+format, nil)
}

// PageNumber is the 1-based number of the current page.
func (v *View) PageNumber() int {
	if v.Table.Request.Length <= 0 {
		return 1
	}
	return v.Table.Request.Start/v.Table.Request.Length + 1
}

// PageCount is the number of pages the filtered rows span.
func (v *View) PageCount() int {
	n, l := v.Table.RecordsFiltered, v.Table.Request.Length
	if n == 0 || l <= 0 {
		return 1
	}
	return (n + l - 1) / l
}

// PageLengths are the choices of the page-size selector.
func (v *View) PageLengths() []int {
	return PageLengths
}

// SearchParam is the query parameter the search box submits.
func (v *View) SearchParam() string {
	return models.ParamSearch
}

// Hidden are the parameters the search form carries along besides the term.
func (v *View) Hidden() map[string]string {
	return map[string]string{
		models.ParamLength:      strconv.Itoa(v.Table.Request.Length),
		models.ParamOrderColumn: strconv.Itoa(v.Table.Request.OrderColumn),
		models.ParamOrderDir:    v.Table.Request.OrderDir,
	}
}
