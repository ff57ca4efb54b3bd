// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package table

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/voter-browser/client"
	"github.com/danielhkuo/voter-browser/models"
)

// Fetcher loads one page of voters from GET /data.
type Fetcher interface {
	FetchData(ctx context.Context, req models.DataRequest) (models.DataResponse, error)
}

// View is what the table currently shows.
type View struct {
	Request         models.DataRequest
	Rows            []DisplayRow
	RecordsTotal    int
	RecordsFiltered int
	// Loaded is false until a page has been fetched successfully.
	Loaded bool
	// Err is the error of the most recent load, nil after a success.
	Err error
}

// Empty reports whether the table is in its "no matching records" state.
func (v View) Empty() bool {
	return len(v.Rows) == 0
}

// Info summarises the visible range, e.g.
// "Showing 1 to 25 of 1,234 entries (filtered from 5,000 total entries)".
func (v View) Info() string {
	if v.Empty() {
		if v.RecordsTotal > 0 && v.RecordsFiltered < v.RecordsTotal {
			return "No entries available (filtered from " + humanize.Comma(int64(v.RecordsTotal)) + " total entries)"
		}
		return "No entries available"
	}

	s := "Showing " + humanize.Comma(int64(v.Request.Start+1)) +
		" to " + humanize.Comma(int64(v.Request.Start+len(v.Rows))) +
		" of " + humanize.Comma(int64(v.RecordsFiltered)) + " entries"
	if v.RecordsFiltered < v.RecordsTotal {
		s += " (filtered from " + humanize.Comma(int64(v.RecordsTotal)) + " total entries)"
	}
	return s
}

// HasPrev reports whether an earlier page exists.
func (v View) HasPrev() bool {
	return v.Request.Start > 0
}

// HasNext reports whether a later page exists.
func (v View) HasNext() bool {
	return v.Request.Start+len(v.Rows) < v.RecordsFiltered
}

// Controller drives a server-paginated voter table. Every change of page,
// sort, search or page size issues a new GET /data. When loads overlap, the
// last one to resolve decides what is shown.
type Controller struct {
	fetcher Fetcher
	log     *slog.Logger

	mu   sync.Mutex
	view View
}

func NewController(fetcher Fetcher, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.Default()
	}
	return &Controller{
		fetcher: fetcher,
		log:     log,
		view: View{
			Request: models.DefaultDataRequest(),
			Rows:    []DisplayRow{},
		},
	}
}

// View returns the current view.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// Load fetches the page described by req. On failure the error is logged and
// the previous view is kept, so the table shows either the last good page or
// no rows at all.
func (c *Controller) Load(ctx context.Context, req models.DataRequest) (View, error) {
	req = req.Normalize()

	resp, err := c.fetcher.FetchData(ctx, req)
	if err != nil {
		client.LogError(c.log, "failed to load voter page", err)

		c.mu.Lock()
		defer c.mu.Unlock()
		c.view.Err = err
		return c.view, err
	}
	if resp.Error != "" {
		c.log.Warn("data endpoint reported an error", "error", resp.Error)
	}

	rows := make([]DisplayRow, len(resp.Data))
	for i, v := range resp.Data {
		rows[i] = NewDisplayRow(v)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = View{
		Request:         req,
		Rows:            rows,
		RecordsTotal:    resp.RecordsTotal,
		RecordsFiltered: resp.RecordsFiltered,
		Loaded:          true,
	}
	return c.view, nil
}

// next returns a copy of the current request with a new draw counter.
func (c *Controller) next() models.DataRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	req := c.view.Request
	req.Draw++
	return req
}

// GoToPage loads the page starting at row start.
func (c *Controller) GoToPage(ctx context.Context, start int) (View, error) {
	req := c.next()
	req.Start = start
	return c.Load(ctx, req)
}

// SortBy sorts on column, flipping the direction when it is already the
// sort column, and returns to the first page.
func (c *Controller) SortBy(ctx context.Context, column int) (View, error) {
	req := c.next()
	if req.OrderColumn == column && req.OrderDir == models.SortAsc {
		req.OrderDir = models.SortDesc
	} else {
		req.OrderDir = models.SortAsc
	}
	req.OrderColumn = column
	req.Start = 0
	return c.Load(ctx, req)
}

// Search filters on term and returns to the first page.
func (c *Controller) Search(ctx context.Context, term string) (View, error) {
	req := c.next()
	req.Search = term
	req.Start = 0
	return c.Load(ctx, req)
}

// SetPageLength changes the number of rows per page and returns to the
// first page.
func (c *Controller) SetPageLength(ctx context.Context, length int) (View, error) {
	req := c.next()
	req.Length = length
	req.Start = 0
	return c.Load(ctx, req)
}
