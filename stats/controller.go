// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package stats builds the six statistics charts from GET /stats.
package stats

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/danielhkuo/voter-browser/charts"
	"github.com/danielhkuo/voter-browser/client"
	"github.com/danielhkuo/voter-browser/models"
)

// Mount ids of the six charts, in panel order
const (
	PartyChart        = "partyChart"
	CityChart         = "cityChart"
	PrecinctChart     = "precinctChart"
	BallotStatusChart = "ballotStatusChart"
	VoteMethodChart   = "voteMethodChart"
	BallotTypeChart   = "ballotTypeChart"
)

// Fetcher loads the aggregate counts from GET /stats.
type Fetcher interface {
	FetchStats(ctx context.Context) (models.StatsBundle, error)
}

type chartDef struct {
	mountID string
	label   string
	colors  charts.ColorSpec
	counts  func(models.StatsBundle) models.CountMap
}

var chartDefs = []chartDef{
	{PartyChart, "Party Distribution", charts.ColorSpec{}, func(b models.StatsBundle) models.CountMap { return b.PartyCounts }},
	{CityChart, "Top 10 Cities", charts.ColorSpec{}, func(b models.StatsBundle) models.CountMap { return b.CityCounts }},
	{PrecinctChart, "Top 10 Precincts", charts.ColorSpec{}, func(b models.StatsBundle) models.CountMap { return b.PrecinctCounts }},
	{BallotStatusChart, "Ballot Status", charts.BallotStatusPalette, func(b models.StatsBundle) models.CountMap { return b.BallotStatusCounts }},
	{VoteMethodChart, "Vote Method", charts.VoteMethodPalette, func(b models.StatsBundle) models.CountMap { return b.VoteMethodCounts }},
	{BallotTypeChart, "Ballot Type", charts.BallotTypePalette, func(b models.StatsBundle) models.CountMap { return b.BallotTypeCounts }},
}

// Controller builds the statistics panel from a single /stats fetch.
// The first Load decides the outcome; later calls return the same charts.
type Controller struct {
	fetcher Fetcher
	log     *slog.Logger
	printer *message.Printer

	once   sync.Once
	charts []charts.Chart
	err    error
}

// NewController returns a controller formatting counts for locale.
func NewController(fetcher Fetcher, locale language.Tag, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.Default()
	}
	return &Controller{
		fetcher: fetcher,
		log:     log,
		printer: message.NewPrinter(locale),
	}
}

// Load fetches /stats and builds one chart per count map. On failure the
// error is logged and no charts are built.
func (c *Controller) Load(ctx context.Context) ([]charts.Chart, error) {
	c.once.Do(func() {
		bundle, err := c.fetcher.FetchStats(ctx)
		if err != nil {
			client.LogError(c.log, "failed to load statistics", err)
			c.err = err
			return
		}
		c.charts = Build(bundle, c.printer)
	})
	return c.charts, c.err
}

// Build turns a bundle into the six panel charts.
func Build(bundle models.StatsBundle, p *message.Printer) []charts.Chart {
	out := make([]charts.Chart, 0, len(chartDefs))
	for _, d := range chartDefs {
		out = append(out, charts.New(d.mountID, d.label, d.counts(bundle), charts.Options{
			Colors:  d.colors,
			Printer: p,
		}))
	}
	return out
}
