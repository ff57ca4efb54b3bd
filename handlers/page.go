// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/voter-browser/client"
	"github.com/danielhkuo/voter-browser/cliparse"
	"github.com/danielhkuo/voter-browser/middleware"
	"github.com/danielhkuo/voter-browser/models"
	"github.com/danielhkuo/voter-browser/page"
	"github.com/danielhkuo/voter-browser/table"
)

// exportTypes maps export formats to their content type and file name.
var exportTypes = map[string]struct {
	contentType string
	filename    string
}{
	table.FormatCopy: {"text/plain; charset=utf-8", ""},
	table.FormatCSV:  {"text/csv; charset=utf-8", "voters.csv"},
	table.FormatXLSX: {"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "voters.xlsx"},
}

// PageHandler serves the browsing page and its exports. Both read /data and
// /stats through the upstream client rather than the database.
type PageHandler struct {
	upstream page.Fetcher
	cfg      cliparse.Config
}

func NewPageHandler(cfg cliparse.Config) *PageHandler {
	return &PageHandler{
		upstream: client.New(cfg.UpstreamURL, nil, cfg.FetchTimeout),
		cfg:      cfg,
	}
}

// Index handles GET /
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	v := page.Init(r.Context(), page.Options{
		Client:  h.upstream,
		Request: models.ParseDataRequest(r.URL.Query()),
		Locale:  h.cfg.Locale,
	})

	var buf bytes.Buffer
	if err := page.Render(&buf, v); err != nil {
		slog.Error("failed to render page", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to render page")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// Export handles GET /export/{format}
func (h *PageHandler) Export(w http.ResponseWriter, r *http.Request) {
	format := r.PathValue("format")
	kind, ok := exportTypes[format]
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "unknown export format")
		return
	}

	tc := table.NewController(h.upstream, nil)
	if _, err := tc.Load(r.Context(), models.ParseDataRequest(r.URL.Query())); err != nil {
		middleware.ErrorResponse(w, http.StatusBadGateway, "Failed to load voters")
		return
	}

	var buf bytes.Buffer
	if err := tc.Export(&buf, format); err != nil {
		slog.Error("failed to export voters", "format", format, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to export voters")
		return
	}

	slog.Info("voters exported",
		"format", format,
		"rows", len(tc.View().Rows),
		"size", humanize.Bytes(uint64(buf.Len())),
	)

	w.Header().Set("Content-Type", kind.contentType)
	if kind.filename != "" {
		w.Header().Set("Content-Disposition", `attachment; filename="`+kind.filename+`"`)
	}
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
