// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/voter-browser/cliparse"
	"github.com/danielhkuo/voter-browser/db"
	"github.com/danielhkuo/voter-browser/middleware"
	"github.com/danielhkuo/voter-browser/models"
)

type VoterHandler struct {
	store *db.VoterStore
	cfg   cliparse.Config
}

func NewVoterHandler(conn *sql.DB, cfg cliparse.Config) *VoterHandler {
	return &VoterHandler{store: db.NewVoterStore(conn, cfg.DatabaseType), cfg: cfg}
}

// GetData handles GET /data
func (h *VoterHandler) GetData(w http.ResponseWriter, r *http.Request) {
	req := models.ParseDataRequest(r.URL.Query())

	resp, err := h.store.Page(r.Context(), req)
	if err != nil {
		slog.Error("failed to load voter page", "error", err, "search", req.Search)
		// grids retry on non-200, so report the failure in the body
		middleware.JSONResponse(w, http.StatusOK, models.DataResponse{
			Draw:  req.Draw,
			Data:  []models.VoterRecord{},
			Error: err.Error(),
		})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetStats handles GET /stats
func (h *VoterHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	bundle, err := h.store.Stats(r.Context())
	if err != nil {
		slog.Error("failed to compute statistics", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, bundle)
}
