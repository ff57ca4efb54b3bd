// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/voter-browser/cliparse"
	"github.com/danielhkuo/voter-browser/handlers"
	"github.com/danielhkuo/voter-browser/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	voterHandler := handlers.NewVoterHandler(db, cfg)
	pageHandler := handlers.NewPageHandler(cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Grid and chart data
	mux.HandleFunc("GET /data", middleware.WithLogging(voterHandler.GetData))
	mux.HandleFunc("GET /stats", middleware.WithLogging(voterHandler.GetStats))

	// Browsing page and exports of the current page
	mux.HandleFunc("GET /{$}", middleware.WithLogging(pageHandler.Index))
	mux.HandleFunc("GET /export/{format}", middleware.WithLogging(pageHandler.Export))

	return mux
}
