// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/voter-browser/cliparse"
	"github.com/danielhkuo/voter-browser/db"
	"github.com/danielhkuo/voter-browser/middleware"
	"github.com/danielhkuo/voter-browser/router"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err, "type", cfg.DatabaseType)
		os.Exit(1)
	}
	defer dbConn.Close()

	ctx := context.Background()

	switch cfg.Command {
	case cliparse.CommandInit, cliparse.CommandReset, cliparse.CommandForceInit:
		err = initDatabase(ctx, dbConn, cfg)
	default:
		err = serve(ctx, dbConn, cfg)
	}
	if err != nil {
		dbConn.Close()
		os.Exit(1)
	}
}

// initDatabase runs the init, reset and force-init commands.
func initDatabase(ctx context.Context, dbConn *sql.DB, cfg cliparse.Config) error {
	force := cfg.Command != cliparse.CommandInit

	n, err := db.Initialize(ctx, dbConn, cfg.DatabaseType, cfg.CSVPath, force)
	if errors.Is(err, db.ErrDatabasePopulated) {
		slog.Error("database already initialized", "error", err, "hint", "run reset or force-init to rebuild it")
		return err
	}
	if err != nil {
		slog.Error("database initialization failed", "error", err, "csv", cfg.CSVPath)
		return err
	}

	slog.Info("Database initialized",
		"command", cfg.Command,
		"voters", humanize.Comma(int64(n)),
		"csv", cfg.CSVPath,
	)
	return nil
}

func serve(ctx context.Context, dbConn *sql.DB, cfg cliparse.Config) error {
	// Create schema (tables)
	if err := db.CreateSchema(ctx, dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		return err
	}
	if n, err := db.NewVoterStore(dbConn, cfg.DatabaseType).Count(ctx); err != nil {
		slog.Error("failed to count voters", "error", err)
		return err
	} else if n == 0 {
		slog.Warn("Database has no voters; run init to import the voter file", "csv", cfg.CSVPath)
	} else {
		slog.Info("Database schema ready", "voters", humanize.Comma(int64(n)))
	}

	// Create router
	mux := router.NewRouter(dbConn, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "upstream", cfg.UpstreamURL, "locale", cfg.Locale.String())
	err := server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
		return err
	}
	slog.Info("Server closed", "error", err)
	return nil
}
