// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Dialects understood by Open and Rebind
const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

// Open connects to the database and verifies the connection.
func Open(dialect, url string) (*sql.DB, error) {
	driver := DialectSQLite
	if dialect == DialectPostgres {
		driver = "postgres"
	} else if dir := sqliteDir(url); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return conn, nil
}

// sqliteDir returns the directory of a file backed sqlite URL, or "" for
// in-memory databases and bare file names.
func sqliteDir(url string) string {
	path := strings.TrimPrefix(url, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" || strings.HasPrefix(path, ":memory:") {
		return ""
	}
	if dir := filepath.Dir(path); dir != "." {
		return dir
	}
	return ""
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// ResetSchema drops the voter table and creates it again.
func ResetSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS voter`); err != nil {
		return fmt.Errorf("failed to drop voter table: %w", err)
	}
	return CreateSchema(ctx, db)
}

// Rebind rewrites ? placeholders into the dialect's form.
// Queries must not contain ? inside string literals.
func Rebind(dialect, query string) string {
	if dialect != DialectPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

// voterColumns lists the stored columns in CSV header order.
var voterColumns = []string{
	"state_voterid",
	"voter_name",
	"street_number",
	"street_predirection",
	"street_name",
	"street_type",
	"unit",
	"city",
	"state",
	"zip",
	"voter_reg_party",
	"precinct",
	"ballot_type",
	"ballot_vote_method",
	"vote_location",
	"ballot_status",
}

const schema = `
-- Voters (one row per line of the voter status file)
CREATE TABLE IF NOT EXISTS voter (
    state_voterid TEXT,
    voter_name TEXT,
    street_number TEXT,
    street_predirection TEXT,
    street_name TEXT,
    street_type TEXT,
    unit TEXT,
    city TEXT,
    state TEXT,
    zip TEXT,
    voter_reg_party TEXT,
    precinct TEXT,
    ballot_type TEXT,
    ballot_vote_method TEXT,
    vote_location TEXT,
    ballot_status TEXT
);

CREATE INDEX IF NOT EXISTS idx_voter_state_voterid ON voter(state_voterid);
CREATE INDEX IF NOT EXISTS idx_voter_voter_name ON voter(voter_name);
CREATE INDEX IF NOT EXISTS idx_voter_city ON voter(city);
CREATE INDEX IF NOT EXISTS idx_voter_precinct ON voter(precinct);
CREATE INDEX IF NOT EXISTS idx_voter_party ON voter(voter_reg_party);
`
