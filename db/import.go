// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/encoding/charmap"
)

var (
	ErrDatabasePopulated = errors.New("database already contains voters")
	ErrNoKnownColumns    = errors.New("csv header has none of the voter columns")
)

// Initialize creates the schema and loads the voter CSV at csvPath.
// Without force it refuses to import into a table that already has rows;
// with force the voter table is dropped and rebuilt first.
func Initialize(ctx context.Context, db *sql.DB, dialect, csvPath string, force bool) (int, error) {
	if force {
		if err := ResetSchema(ctx, db); err != nil {
			return 0, err
		}
	} else {
		if err := CreateSchema(ctx, db); err != nil {
			return 0, err
		}
		n, err := NewVoterStore(db, dialect).Count(ctx)
		if err != nil {
			return 0, err
		}
		if n > 0 {
			return 0, fmt.Errorf("%w (%d rows); use reset to rebuild", ErrDatabasePopulated, n)
		}
	}

	f, err := os.Open(csvPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open voter csv: %w", err)
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil {
		slog.Info("importing voter csv", "path", csvPath, "size", humanize.Bytes(uint64(info.Size())))
	}

	return ImportCSV(ctx, db, dialect, f)
}

// ImportCSV reads a Latin-1 voter status CSV with a header row and inserts
// every line. Columns are matched by header name; unknown columns are ignored
// and missing ones are stored as NULL.
func ImportCSV(ctx context.Context, db *sql.DB, dialect string, r io.Reader) (int, error) {
	cr := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(r))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read csv header: %w", err)
	}

	// position of each voter column in the CSV, -1 when absent
	positions := make([]int, len(voterColumns))
	found := false
	for i, col := range voterColumns {
		positions[i] = -1
		for j, name := range header {
			if strings.EqualFold(headerName(name), col) {
				positions[i] = j
				found = true
				break
			}
		}
	}
	if !found {
		return 0, ErrNoKnownColumns
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin import: %w", err)
	}
	defer tx.Rollback()

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(voterColumns)), ", ")
	stmt, err := tx.PrepareContext(ctx, Rebind(dialect,
		`INSERT INTO voter (`+strings.Join(voterColumns, ", ")+`) VALUES (`+placeholders+`)`))
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	count := 0
	values := make([]any, len(voterColumns))
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read csv line %d: %w", count+2, err)
		}

		for i, pos := range positions {
			values[i] = nullable(record, pos)
		}
		if _, err := stmt.ExecContext(ctx, values...); err != nil {
			return 0, fmt.Errorf("failed to insert csv line %d: %w", count+2, err)
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit import: %w", err)
	}

	slog.Info("voter csv imported", "rows", humanize.Comma(int64(count)))
	return count, nil
}

// headerName strips spaces and a byte order mark, which decodes as "ï»¿"
// through Latin-1.
func headerName(name string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(name, "ï»¿"), "\ufeff"))
}

func nullable(record []string, pos int) sql.NullString {
	if pos < 0 || pos >= len(record) {
		return sql.NullString{}
	}
	v := strings.TrimSpace(record[pos])
	return sql.NullString{String: v, Valid: v != ""}
}
