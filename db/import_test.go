// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danielhkuo/voter-browser/db"
	"github.com/danielhkuo/voter-browser/models"
	"github.com/danielhkuo/voter-browser/testutil"
)

func TestImportCSV_Latin1AndColumnMatching(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	// Columns out of order, one unknown column, and a Latin-1 É (0xC9)
	csv := "EXTRA,voter_name,STATE_VOTERID,CITY\n" +
		"x,JOS\xc9 PEREZ,V100,TAOS\n" +
		"y,,V101,\n"

	n, err := db.ImportCSV(context.Background(), conn, db.DialectSQLite, strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ImportCSV failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 rows imported, got %d", n)
	}

	resp, err := db.NewVoterStore(conn, db.DialectSQLite).Page(context.Background(), models.DefaultDataRequest())
	if err != nil {
		t.Fatalf("Page failed: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(resp.Data))
	}

	if resp.Data[0].VoterName != "JOSÉ PEREZ" {
		t.Errorf("Expected Latin-1 name decoded, got %q", resp.Data[0].VoterName)
	}
	if resp.Data[0].City != "TAOS" {
		t.Errorf("Expected city TAOS, got %q", resp.Data[0].City)
	}
	if resp.Data[1].VoterName != "" || resp.Data[1].Zip != "" {
		t.Errorf("Expected empty fields for missing values, got %+v", resp.Data[1])
	}
}

func TestImportCSV_UnknownHeader(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	_, err := db.ImportCSV(context.Background(), conn, db.DialectSQLite, strings.NewReader("A,B\n1,2\n"))
	if !errors.Is(err, db.ErrNoKnownColumns) {
		t.Errorf("Expected ErrNoKnownColumns, got %v", err)
	}
}

func TestInitialize(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	csvPath := filepath.Join(t.TempDir(), "voters.csv")
	if err := os.WriteFile(csvPath, []byte(testutil.VotersCSV(testutil.SampleVoters)), 0o644); err != nil {
		t.Fatalf("Failed to write csv: %v", err)
	}
	ctx := context.Background()

	n, err := db.Initialize(ctx, conn, db.DialectSQLite, csvPath, false)
	if err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if n != len(testutil.SampleVoters) {
		t.Errorf("Expected %d rows, got %d", len(testutil.SampleVoters), n)
	}

	// A populated database is left alone without force
	if _, err := db.Initialize(ctx, conn, db.DialectSQLite, csvPath, false); !errors.Is(err, db.ErrDatabasePopulated) {
		t.Errorf("Expected ErrDatabasePopulated, got %v", err)
	}

	// Force rebuilds instead of appending
	if _, err := db.Initialize(ctx, conn, db.DialectSQLite, csvPath, true); err != nil {
		t.Fatalf("forced Initialize failed: %v", err)
	}
	count, err := db.NewVoterStore(conn, db.DialectSQLite).Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != len(testutil.SampleVoters) {
		t.Errorf("Expected %d rows after reset, got %d", len(testutil.SampleVoters), count)
	}
}

func TestInitialize_MissingCSV(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	_, err := db.Initialize(context.Background(), conn, db.DialectSQLite, filepath.Join(t.TempDir(), "nope.csv"), false)
	if err == nil {
		t.Error("Expected an error for a missing csv")
	}
}
