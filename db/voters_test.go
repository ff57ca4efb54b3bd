// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db_test

import (
	"context"
	"testing"

	"github.com/danielhkuo/voter-browser/db"
	"github.com/danielhkuo/voter-browser/models"
	"github.com/danielhkuo/voter-browser/testutil"
)

func ids(records []models.VoterRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.StateVoterID
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPage(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	testutil.SeedVoters(t, conn, testutil.SampleVoters)

	store := db.NewVoterStore(conn, db.DialectSQLite)

	tests := []struct {
		name             string
		req              models.DataRequest
		expectedIDs      []string
		expectedFiltered int
	}{
		{
			name:             "default order",
			req:              models.DefaultDataRequest(),
			expectedIDs:      []string{"V001", "V002", "V003", "V004"},
			expectedFiltered: 4,
		},
		{
			name:             "paging",
			req:              models.DataRequest{Draw: 3, Start: 2, Length: 1, OrderDir: models.SortAsc},
			expectedIDs:      []string{"V003"},
			expectedFiltered: 4,
		},
		{
			name:             "name descending",
			req:              models.DataRequest{Length: 25, OrderColumn: 1, OrderDir: models.SortDesc},
			expectedIDs:      []string{"V004", "V003", "V002", "V001"},
			expectedFiltered: 4,
		},
		{
			name:             "address sorts by street name",
			req:              models.DataRequest{Length: 25, OrderColumn: 2, OrderDir: models.SortAsc},
			expectedIDs:      []string{"V003", "V004", "V001", "V002"},
			expectedFiltered: 4,
		},
		{
			name:             "single term searches every column",
			req:              models.DataRequest{Length: 25, Search: "Smith"},
			expectedIDs:      []string{"V001", "V003"},
			expectedFiltered: 2,
		},
		{
			name:             "multi term prefers name match",
			req:              models.DataRequest{Length: 25, Search: "ann smith"},
			expectedIDs:      []string{"V001"},
			expectedFiltered: 1,
		},
		{
			name:             "multi term fallback needs all terms in one column",
			req:              models.DataRequest{Length: 25, Search: "springfield 101"},
			expectedIDs:      []string{},
			expectedFiltered: 0,
		},
		{
			name:             "multi term fallback on a column",
			req:              models.DataRequest{Length: 25, Search: "city hall"},
			expectedIDs:      []string{"V001", "V004"},
			expectedFiltered: 2,
		},
		{
			name:             "wildcards are literal",
			req:              models.DataRequest{Length: 25, Search: "100%"},
			expectedIDs:      []string{},
			expectedFiltered: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := store.Page(context.Background(), tt.req)
			if err != nil {
				t.Fatalf("Page failed: %v", err)
			}

			if resp.RecordsTotal != 4 {
				t.Errorf("Expected recordsTotal 4, got %d", resp.RecordsTotal)
			}
			if resp.RecordsFiltered != tt.expectedFiltered {
				t.Errorf("Expected recordsFiltered %d, got %d", tt.expectedFiltered, resp.RecordsFiltered)
			}
			if got := ids(resp.Data); !equalStrings(got, tt.expectedIDs) {
				t.Errorf("Expected ids %v, got %v", tt.expectedIDs, got)
			}
			if resp.Data == nil {
				t.Error("Data should be an empty slice, not nil")
			}
		})
	}
}

func TestPage_StreetNumberOrder(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	testutil.SeedVoters(t, conn, []models.VoterRecord{
		{StateVoterID: "A1", StreetNumber: "10", StreetName: "MAIN"},
		{StateVoterID: "A2", StreetNumber: "9", StreetName: "MAIN"},
		{StateVoterID: "A3", StreetNumber: "100", StreetName: "MAIN"},
		{StateVoterID: "A4", StreetNumber: "2", StreetName: "ELM"},
	})

	store := db.NewVoterStore(conn, db.DialectSQLite)

	tests := []struct {
		dir         string
		expectedIDs []string
	}{
		{models.SortAsc, []string{"A4", "A2", "A1", "A3"}},
		{models.SortDesc, []string{"A3", "A1", "A2", "A4"}},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			resp, err := store.Page(context.Background(), models.DataRequest{Length: 25, OrderColumn: 2, OrderDir: tt.dir})
			if err != nil {
				t.Fatalf("Page failed: %v", err)
			}
			if got := ids(resp.Data); !equalStrings(got, tt.expectedIDs) {
				t.Errorf("Expected ids %v, got %v", tt.expectedIDs, got)
			}
		})
	}
}

func TestPage_MissingFieldsAreEmpty(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	testutil.SeedVoters(t, conn, testutil.SampleVoters)

	store := db.NewVoterStore(conn, db.DialectSQLite)
	resp, err := store.Page(context.Background(), models.DataRequest{Length: 25, Search: "carol"})
	if err != nil {
		t.Fatalf("Page failed: %v", err)
	}
	if len(resp.Data) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(resp.Data))
	}

	v := resp.Data[0]
	if v.StreetNumber != "" || v.StreetName != "" || v.Unit != "" || v.VoteLocation != "" {
		t.Errorf("Expected empty strings for missing fields, got %+v", v)
	}
}

func TestStats(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	testutil.SeedVoters(t, conn, testutil.SampleVoters)

	store := db.NewVoterStore(conn, db.DialectSQLite)
	bundle, err := store.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}

	tests := []struct {
		name     string
		counts   models.CountMap
		expected models.CountMap
	}{
		{"party", bundle.PartyCounts, models.CountMap{{Label: "DEM", Count: 3}, {Label: "REP", Count: 1}}},
		{"city", bundle.CityCounts, models.CountMap{{Label: "SPRINGFIELD", Count: 3}, {Label: "SHELBYVILLE", Count: 1}}},
		{"precinct", bundle.PrecinctCounts, models.CountMap{{Label: "101", Count: 2}, {Label: "102", Count: 1}, {Label: "201", Count: 1}}},
		{"ballot status", bundle.BallotStatusCounts, models.CountMap{{Label: "ACCEPTED", Count: 2}, {Label: "PENDING", Count: 1}, {Label: "REJECTED", Count: 1}}},
		{"vote method", bundle.VoteMethodCounts, models.CountMap{{Label: "MAIL", Count: 3}, {Label: "IN PERSON", Count: 1}}},
		{"ballot type", bundle.BallotTypeCounts, models.CountMap{{Label: "REGULAR", Count: 3}, {Label: "PROVISIONAL", Count: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.counts) != len(tt.expected) {
				t.Fatalf("Expected %v, got %v", tt.expected, tt.counts)
			}
			for i := range tt.expected {
				if tt.counts[i] != tt.expected[i] {
					t.Errorf("Entry %d: expected %v, got %v", i, tt.expected[i], tt.counts[i])
				}
			}
		})
	}
}

func TestStats_TopTenCities(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	var voters []models.VoterRecord
	for i := 0; i < 12; i++ {
		city := string(rune('A' + i))
		// city A gets 12 voters, B 11, ... L 1
		for j := 0; j < 12-i; j++ {
			voters = append(voters, models.VoterRecord{StateVoterID: city + string(rune('a'+j)), City: city})
		}
	}
	testutil.SeedVoters(t, conn, voters)

	bundle, err := db.NewVoterStore(conn, db.DialectSQLite).Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}

	if len(bundle.CityCounts) != models.TopCities {
		t.Fatalf("Expected %d cities, got %d", models.TopCities, len(bundle.CityCounts))
	}
	if bundle.CityCounts[0].Label != "A" || bundle.CityCounts[0].Count != 12 {
		t.Errorf("Expected A=12 first, got %v", bundle.CityCounts[0])
	}
	if _, ok := bundle.CityCounts.Get("L"); ok {
		t.Error("Least frequent city should be cut off")
	}
	if len(bundle.PartyCounts) != 0 {
		t.Errorf("Empty party values should not be counted, got %v", bundle.PartyCounts)
	}
}

func TestRebind(t *testing.T) {
	query := `SELECT * FROM voter WHERE city = ? AND zip = ? LIMIT ?`

	if got := db.Rebind(db.DialectSQLite, query); got != query {
		t.Errorf("sqlite query should be unchanged, got %s", got)
	}

	expected := `SELECT * FROM voter WHERE city = $1 AND zip = $2 LIMIT $3`
	if got := db.Rebind(db.DialectPostgres, query); got != expected {
		t.Errorf("Expected %s, got %s", expected, got)
	}
}
