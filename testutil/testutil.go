// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/danielhkuo/voter-browser/cliparse"
	"github.com/danielhkuo/voter-browser/db"
	"github.com/danielhkuo/voter-browser/models"
)

// SetupTestDB creates a fresh sqlite database with the full schema in a
// temporary directory.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	url := "file:" + filepath.Join(t.TempDir(), "voters.db")
	conn, err := db.Open(db.DialectSQLite, url)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(context.Background(), conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Command:      cliparse.CommandServe,
		Port:         3318,
		DatabaseURL:  "file::memory:",
		DatabaseType: cliparse.DatabaseSQLite,
		UpstreamURL:  "http://127.0.0.1:3318",
		Locale:       language.AmericanEnglish,
		FetchTimeout: 5 * time.Second,
	}
}

// SampleVoters is a small fixed data set covering partial addresses and
// missing fields.
var SampleVoters = []models.VoterRecord{
	{
		StateVoterID: "V001", VoterName: "ALICE ANN SMITH",
		StreetNumber: "12", StreetPredirection: "N", StreetName: "MAIN", StreetType: "ST",
		City: "SPRINGFIELD", State: "IL", Zip: "62701",
		VoterRegParty: "DEM", Precinct: "101", BallotType: "REGULAR",
		BallotVoteMethod: "MAIL", VoteLocation: "CITY HALL", BallotStatus: "ACCEPTED",
	},
	{
		StateVoterID: "V002", VoterName: "BOB JONES",
		StreetNumber: "400", StreetName: "OAK", StreetType: "AVE", Unit: "4B",
		City: "SPRINGFIELD", State: "IL", Zip: "62702",
		VoterRegParty: "REP", Precinct: "102", BallotType: "REGULAR",
		BallotVoteMethod: "IN PERSON", VoteLocation: "LIBRARY", BallotStatus: "ACCEPTED",
	},
	{
		StateVoterID: "V003", VoterName: "CAROL SMITH",
		City: "SHELBYVILLE", State: "IL", Zip: "62565",
		VoterRegParty: "DEM", Precinct: "201", BallotType: "PROVISIONAL",
		BallotVoteMethod: "MAIL", BallotStatus: "PENDING",
	},
	{
		StateVoterID: "V004", VoterName: "DAVE ANN",
		StreetNumber: "7", StreetName: "ELM",
		City: "SPRINGFIELD", State: "IL",
		VoterRegParty: "DEM", Precinct: "101", BallotType: "REGULAR",
		BallotVoteMethod: "MAIL", VoteLocation: "CITY HALL", BallotStatus: "REJECTED",
	},
}

// SeedVoters inserts records through the CSV importer.
func SeedVoters(t *testing.T, conn *sql.DB, records []models.VoterRecord) {
	t.Helper()

	if _, err := db.ImportCSV(context.Background(), conn, db.DialectSQLite, strings.NewReader(VotersCSV(records))); err != nil {
		t.Fatalf("Failed to seed voters: %v", err)
	}
}

// VotersCSV renders records in the voter status file layout.
func VotersCSV(records []models.VoterRecord) string {
	var b strings.Builder
	b.WriteString("STATE_VOTERID,VOTER_NAME,STREET_NUMBER,STREET_PREDIRECTION,STREET_NAME,STREET_TYPE,UNIT,CITY,STATE,ZIP,VOTER_REG_PARTY,PRECINCT,BALLOT_TYPE,BALLOT_VOTE_METHOD,VOTE_LOCATION,BALLOT_STATUS\n")
	for _, v := range records {
		b.WriteString(strings.Join([]string{
			v.StateVoterID, v.VoterName, v.StreetNumber, v.StreetPredirection,
			v.StreetName, v.StreetType, v.Unit, v.City, v.State, v.Zip,
			v.VoterRegParty, v.Precinct, v.BallotType, v.BallotVoteMethod,
			v.VoteLocation, v.BallotStatus,
		}, ","))
		b.WriteByte('\n')
	}
	return b.String()
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
