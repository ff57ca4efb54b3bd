// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/voter-browser/models"
)

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchData_Normalization(t *testing.T) {
	tests := []struct {
		name string
		body string
		rows int
	}{
		{"null data", `{"data": null}`, 0},
		{"missing data", `{}`, 0},
		{"empty data", `{"data": []}`, 0},
		{"two rows", `{"draw": 1, "recordsTotal": 2, "recordsFiltered": 2, "data": [{"STATE_VOTERID": "V1"}, {"VOTER_NAME": "X"}]}`, 2},
		{"numeric fields", `{"data": [{"STATE_VOTERID": "1", "STREET_NUMBER": 12, "ZIP": 89101}]}`, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := serve(t, http.StatusOK, tt.body)
			c := New(srv.URL, nil, time.Second)

			resp, err := c.FetchData(context.Background(), models.DefaultDataRequest())
			if err != nil {
				t.Fatalf("FetchData failed: %v", err)
			}
			if resp.Data == nil {
				t.Fatal("Data should never be nil")
			}
			if len(resp.Data) != tt.rows {
				t.Errorf("Expected %d rows, got %d", tt.rows, len(resp.Data))
			}
		})
	}
}

func TestFetchData_NumericFields(t *testing.T) {
	srv := serve(t, http.StatusOK, `{"data": [{"STATE_VOTERID": "1", "STREET_NUMBER": 12, "ZIP": 89101, "VOTER_NAME": null}]}`)

	resp, err := New(srv.URL, nil, time.Second).FetchData(context.Background(), models.DefaultDataRequest())
	if err != nil {
		t.Fatalf("FetchData failed: %v", err)
	}
	if len(resp.Data) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(resp.Data))
	}
	got := resp.Data[0]
	if got.StreetNumber != "12" || got.Zip != "89101" || got.VoterName != "" {
		t.Errorf("Expected numbers as text and null as empty, got %+v", got)
	}
}

func TestFetchData_SendsGridParameters(t *testing.T) {
	var got models.DataRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/data" {
			t.Errorf("Unexpected request %s %s", r.Method, r.URL.Path)
		}
		got = models.ParseDataRequest(r.URL.Query())
		w.Write([]byte(`{"data": []}`))
	}))
	defer srv.Close()

	req := models.DataRequest{Draw: 4, Start: 50, Length: 25, Search: "ann smith", OrderColumn: 3, OrderDir: models.SortDesc}
	if _, err := New(srv.URL+"/", nil, time.Second).FetchData(context.Background(), req); err != nil {
		t.Fatalf("FetchData failed: %v", err)
	}

	if got != req {
		t.Errorf("Expected server to see %+v, got %+v", req, got)
	}
}

func TestFetch_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		kind   FetchKind
	}{
		{"server error", http.StatusInternalServerError, `{"error": "boom"}`, KindStatus},
		{"not found", http.StatusNotFound, `nope`, KindStatus},
		{"html body", http.StatusOK, `<html></html>`, KindDecode},
		{"array body", http.StatusOK, `[1, 2]`, KindDecode},
		{"wrong type", http.StatusOK, `{"data": "rows"}`, KindDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := serve(t, tt.status, tt.body)
			_, err := New(srv.URL, nil, time.Second).FetchData(context.Background(), models.DefaultDataRequest())

			var fe *FetchError
			if !errors.As(err, &fe) {
				t.Fatalf("Expected *FetchError, got %v", err)
			}
			if fe.Kind != tt.kind {
				t.Errorf("Expected kind %s, got %s", tt.kind, fe.Kind)
			}
			if fe.StatusCode != tt.status {
				t.Errorf("Expected status %d, got %d", tt.status, fe.StatusCode)
			}
			if fe.Body != tt.body {
				t.Errorf("Expected body %q kept for logging, got %q", tt.body, fe.Body)
			}
		})
	}
}

func TestFetch_TransportError(t *testing.T) {
	srv := serve(t, http.StatusOK, `{}`)
	url := srv.URL
	srv.Close()

	_, err := New(url, nil, time.Second).FetchStats(context.Background())

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("Expected *FetchError, got %v", err)
	}
	if fe.Kind != KindTransport {
		t.Errorf("Expected transport error, got %s", fe.Kind)
	}
	if fe.StatusCode != 0 {
		t.Errorf("Expected no status code, got %d", fe.StatusCode)
	}
}

func TestFetchStats_KeepsOrder(t *testing.T) {
	srv := serve(t, http.StatusOK, `{"party_counts": {"REP": 95, "DEM": 120, "IND": 3}, "city_counts": null}`)

	bundle, err := New(srv.URL, nil, time.Second).FetchStats(context.Background())
	if err != nil {
		t.Fatalf("FetchStats failed: %v", err)
	}

	labels := bundle.PartyCounts.Labels()
	expected := []string{"REP", "DEM", "IND"}
	if len(labels) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, labels)
	}
	for i := range expected {
		if labels[i] != expected[i] {
			t.Errorf("Expected label %d to be %s, got %s", i, expected[i], labels[i])
		}
	}
	if n, _ := bundle.PartyCounts.Get("DEM"); n != 120 {
		t.Errorf("Expected DEM=120, got %d", n)
	}
	if len(bundle.CityCounts) != 0 {
		t.Errorf("Expected null city counts to be empty, got %v", bundle.CityCounts)
	}
}
