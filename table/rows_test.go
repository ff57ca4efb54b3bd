// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package table

import (
	"testing"

	"github.com/danielhkuo/voter-browser/models"
)

func TestAddressLine(t *testing.T) {
	tests := []struct {
		name     string
		parts    [5]string
		expected string
	}{
		{"full street", [5]string{"12", "N", "Main", "St", ""}, "12 N Main St"},
		{"all empty", [5]string{"", "", "", "", ""}, ""},
		{"unit only", [5]string{"", "", "", "", "4B"}, "4B"},
		{"gaps collapse", [5]string{"400", "", "Oak", "", "4B"}, "400 Oak 4B"},
		{"whitespace only parts skipped", [5]string{" ", "", "Elm", "  ", ""}, "Elm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.parts
			got := AddressLine(p[0], p[1], p[2], p[3], p[4])
			if got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestNewDisplayRow_ColumnOrder(t *testing.T) {
	v := models.VoterRecord{
		StateVoterID: "V1", VoterName: "NAME",
		StreetNumber: "12", StreetPredirection: "N", StreetName: "MAIN", StreetType: "ST",
		City: "CITY", State: "ST8", Zip: "00501",
		VoterRegParty: "DEM", Precinct: "P1", BallotType: "BT",
		BallotVoteMethod: "VM", VoteLocation: "VL", BallotStatus: "BS",
	}

	cells := NewDisplayRow(v).Cells()
	expected := []string{"V1", "NAME", "12 N MAIN ST", "CITY", "ST8", "00501", "DEM", "P1", "BT", "VM", "VL", "BS"}

	if len(cells) != models.NumColumns {
		t.Fatalf("Expected %d cells, got %d", models.NumColumns, len(cells))
	}
	for i := range expected {
		if cells[i] != expected[i] {
			t.Errorf("Column %d (%s): expected %q, got %q", i, Columns[i], expected[i], cells[i])
		}
	}
}

func TestNewDisplayRow_EmptyRecord(t *testing.T) {
	cells := NewDisplayRow(models.VoterRecord{}).Cells()

	if len(cells) != models.NumColumns {
		t.Fatalf("Expected %d cells, got %d", models.NumColumns, len(cells))
	}
	for i, c := range cells {
		if c != "" {
			t.Errorf("Column %d should be empty, got %q", i, c)
		}
	}
}
