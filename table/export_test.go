// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package table

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/danielhkuo/voter-browser/models"
	"github.com/danielhkuo/voter-browser/testutil"
)

func loadedController(t *testing.T) *Controller {
	t.Helper()
	voters := append([]models.VoterRecord{}, testutil.SampleVoters...)
	voters[2].VoterName = "CAROL \"CJ\"\tSMITH"
	voters[2].Zip = "00501"

	c := NewController(fetchFunc(func(ctx context.Context, req models.DataRequest) (models.DataResponse, error) {
		return models.DataResponse{RecordsTotal: 4, RecordsFiltered: 4, Data: voters}, nil
	}), nil)
	if _, err := c.Load(context.Background(), models.DefaultDataRequest()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return c
}

func TestExport_CSV(t *testing.T) {
	c := loadedController(t)

	var buf bytes.Buffer
	if err := c.Export(&buf, FormatCSV); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("Export is not valid CSV: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("Expected header + 4 rows, got %d", len(records))
	}
	if records[0][2] != "Address" {
		t.Errorf("Expected Address header, got %q", records[0][2])
	}
	if records[1][2] != "12 N MAIN ST" {
		t.Errorf("Expected rendered address, got %q", records[1][2])
	}
	if records[3][1] != "CAROL \"CJ\"\tSMITH" {
		t.Errorf("Expected quoted name to round trip, got %q", records[3][1])
	}
}

func TestExport_Copy(t *testing.T) {
	c := loadedController(t)

	var buf bytes.Buffer
	if err := c.Export(&buf, FormatCopy); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	lines := strings.Split(buf.String(), "\n")
	if len(lines) != 5 {
		t.Fatalf("Expected 5 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if n := len(strings.Split(line, "\t")); n != models.NumColumns {
			t.Errorf("Line %d: expected %d cells, got %d", i, models.NumColumns, n)
		}
	}
	if !strings.HasPrefix(lines[2], "V002\tBOB JONES\t400 OAK AVE 4B\t") {
		t.Errorf("Unexpected copy line %q", lines[2])
	}
}

func TestExport_XLSX(t *testing.T) {
	c := loadedController(t)

	var buf bytes.Buffer
	if err := c.Export(&buf, FormatXLSX); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("Export is not a workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("Expected header + 4 rows, got %d", len(rows))
	}
	if rows[0][11] != "Ballot Status" {
		t.Errorf("Expected Ballot Status header, got %q", rows[0][11])
	}
	if rows[3][5] != "00501" {
		t.Errorf("Expected ZIP kept as text, got %q", rows[3][5])
	}
	if rows[3][2] != "" {
		t.Errorf("Expected empty address for a voter without street fields, got %q", rows[3][2])
	}
}

func TestExport_UnknownFormat(t *testing.T) {
	c := loadedController(t)
	if err := c.Export(&bytes.Buffer{}, "pdf"); err == nil {
		t.Error("Expected an error for an unknown format")
	}
}
