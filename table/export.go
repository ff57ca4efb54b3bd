// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Export formats offered next to the table
const (
	FormatCopy = "copy"
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// SheetName is the worksheet holding exported rows.
const SheetName = "Voters"

// Export writes the loaded rows of the current view in format.
// Exports use the rendered cell values, so the address is AddressLine.
func (c *Controller) Export(w io.Writer, format string) error {
	rows := c.View().Rows
	switch format {
	case FormatCopy:
		_, err := io.WriteString(w, CopyText(rows))
		return err
	case FormatCSV:
		return WriteCSV(w, rows)
	case FormatXLSX:
		return WriteXLSX(w, rows)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

var copyEscaper = strings.NewReplacer("\t", " ", "\r", " ", "\n", " ")

// CopyText renders rows as tab separated lines for the clipboard.
func CopyText(rows []DisplayRow) string {
	var b strings.Builder
	b.WriteString(strings.Join(Columns[:], "\t"))
	for _, r := range rows {
		b.WriteByte('\n')
		cells := r.Cells()
		for i, cell := range cells {
			cells[i] = copyEscaper.Replace(cell)
		}
		b.WriteString(strings.Join(cells, "\t"))
	}
	return b.String()
}

// WriteCSV writes a header line followed by one line per row.
func WriteCSV(w io.Writer, rows []DisplayRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns[:]); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(r.Cells()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes a workbook with a bold header row. Every cell is stored
// as text so identifiers and ZIP codes keep their leading zeros.
func WriteXLSX(w io.Writer, rows []DisplayRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := Columns[:]
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetRowStyle(SheetName, 1, 1, bold); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		cells := r.Cells()
		if err := f.SetSheetRow(SheetName, cell, &cells); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	return f.Write(w)
}
