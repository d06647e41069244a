package testsupport

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// SpreadsheetRow is one identifier/transcription pair for a test workbook.
type SpreadsheetRow struct {
	ID   int
	Text string
}

// WriteSpreadsheet writes an xlsx workbook whose first sheet holds the given
// header names in A1/B1 and one row per entry below them.
func WriteSpreadsheet(t testing.TB, path, idColumn, textColumn string, rows []SpreadsheetRow) {
	t.Helper()
	MkdirAll(t, filepath.Dir(path))

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			t.Fatalf("close workbook: %v", err)
		}
	}()

	sheet := f.GetSheetName(0)
	mustSetCell(t, f, sheet, "A1", idColumn)
	mustSetCell(t, f, sheet, "B1", textColumn)
	for i, row := range rows {
		cellA, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		cellB, err := excelize.CoordinatesToCellName(2, i+2)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		mustSetCell(t, f, sheet, cellA, row.ID)
		mustSetCell(t, f, sheet, cellB, row.Text)
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook %s: %v", path, err)
	}
}

// AppendSpreadsheetRow adds one raw string row below the existing content of
// the workbook's first sheet. Useful for rows a typed writer would coerce.
func AppendSpreadsheetRow(t testing.TB, path string, cells ...string) {
	t.Helper()

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook %s: %v", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			t.Fatalf("close workbook: %v", err)
		}
	}()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	for i, value := range cells {
		cell, err := excelize.CoordinatesToCellName(i+1, len(rows)+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		mustSetCell(t, f, sheet, cell, value)
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook %s: %v", path, err)
	}
}

func mustSetCell(t testing.TB, f *excelize.File, sheet, cell string, value any) {
	t.Helper()
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		t.Fatalf("set cell %s: %v", cell, err)
	}
}
