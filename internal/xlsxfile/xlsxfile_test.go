package xlsxfile

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatal(err)
		}
	}

	path := filepath.Join(t.TempDir(), "input.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadFirstSheet(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"ID", "Name", "Längengrad"},
		{"site1", "Rathausgarage", "11.5"},
	})

	rows, err := ReadFirstSheet(path)
	if err != nil {
		t.Fatalf("ReadFirstSheet: %v", err)
	}

	want := [][]string{
		{"ID", "Name", "Längengrad"},
		{"site1", "Rathausgarage", "11.5"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows = %v, want %v", rows, want)
	}
}

func TestReadFirstSheetMissingFile(t *testing.T) {
	if _, err := ReadFirstSheet(filepath.Join(t.TempDir(), "nope.xlsx")); err == nil {
		t.Error("expected error for missing file")
	}
}
