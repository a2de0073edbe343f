// Package xlsxfile reads reference workbooks. It keeps excelize behind one
// small seam: open the file, take the first worksheet, hand back rows of
// cell strings. Everything format-specific stays in the library.
package xlsxfile

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadFirstSheet returns all rows of the workbook's first worksheet. Cell
// values come back as display strings; the converter's coercion rules do the
// parsing.
func ReadFirstSheet(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("no worksheets in %s", path)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading rows of %s: %w", path, err)
	}
	return rows, nil
}
