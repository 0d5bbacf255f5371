// Package sheet is the spreadsheet boundary of the reconciliation pipeline:
// it reads .xlsx exports into header-keyed rows for pkg/extract and renders
// per-family reports back into multi-sheet workbooks. The core never touches
// workbook bytes; everything it consumes and produces goes through here.
package sheet

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/irisfleet/fleetrecon/pkg/extract"
)

// ReadRows reads the first worksheet of the workbook at path into rows keyed
// by the header line. Empty cells are absent from the row map, matching how
// the extractors distinguish "missing" from "empty". Cell values arrive as
// the formatted strings excelize produces; numeric coercion happens in
// pkg/extract.
func ReadRows(path string) ([]extract.Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, excelize.ErrSheetNotExist{SheetName: ""}
	}

	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []extract.Row{}, nil
	}

	headers := make([]string, len(raw[0]))
	for i, h := range raw[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]extract.Row, 0, len(raw)-1)
	for _, line := range raw[1:] {
		row := make(extract.Row, len(headers))
		for i, cell := range line {
			if i >= len(headers) || headers[i] == "" || cell == "" {
				continue
			}
			row[headers[i]] = cell
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	return rows, nil
}
