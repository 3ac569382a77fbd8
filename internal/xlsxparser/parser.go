// =============================================================================
// moxbox - XLSX Parser Module
// =============================================================================
//
// This module reads an inventory export saved as an XLSX workbook and
// produces the same Document shape as the CSV parser, so the rest of the
// pipeline does not care which format the collection arrived in.
//
// Only the first sheet is read: inventory exports are single-sheet files,
// and extra sheets (notes, pivot tables) are ignored rather than rejected.
//
// =============================================================================

package xlsxparser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/cardbench/moxbox/internal/types"
)

// Parse reads an XLSX workbook and returns the parsed document.
//
// The first row of the first sheet is the header row; every following row
// becomes a header -> value map. Rows shorter than the header read as
// empty for the missing columns, and fully empty rows are skipped.
func Parse(filePath string) (*types.Document, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	allRows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}
	if len(allRows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheetName)
	}

	headers := cleanHeaders(allRows[0])

	rows := make([]types.Row, 0, len(allRows)-1)
	for _, record := range allRows[1:] {
		if isRowEmpty(record) {
			continue
		}

		row := make(types.Row, len(headers))
		for i, header := range headers {
			if i < len(record) {
				row[header] = record[i]
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}

	return &types.Document{
		Headers:    headers,
		Rows:       rows,
		SourceFile: filePath,
	}, nil
}

// cleanHeaders trims header cells and names any blank ones by position.
func cleanHeaders(headers []string) []string {
	cleaned := make([]string, len(headers))
	for i, header := range headers {
		header = strings.TrimSpace(header)
		if header == "" {
			header = fmt.Sprintf("Column_%d", i+1)
		}
		cleaned[i] = header
	}
	return cleaned
}

// isRowEmpty checks if a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
