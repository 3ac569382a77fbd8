// =============================================================================
// moxbox - CSV Parser Module
// =============================================================================
//
// This module parses Moxfield CSV inventory exports. Lookup is header
// driven: the column order of the input file is irrelevant, and rows are
// exposed as header -> value maps. Values are copied through verbatim; any
// trimming or normalization belongs to the converter, not the parser.
//
// Two entry points are provided:
//   - Parse reads the whole file into a Document (used for inspection).
//   - StreamingParser yields one row at a time (used for conversion, so a
//     large collection never has to sit in memory twice).
//
// =============================================================================

package csvparser

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cardbench/moxbox/internal/types"
)

// =============================================================================
// WHOLE-FILE PARSER
// =============================================================================

// Parse reads a CSV file and returns the parsed document.
//
// The first record is the header row; every following record becomes a
// header -> value map. Records shorter than the header read as empty for
// the missing columns, and fully empty records are skipped.
func Parse(filePath string) (*types.Document, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := newReader(file)

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(allRows) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}

	headers := cleanHeaders(allRows[0])

	rows := make([]types.Row, 0, len(allRows)-1)
	for _, record := range allRows[1:] {
		if isRowEmpty(record) {
			continue
		}
		rows = append(rows, recordToRow(record, headers))
	}

	return &types.Document{
		Headers:    headers,
		Rows:       rows,
		SourceFile: filePath,
	}, nil
}

// newReader builds a CSV reader configured for inventory exports.
func newReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(bufio.NewReader(r))

	// Exports occasionally carry ragged rows or loosely quoted fields;
	// neither should abort the batch.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	return reader
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

// recordToRow maps a raw record onto the header names.
func recordToRow(record []string, headers []string) types.Row {
	row := make(types.Row, len(headers))
	for i, header := range headers {
		if i < len(record) {
			row[header] = record[i]
		} else {
			row[header] = ""
		}
	}
	return row
}

// isRowEmpty checks if a record contains only empty values.
func isRowEmpty(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// =============================================================================
// STREAMING PARSER
// =============================================================================

// StreamingParser provides memory-efficient parsing for large exports.
// Instead of loading the entire file, it yields rows one at a time.
//
// USAGE:
//   parser, err := NewStreamingParser(filePath)
//   if err != nil {
//       return err
//   }
//   defer parser.Close()
//
//   for parser.Next() {
//       row := parser.Row()
//       // Process the row...
//   }
//
//   if err := parser.Err(); err != nil {
//       return err
//   }
type StreamingParser struct {
	file       *os.File
	reader     *csv.Reader
	headers    []string
	currentRow types.Row
	rowNumber  int
	err        error
}

// NewStreamingParser opens a CSV file and reads its header row.
func NewStreamingParser(filePath string) (*StreamingParser, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	parser := &StreamingParser{
		file:   file,
		reader: newReader(file),
	}

	if err := parser.readHeaders(); err != nil {
		file.Close()
		return nil, err
	}

	return parser, nil
}

// readHeaders reads the header row.
func (p *StreamingParser) readHeaders() error {
	record, err := p.reader.Read()
	if err == io.EOF {
		return fmt.Errorf("CSV file is empty")
	}
	if err != nil {
		return fmt.Errorf("error reading header row: %w", err)
	}

	p.headers = cleanHeaders(record)
	p.rowNumber++
	return nil
}

// Next advances to the next data row. Returns false when there are no
// more rows or a read error occurred; empty rows are skipped.
func (p *StreamingParser) Next() bool {
	if p.err != nil {
		return false
	}

	for {
		record, err := p.reader.Read()
		if err == io.EOF {
			return false
		}
		if err != nil {
			p.err = fmt.Errorf("error reading row %d: %w", p.rowNumber+1, err)
			return false
		}

		p.rowNumber++

		if isRowEmpty(record) {
			continue
		}

		p.currentRow = recordToRow(record, p.headers)
		return true
	}
}

// Row returns the current row.
func (p *StreamingParser) Row() types.Row {
	return p.currentRow
}

// Headers returns the parsed headers.
func (p *StreamingParser) Headers() []string {
	return p.headers
}

// RowNumber returns the current row number in the file (1-indexed,
// counting the header row).
func (p *StreamingParser) RowNumber() int {
	return p.rowNumber
}

// Err returns any error that occurred during parsing.
func (p *StreamingParser) Err() error {
	return p.err
}

// Close closes the underlying file.
func (p *StreamingParser) Close() error {
	return p.file.Close()
}
