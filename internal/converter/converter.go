// =============================================================================
// moxbox - Converter Module
// =============================================================================
//
// This module contains the core conversion logic: the pure row mapping from
// a Moxfield inventory line to a Deckbox import line, and the Runner that
// orchestrates the pipeline for one file.
//
// CONVERSION PIPELINE:
//   1. Open the output writer (temp file, committed on success)
//   2. Parse the input file (CSV streamed, XLSX loaded)
//   3. Convert each row independently
//   4. Write each converted row
//   5. Commit the output and report the result
//
// Rows are processed one at a time with no shared mutable state between
// them. Row-level problems (unknown edition codes, unparseable prices)
// degrade to lenient defaults and never abort the batch; only file-level
// I/O failures are fatal.
//
// =============================================================================

package converter

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/cardbench/moxbox/internal/csvparser"
	"github.com/cardbench/moxbox/internal/deckbox"
	"github.com/cardbench/moxbox/internal/editions"
	"github.com/cardbench/moxbox/internal/types"
	"github.com/cardbench/moxbox/internal/xlsxparser"
)

// =============================================================================
// ROW CONVERSION
// =============================================================================

// Convert maps one Moxfield inventory row to a Deckbox import row.
//
// The returned row always contains every output column:
//   - Count, Name, Card Number, Condition, Language, Foil and Tags are
//     copied through unchanged (Collector Number becomes Card Number).
//   - Tradelist Count is the literal "0".
//   - Edition Code and Edition are resolved through the lookup tables.
//   - My Price is the normalized purchase price.
//   - All remaining columns stay empty.
//
// Convert is a pure function: missing input fields read as empty strings
// and no condition makes it fail the row.
func Convert(in types.Row, tables *editions.Tables) types.Row {
	out := make(types.Row, len(types.OutputColumns))
	for _, col := range types.OutputColumns {
		out[col] = ""
	}

	code := editions.Normalize(in.Get(types.ColEdition))

	out[types.OutCount] = in.Get(types.ColCount)
	out[types.OutTradelistCount] = "0"
	out[types.OutName] = in.Get(types.ColName)
	out[types.OutEdition] = tables.ResolveName(code)
	out[types.OutEditionCode] = tables.ResolveCode(code)
	out[types.OutCardNumber] = in.Get(types.ColCollectorNumber)
	out[types.OutCondition] = in.Get(types.ColCondition)
	out[types.OutLanguage] = in.Get(types.ColLanguage)
	out[types.OutFoil] = in.Get(types.ColFoil)
	out[types.OutTags] = in.Get(types.ColTags)
	out[types.OutMyPrice] = FormatPrice(in.Get(types.ColPurchasePrice))

	return out
}

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of converting a single file.
type Result struct {
	// InputFile is the path to the input file that was processed.
	InputFile string

	// OutputFile is the path to the generated Deckbox CSV.
	// This is empty if processing failed.
	OutputFile string

	// Stats contains processing statistics.
	Stats Stats
}

// Stats contains statistics about the processing.
type Stats struct {
	// RowsProcessed is the number of inventory rows converted.
	RowsProcessed int

	// ProcessingTime is the time taken to process the file.
	ProcessingTime time.Duration
}

// =============================================================================
// RUNNER
// =============================================================================

// Runner converts a single inventory export file.
type Runner struct {
	inputPath  string
	outputPath string
	tables     *editions.Tables
}

// NewRunner creates a Runner for one input/output file pair.
func NewRunner(inputPath, outputPath string, tables *editions.Tables) *Runner {
	return &Runner{
		inputPath:  inputPath,
		outputPath: outputPath,
		tables:     tables,
	}
}

// Run executes the conversion pipeline for the file.
//
// CSV input is streamed row by row; XLSX input is loaded whole, since the
// workbook format does not stream. On any failure the partially written
// output is discarded, so the output path either holds a complete file or
// nothing.
func (r *Runner) Run() (Result, error) {
	start := time.Now()
	result := Result{InputFile: r.inputPath}

	writer, err := deckbox.NewWriter(r.outputPath)
	if err != nil {
		return result, fmt.Errorf("failed to open output: %w", err)
	}

	var rows int
	if isXLSX(r.inputPath) {
		rows, err = r.convertDocument(writer)
	} else {
		rows, err = r.convertStream(writer)
	}
	if err != nil {
		writer.Discard()
		return result, err
	}

	if err := writer.Commit(); err != nil {
		return result, fmt.Errorf("failed to write output: %w", err)
	}

	result.OutputFile = r.outputPath
	result.Stats.RowsProcessed = rows
	result.Stats.ProcessingTime = time.Since(start)

	slog.Debug("conversion complete",
		"input", r.inputPath,
		"output", r.outputPath,
		"rows", rows,
		"elapsed", result.Stats.ProcessingTime,
	)

	return result, nil
}

// convertStream converts a CSV input one row at a time.
func (r *Runner) convertStream(writer *deckbox.Writer) (int, error) {
	parser, err := csvparser.NewStreamingParser(r.inputPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open input: %w", err)
	}
	defer parser.Close()

	rows := 0
	for parser.Next() {
		if err := writer.WriteRow(Convert(parser.Row(), r.tables)); err != nil {
			return rows, fmt.Errorf("failed to write row %d: %w", parser.RowNumber(), err)
		}
		rows++
	}
	if err := parser.Err(); err != nil {
		return rows, fmt.Errorf("failed to read input: %w", err)
	}

	return rows, nil
}

// convertDocument converts a fully loaded input document.
func (r *Runner) convertDocument(writer *deckbox.Writer) (int, error) {
	doc, err := LoadDocument(r.inputPath)
	if err != nil {
		return 0, err
	}

	for i, row := range doc.Rows {
		if err := writer.WriteRow(Convert(row, r.tables)); err != nil {
			return i, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	return len(doc.Rows), nil
}

// =============================================================================
// INPUT LOADING
// =============================================================================

// LoadDocument reads an inventory export into memory, choosing the parser
// by file extension. Anything that is not an XLSX workbook is treated as
// CSV.
func LoadDocument(path string) (*types.Document, error) {
	if isXLSX(path) {
		return xlsxparser.Parse(path)
	}
	return csvparser.Parse(path)
}

// isXLSX reports whether the path looks like an XLSX workbook.
func isXLSX(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xlsx")
}
