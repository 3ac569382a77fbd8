// =============================================================================
// moxbox - Input Inspection Module
// =============================================================================
//
// This module inspects an inventory export before conversion and reports
// anything that will degrade to a lenient default:
//
//   - recognized input columns missing from the header
//   - edition codes absent from the name table (the Edition column in the
//     output will be empty for those rows)
//   - purchase prices that will default to $0.00
//
// Nothing here blocks conversion. The converter itself silently absorbs
// all of these conditions; inspection exists so a user can see them ahead
// of an import instead of discovering blank set names in Deckbox.
//
// =============================================================================

package validation

import (
	"fmt"
	"strings"

	"github.com/cardbench/moxbox/internal/converter"
	"github.com/cardbench/moxbox/internal/editions"
	"github.com/cardbench/moxbox/internal/types"
)

// =============================================================================
// REPORT STRUCTURES
// =============================================================================

// Warning describes one row-level finding.
type Warning struct {
	// Row is the data row number (1-indexed, excluding the header).
	Row int

	// Column is the input column the finding relates to.
	Column string

	// Message describes the finding and the default that will apply.
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("row %d, %s: %s", w.Row, w.Column, w.Message)
}

// Report is the outcome of inspecting one export.
type Report struct {
	// File is the inspected input path.
	File string

	// RowCount is the number of data rows inspected.
	RowCount int

	// MissingColumns lists recognized input columns absent from the
	// header. Missing columns read as empty for every row.
	MissingColumns []string

	// Warnings lists the row-level findings in file order.
	Warnings []Warning
}

// Clean returns true when the export will convert without any defaults
// being applied.
func (r *Report) Clean() bool {
	return len(r.MissingColumns) == 0 && len(r.Warnings) == 0
}

// Format renders the report for terminal output.
func (r *Report) Format() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Inspected %s (%d row(s))\n", r.File, r.RowCount)

	if r.Clean() {
		b.WriteString("No problems found.\n")
		return b.String()
	}

	if len(r.MissingColumns) > 0 {
		fmt.Fprintf(&b, "Missing columns (will read as empty): %s\n",
			strings.Join(r.MissingColumns, ", "))
	}

	for _, w := range r.Warnings {
		fmt.Fprintf(&b, "  - %s\n", w)
	}
	fmt.Fprintf(&b, "%d warning(s). Conversion will still succeed; these rows fall back to defaults.\n",
		len(r.Warnings))

	return b.String()
}

// =============================================================================
// INSPECTION
// =============================================================================

// Inspect checks a parsed export against the edition tables and the price
// format and returns a report of everything that will degrade silently.
func Inspect(doc *types.Document, tables *editions.Tables) *Report {
	report := &Report{
		File:     doc.SourceFile,
		RowCount: len(doc.Rows),
	}

	have := make(map[string]bool, len(doc.Headers))
	for _, header := range doc.Headers {
		have[header] = true
	}
	for _, col := range types.InputColumns {
		if !have[col] {
			report.MissingColumns = append(report.MissingColumns, col)
		}
	}

	for i, row := range doc.Rows {
		rowNum := i + 1

		code := editions.Normalize(row.Get(types.ColEdition))
		if code != "" {
			if _, ok := tables.LookupName(code); !ok {
				report.Warnings = append(report.Warnings, Warning{
					Row:    rowNum,
					Column: types.ColEdition,
					Message: fmt.Sprintf(
						"no set name known for edition code %q; the Edition column will be empty", code),
				})
			}
		}

		raw := strings.TrimSpace(row.Get(types.ColPurchasePrice))
		if raw != "" {
			if _, err := converter.ParsePrice(raw); err != nil {
				report.Warnings = append(report.Warnings, Warning{
					Row:    rowNum,
					Column: types.ColPurchasePrice,
					Message: fmt.Sprintf(
						"%q is not a price; will default to %s", raw, converter.DefaultPrice),
				})
			}
		}
	}

	return report
}
