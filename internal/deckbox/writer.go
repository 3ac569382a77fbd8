// =============================================================================
// moxbox - Deckbox Writer Module
// =============================================================================
//
// This module writes converted rows in the Deckbox import format: a UTF-8
// CSV whose header and every data row carry the 19 output columns in a
// fixed order. Column order is a hard invariant of the format; Deckbox
// matches columns by position on import.
//
// Output is written to a sibling temp file and renamed into place on
// Commit, so the destination path never holds a half-written file.
//
// =============================================================================

package deckbox

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cardbench/moxbox/internal/types"
	"github.com/cardbench/moxbox/pkg/fileutil"
)

// =============================================================================
// WRITER
// =============================================================================

// Writer emits Deckbox import rows to a file.
type Writer struct {
	path string
	tmp  string
	file *os.File
	csv  *csv.Writer
	done bool
}

// NewWriter creates the output file and writes the header row.
// The file is staged under a temporary name until Commit.
func NewWriter(path string) (*Writer, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := fileutil.EnsureDir(dir); err != nil {
			return nil, err
		}
	}

	tmp := fileutil.TempPath(path)
	file, err := os.Create(tmp)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	w := &Writer{
		path: path,
		tmp:  tmp,
		file: file,
		csv:  csv.NewWriter(file),
	}

	if err := w.csv.Write(types.OutputColumns); err != nil {
		w.Discard()
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	return w, nil
}

// WriteRow writes one converted row, emitting the output columns in the
// fixed Deckbox order. Columns absent from the row are written empty.
func (w *Writer) WriteRow(row types.Row) error {
	record := make([]string, len(types.OutputColumns))
	for i, col := range types.OutputColumns {
		record[i] = row.Get(col)
	}
	return w.csv.Write(record)
}

// Commit flushes the output and moves it to its final path.
func (w *Writer) Commit() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		w.Discard()
		return err
	}
	if err := w.file.Close(); err != nil {
		os.Remove(w.tmp)
		return err
	}
	if err := os.Rename(w.tmp, w.path); err != nil {
		os.Remove(w.tmp)
		return err
	}
	w.done = true
	return nil
}

// Discard abandons the output and removes the temp file.
// Calling Discard after a successful Commit is a no-op.
func (w *Writer) Discard() {
	if w.done {
		return
	}
	w.file.Close()
	os.Remove(w.tmp)
	w.done = true
}

// =============================================================================
// CONVENIENCE
// =============================================================================

// WriteFile writes all rows to path in one call.
func WriteFile(path string, rows []types.Row) error {
	w, err := NewWriter(path)
	if err != nil {
		return err
	}

	for i, row := range rows {
		if err := w.WriteRow(row); err != nil {
			w.Discard()
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	return w.Commit()
}
