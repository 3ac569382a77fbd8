package xlsxparser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "inventory.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestParse(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Count", "Name", "Edition", "Purchase Price"},
		{"2", "Lightning Bolt", "MIR", "$1.25"},
		{"1", "Counterspell", "ICE", ""},
	})

	doc, err := Parse(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Count", "Name", "Edition", "Purchase Price"}, doc.Headers)
	assert.Equal(t, path, doc.SourceFile)
	require.Len(t, doc.Rows, 2)
	assert.Equal(t, "Lightning Bolt", doc.Rows[0]["Name"])
	assert.Equal(t, "ICE", doc.Rows[1]["Edition"])
}

func TestParseShortRowsReadAsEmpty(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Count", "Name", "Edition"},
		{"2", "Lightning Bolt"},
	})

	doc, err := Parse(path)
	require.NoError(t, err)

	require.Len(t, doc.Rows, 1)
	assert.Equal(t, "", doc.Rows[0]["Edition"])
}

func TestParseSkipsEmptyRows(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Count", "Name"},
		{"1", "Ponder"},
		{"", ""},
		{"2", "Opt"},
	})

	doc, err := Parse(path)
	require.NoError(t, err)

	require.Len(t, doc.Rows, 2)
	assert.Equal(t, "Opt", doc.Rows[1]["Name"])
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.Error(t, err)
}

func TestParseNotAWorkbook(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inventory.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("Count,Name\n1,Opt\n"), 0644))

	_, err := Parse(path)
	assert.Error(t, err)
}
