package csvparser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParse(t *testing.T) {
	path := writeTemp(t, "Count,Name,Edition\n2,Lightning Bolt,MIR\n1,Counterspell,ICE\n")

	doc, err := Parse(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Count", "Name", "Edition"}, doc.Headers)
	assert.Equal(t, path, doc.SourceFile)
	require.Len(t, doc.Rows, 2)
	assert.Equal(t, "Lightning Bolt", doc.Rows[0]["Name"])
	assert.Equal(t, "ICE", doc.Rows[1]["Edition"])
}

func TestParseShortRecordsReadAsEmpty(t *testing.T) {
	path := writeTemp(t, "Count,Name,Edition\n2,Lightning Bolt\n")

	doc, err := Parse(path)
	require.NoError(t, err)

	require.Len(t, doc.Rows, 1)
	assert.Equal(t, "", doc.Rows[0]["Edition"])
}

func TestParseSkipsEmptyRows(t *testing.T) {
	path := writeTemp(t, "Count,Name\n1,Ponder\n,\n2,Opt\n")

	doc, err := Parse(path)
	require.NoError(t, err)

	require.Len(t, doc.Rows, 2)
	assert.Equal(t, "Opt", doc.Rows[1]["Name"])
}

func TestParseDoesNotTrimValues(t *testing.T) {
	path := writeTemp(t, "Name,Edition\nLightning Bolt, mir \n")

	doc, err := Parse(path)
	require.NoError(t, err)

	// Values pass through verbatim; normalization is the converter's job.
	assert.Equal(t, " mir ", doc.Rows[0]["Edition"])
}

func TestParseBlankHeaderGetsPositionalName(t *testing.T) {
	path := writeTemp(t, "Count,,Edition\n1,x,MIR\n")

	doc, err := Parse(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Count", "Column_2", "Edition"}, doc.Headers)
	assert.Equal(t, "x", doc.Rows[0]["Column_2"])
}

func TestParseEmptyFile(t *testing.T) {
	path := writeTemp(t, "")

	_, err := Parse(path)
	assert.Error(t, err)
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestStreamingParser(t *testing.T) {
	path := writeTemp(t, "Count,Name\n1,Ponder\n\n2,Opt\n")

	parser, err := NewStreamingParser(path)
	require.NoError(t, err)
	defer parser.Close()

	assert.Equal(t, []string{"Count", "Name"}, parser.Headers())

	var names []string
	for parser.Next() {
		names = append(names, parser.Row()["Name"])
	}

	require.NoError(t, parser.Err())
	assert.Equal(t, []string{"Ponder", "Opt"}, names)
}

func TestStreamingParserEmptyFile(t *testing.T) {
	path := writeTemp(t, "")

	_, err := NewStreamingParser(path)
	assert.Error(t, err)
}

func TestStreamingParserHeaderOnly(t *testing.T) {
	path := writeTemp(t, "Count,Name\n")

	parser, err := NewStreamingParser(path)
	require.NoError(t, err)
	defer parser.Close()

	assert.False(t, parser.Next())
	assert.NoError(t, parser.Err())
}
