package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "moxbox.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadOptionalMissingFile(t *testing.T) {
	cfg, err := LoadOptional(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "log_level: debug\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadRejectsUnknownValues(t *testing.T) {
	_, err := Load(writeConfig(t, "log_level: loud\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "log_format: xml\n"))
	assert.Error(t, err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "log_level: [unclosed\n"))
	assert.Error(t, err)
}

func TestTablesOverlay(t *testing.T) {
	path := writeConfig(t, `
edition_codes:
  xyz: XY
edition_names:
  xyz: Example Set
  fin: Final Fantasy
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	tables := cfg.Tables()

	// Overlay entries resolve alongside the compiled-in data.
	assert.Equal(t, "XY", tables.ResolveCode("XYZ"))
	assert.Equal(t, "Example Set", tables.ResolveName("XYZ"))
	assert.Equal(t, "Final Fantasy", tables.ResolveName("FIN"))
	assert.Equal(t, "MI", tables.ResolveCode("MIR"))
	assert.Equal(t, "Mirage", tables.ResolveName("MIR"))
}

func TestTablesWithoutOverlay(t *testing.T) {
	tables := Default().Tables()

	assert.Equal(t, "3E", tables.ResolveCode("3ED"))
	assert.Equal(t, "Innistrad", tables.ResolveName("ISD"))
}
