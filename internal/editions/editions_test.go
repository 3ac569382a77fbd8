package editions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"mir", "MIR"},
		{" mir ", "MIR"},
		{"MIR", "MIR"},
		{"\t3ed\n", "3ED"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Normalize(tt.input), "input %q", tt.input)
	}
}

func TestResolveCode(t *testing.T) {
	tables := Default()

	// Known exceptions remap.
	assert.Equal(t, "3E", tables.ResolveCode("3ED"))
	assert.Equal(t, "PLIST", tables.ResolveCode("PLST"))
	assert.Equal(t, "MI", tables.ResolveCode("MIR"))
	assert.Equal(t, "IA", tables.ResolveCode("ICE"))
	assert.Equal(t, "GU", tables.ResolveCode("ULG"))
	assert.Equal(t, "FNMP", tables.ResolveCode("F11"))

	// Everything else passes through, including unknowns and empty.
	assert.Equal(t, "ISD", tables.ResolveCode("ISD"))
	assert.Equal(t, "ZZZ", tables.ResolveCode("ZZZ"))
	assert.Equal(t, "", tables.ResolveCode(""))
}

func TestResolveName(t *testing.T) {
	tables := Default()

	assert.Equal(t, "Mirage", tables.ResolveName("MIR"))
	assert.Equal(t, "Innistrad", tables.ResolveName("ISD"))
	assert.Equal(t, "Urza's Legacy", tables.ResolveName("ULG"))
	assert.Equal(t, "Warhammer 40,000", tables.ResolveName("40K"))

	// Unknown codes resolve to empty, not an error.
	assert.Equal(t, "", tables.ResolveName("ZZZ"))
	assert.Equal(t, "", tables.ResolveName(""))
}

func TestLookupName(t *testing.T) {
	tables := Default()

	name, ok := tables.LookupName("MIR")
	assert.True(t, ok)
	assert.Equal(t, "Mirage", name)

	_, ok = tables.LookupName("ZZZ")
	assert.False(t, ok)
}

func TestMerge(t *testing.T) {
	tables := Default()
	tables.Merge(
		map[string]string{" xyz ": "XY", "3ed": "R3"},
		map[string]string{"xyz": "Example Set"},
	)

	// New entries resolve, keys normalized on the way in.
	assert.Equal(t, "XY", tables.ResolveCode("XYZ"))
	assert.Equal(t, "Example Set", tables.ResolveName("XYZ"))

	// Overlay entries win over compiled-in ones.
	assert.Equal(t, "R3", tables.ResolveCode("3ED"))

	// Untouched entries survive.
	assert.Equal(t, "MI", tables.ResolveCode("MIR"))
	assert.Equal(t, "Mirage", tables.ResolveName("MIR"))
}

func TestDefaultTablesAreIndependent(t *testing.T) {
	a := Default()
	b := Default()
	a.Merge(map[string]string{"AAA": "A1"}, nil)

	assert.Equal(t, "A1", a.ResolveCode("AAA"))
	assert.Equal(t, "AAA", b.ResolveCode("AAA"))
}
