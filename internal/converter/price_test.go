package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "$0.00",
		},
		{
			name:     "whitespace only",
			input:    "   ",
			expected: "$0.00",
		},
		{
			name:     "bare dollar sign",
			input:    "$",
			expected: "$0.00",
		},
		{
			name:     "not a number",
			input:    "abc",
			expected: "$0.00",
		},
		{
			name:     "dollar prefix kept intact",
			input:    "$1.25",
			expected: "$1.25",
		},
		{
			name:     "no dollar prefix",
			input:    "1.25",
			expected: "$1.25",
		},
		{
			name:     "single fractional digit padded",
			input:    "$3.5",
			expected: "$3.50",
		},
		{
			name:     "integer padded",
			input:    "7",
			expected: "$7.00",
		},
		{
			name:     "half rounds to even down",
			input:    "3.005",
			expected: "$3.00",
		},
		{
			name:     "half rounds to even up",
			input:    "2.675",
			expected: "$2.68",
		},
		{
			name:     "extra digits rounded",
			input:    "1.999",
			expected: "$2.00",
		},
		{
			name:     "whitespace around value and symbol",
			input:    " $ 1.25 ",
			expected: "$1.25",
		},
		{
			name:     "double dollar sign is not a number",
			input:    "$$3.50",
			expected: "$0.00",
		},
		{
			name:     "negative price preserved",
			input:    "-0.5",
			expected: "$-0.50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatPrice(tt.input))
		})
	}
}

func TestParsePriceErrors(t *testing.T) {
	for _, input := range []string{"", "  ", "$", "abc", "1.2.3"} {
		_, err := ParsePrice(input)
		assert.Error(t, err, "input %q", input)
	}

	d, err := ParsePrice("$12.345")
	assert.NoError(t, err)
	assert.Equal(t, "12.345", d.String())
}
