package brl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{name: "thousands and decimal", input: "1.234,56", expected: 1234.56},
		{name: "currency prefix without decimals", input: "R$ 900", expected: 900},
		{name: "currency with separators", input: "R$ 1.234.567,89", expected: 1234567.89},
		{name: "padded integer", input: "  450000  ", expected: 450000},
		{name: "decimal only", input: "1,5", expected: 1.5},
		{name: "non-breaking space after currency", input: "R$ 2.500,00", expected: 2500},
		{name: "negative", input: "-10,5", expected: -10.5},
		{name: "empty", input: "", expected: 0},
		{name: "whitespace only", input: "   ", expected: 0},
		{name: "free text", input: "consulte o edital", expected: 0},
		{name: "lone separator", input: ",", expected: 0},
		{name: "multiple commas", input: "1,2,3", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseNumber(tt.input))
		})
	}
}
