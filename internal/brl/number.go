// Package brl parses numbers written in Brazilian formatting.
package brl

import (
	"strconv"
	"strings"
)

var scrubber = strings.NewReplacer("R$", "", "r$", "", " ", "", " ", "", "\t", "")

// ParseNumber converts a Brazilian-formatted numeric string such as
// "R$ 1.234,56" to a float64. The dot is always treated as a thousands
// separator and the comma as the decimal separator; there is no locale
// detection. Empty or unparseable input yields 0, because the upstream feed
// leaves price and area blank or garbled often enough that a zero is more
// useful to callers than an error.
func ParseNumber(s string) float64 {
	s = scrubber.Replace(strings.TrimSpace(s))
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
