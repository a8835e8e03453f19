package filter

import (
	"strings"

	"leilaoradar/server/internal/models"
)

// Query holds the optional predicates accepted by the listing endpoint. Zero
// or nil fields impose no constraint.
type Query struct {
	UF         string
	Modalidade string
	Cidade     string
	MinValor   *float64
	MaxValor   *float64
}

// Apply returns the records that satisfy every supplied predicate, preserving
// input order. The input slice is never modified.
func Apply(records []models.PropertyRecord, q Query) []models.PropertyRecord {
	matched := make([]models.PropertyRecord, 0, len(records))
	for _, record := range records {
		if q.Matches(record) {
			matched = append(matched, record)
		}
	}
	return matched
}

// Matches reports whether a single record satisfies every supplied predicate.
// Text predicates are case-insensitive; the sale-category and city predicates
// match substrings, the region predicate matches whole codes. Price bounds
// are inclusive.
func (q Query) Matches(record models.PropertyRecord) bool {
	if q.UF != "" && !strings.EqualFold(record.Region, q.UF) {
		return false
	}
	if q.Modalidade != "" && !containsFold(record.Category, q.Modalidade) {
		return false
	}
	if q.Cidade != "" && !containsFold(record.City, q.Cidade) {
		return false
	}
	if q.MinValor != nil && record.Price < *q.MinValor {
		return false
	}
	if q.MaxValor != nil && record.Price > *q.MaxValor {
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
