package caixa

import (
	"encoding/csv"
	"strings"

	"leilaoradar/server/internal/brl"
	"leilaoradar/server/internal/models"
)

// Column-name variants observed across vintages of the feed, ordered by
// preference. Each canonical field takes the first non-empty match.
var (
	regionColumns   = []string{"uf", "estado"}
	cityColumns     = []string{"cidade", "município", "municipio"}
	districtColumns = []string{"bairro"}
	streetColumns   = []string{"endereço", "endereco", "logradouro"}
	categoryColumns = []string{"modalidade de venda", "modalidade"}
	kindColumns     = []string{"tipo de imóvel", "tipo de imovel", "tipo"}
	statusColumns   = []string{"situação", "situacao", "ocupação", "ocupacao"}
	priceColumns    = []string{"preço", "preco", "valor de venda", "valor mínimo de venda", "valor minimo de venda", "valor"}
	areaColumns     = []string{"área total", "area total", "área privativa", "area privativa", "área", "area"}
)

// Normalize parses semicolon-delimited listing text and maps each data row to
// the canonical record shape. Row order is preserved and the id is the row's
// position. uf fills the region field when the row carries no region column
// of its own.
func Normalize(text, uf string) ([]models.PropertyRecord, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = ';'
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	if len(rows) == 0 {
		return []models.PropertyRecord{}, nil
	}

	header := rows[0]
	index := headerIndex(header)
	uf = strings.ToUpper(strings.TrimSpace(uf))

	records := make([]models.PropertyRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		raw := make(map[string]string, len(header))
		for j, name := range header {
			if j < len(row) {
				raw[strings.TrimSpace(name)] = strings.TrimSpace(row[j])
			} else {
				raw[strings.TrimSpace(name)] = ""
			}
		}

		region := strings.ToUpper(pick(row, index, regionColumns))
		if region == "" {
			region = uf
		}

		records = append(records, models.PropertyRecord{
			ID:       i,
			Region:   region,
			City:     pick(row, index, cityColumns),
			District: pick(row, index, districtColumns),
			Street:   pick(row, index, streetColumns),
			Category: pick(row, index, categoryColumns),
			Kind:     pick(row, index, kindColumns),
			Status:   pick(row, index, statusColumns),
			Price:    brl.ParseNumber(pick(row, index, priceColumns)),
			Area:     brl.ParseNumber(pick(row, index, areaColumns)),
			Raw:      raw,
		})
	}

	return records, nil
}

// headerIndex maps lowercased, trimmed header names to column positions.
func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return index
}

// pick returns the first non-empty cell among the candidate columns.
func pick(row []string, index map[string]int, candidates []string) string {
	for _, name := range candidates {
		i, ok := index[name]
		if !ok || i >= len(row) {
			continue
		}
		if value := strings.TrimSpace(row[i]); value != "" {
			return value
		}
	}
	return ""
}
