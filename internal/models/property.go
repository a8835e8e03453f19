package models

// PropertyRecord is the canonical shape of one auction property, independent
// of the column naming used by the upstream CSV. JSON names follow the public
// API, which keeps the upstream's Portuguese vocabulary.
type PropertyRecord struct {
	ID        int               `json:"id"`
	Region    string            `json:"uf"`
	City      string            `json:"cidade"`
	District  string            `json:"bairro"`
	Street    string            `json:"endereco"`
	Category  string            `json:"modalidade"`
	Kind      string            `json:"tipo"`
	Status    string            `json:"situacao"`
	Price     float64           `json:"preco"`
	Area      float64           `json:"area"`
	Latitude  *float64          `json:"latitude"`
	Longitude *float64          `json:"longitude"`
	Raw       map[string]string `json:"raw"`
}
