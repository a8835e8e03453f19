package config

import "strings"

// Region represents one UF whose listing the service can proxy
type Region struct {
	Code string `json:"uf"`
	Name string `json:"nome"`
}

// SupportedRegions is the list of UFs published by the upstream feed
var SupportedRegions = []Region{
	{Code: "AC", Name: "Acre"},
	{Code: "AL", Name: "Alagoas"},
	{Code: "AP", Name: "Amapá"},
	{Code: "AM", Name: "Amazonas"},
	{Code: "BA", Name: "Bahia"},
	{Code: "CE", Name: "Ceará"},
	{Code: "DF", Name: "Distrito Federal"},
	{Code: "ES", Name: "Espírito Santo"},
	{Code: "GO", Name: "Goiás"},
	{Code: "MA", Name: "Maranhão"},
	{Code: "MT", Name: "Mato Grosso"},
	{Code: "MS", Name: "Mato Grosso do Sul"},
	{Code: "MG", Name: "Minas Gerais"},
	{Code: "PA", Name: "Pará"},
	{Code: "PB", Name: "Paraíba"},
	{Code: "PR", Name: "Paraná"},
	{Code: "PE", Name: "Pernambuco"},
	{Code: "PI", Name: "Piauí"},
	{Code: "RJ", Name: "Rio de Janeiro"},
	{Code: "RN", Name: "Rio Grande do Norte"},
	{Code: "RS", Name: "Rio Grande do Sul"},
	{Code: "RO", Name: "Rondônia"},
	{Code: "RR", Name: "Roraima"},
	{Code: "SC", Name: "Santa Catarina"},
	{Code: "SP", Name: "São Paulo"},
	{Code: "SE", Name: "Sergipe"},
	{Code: "TO", Name: "Tocantins"},
}

// GetRegionCodes returns the list of supported UF codes
func GetRegionCodes() []string {
	codes := make([]string, len(SupportedRegions))
	for i, region := range SupportedRegions {
		codes[i] = region.Code
	}
	return codes
}

// GetRegionByCode returns a region by its UF code, ignoring case
func GetRegionByCode(code string) *Region {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, region := range SupportedRegions {
		if region.Code == code {
			return &region
		}
	}
	return nil
}
