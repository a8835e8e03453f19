package caixa

import "leilaoradar/server/internal/models"

// Trimmed snapshot of the feed, served when sample mode is enabled. It keeps
// the upstream column layout so sample traffic exercises the same
// normalization path as live data, and spans several UFs so the region filter
// has something to narrow.
const sampleCSV = `Nº do imóvel;UF;Cidade;Bairro;Endereço;Preço;Valor de avaliação;Área total;Modalidade de venda;Tipo de imóvel;Situação
870000124586-7;SP;São Paulo;Vila Mariana;Rua Domingos de Morais, 2781 ap 52;R$ 385.000,00;R$ 512.000,00;64,00;Leilão SFI - Edital Único;Apartamento;Ocupado
870000198321-0;SP;Campinas;Centro;Av. Francisco Glicério, 1041 ap 113;R$ 178.500,00;R$ 240.000,00;52,30;Venda Online;Apartamento;Desocupado
870000201544-3;SP;Santos;Gonzaga;Rua Marcílio Dias, 91 ap 31;R$ 298.000,00;R$ 355.000,00;78,00;Venda Direta Online;Apartamento;Ocupado
870000176209-9;RJ;Rio de Janeiro;Campo Grande;Estrada do Mendanha, 555 casa 12;R$ 142.000,00;R$ 198.000,00;90,50;Leilão SFI - Edital Único;Casa;Ocupado
870000188417-2;RJ;Niterói;Icaraí;Rua Gavião Peixoto, 182 ap 801;R$ 510.000,00;R$ 690.000,00;110,00;Licitação Aberta;Apartamento;Desocupado
870000155873-1;MG;Belo Horizonte;Buritis;Rua Henrique Badaró Portugal, 430 ap 204;R$ 265.000,00;R$ 310.000,00;69,40;Venda Online;Apartamento;Desocupado
870000162930-4;MG;Uberlândia;Santa Mônica;Rua das Acácias, 77;R$ 98.000,00;R$ 151.000,00;125,00;Venda Direta Online;Casa;Ocupado
870000149112-8;BA;Salvador;Imbuí;Av. Jorge Amado, 1200 ap 503;R$ 189.900,00;R$ 265.000,00;58,00;Leilão SFI - Edital Único;Apartamento;Ocupado
870000171648-5;PR;Curitiba;Portão;Rua João Bettega, 2310 ap 72;R$ 230.000,00;R$ 289.000,00;61,20;Venda Online;Apartamento;Desocupado
870000183755-6;PE;Recife;Boa Viagem;Rua Setúbal, 1486 ap 1202;R$ 420.000,00;R$ 575.000,00;86,00;Licitação Aberta;Apartamento;Ocupado
`

// SampleRecords returns the built-in listing used by sample mode, already
// normalized. All regions are present in the result; callers narrow it the
// same way they narrow live data.
func SampleRecords() ([]models.PropertyRecord, error) {
	return Normalize(sampleCSV, "")
}
