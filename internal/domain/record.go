// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// RawRecord representa a atividade de uma única loja em um único mês, exatamente
// como retornada pela fonte de dados. Valores numéricos ausentes ou inválidos já
// chegam normalizados para zero pela camada de ingestão.
type RawRecord struct {
	Month      string  `json:"month"` // Chave de mês no formato yyyy-mm (ex: 2025-01)
	StoreID    string  `json:"store_id"`
	StoreName  string  `json:"store_name"`
	Incoming   int     `json:"incoming"`
	Approved   int     `json:"approved"`
	SettledTrx int     `json:"settled_trx"`
	GMV        float64 `json:"gmv"`
}

// StoreInfo é uma entrada do diretório de lojas retornado pela fonte de dados.
type StoreInfo struct {
	ID   string `json:"store_id"`
	Name string `json:"store_name"`
}
