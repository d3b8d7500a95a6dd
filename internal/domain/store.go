package domain

// StoreRecord acumula os registros brutos de uma loja, mês a mês.
// O mapa de meses é esparso: meses sem registro para a loja ficam ausentes,
// não são preenchidos com zero.
type StoreRecord struct {
	ID     string                `json:"store_id"`
	Name   string                `json:"store_name"`
	Months map[string]MetricSums `json:"months"` // Chave yyyy-mm
}

// StoreMonthView é a visão achatada de um mês de uma loja, pronta para a
// tabela por loja. Meses ausentes e meses com incoming zero são apresentados
// da mesma forma, tudo zero.
type StoreMonthView struct {
	Incoming       int     `json:"incoming"`
	Approved       int     `json:"approved"`
	SettledTrx     int     `json:"settled_trx"`
	GMV            float64 `json:"gmv"`
	ApprovalRate   float64 `json:"approval_rate"`
	ConversionRate float64 `json:"conversion_rate"`
}

// ProcessedStore é um StoreRecord enriquecido com totais e taxas médias,
// mais a visão achatada de cada mês conhecido do conjunto de dados.
type ProcessedStore struct {
	ID   string `json:"store_id"`
	Name string `json:"store_name"`

	Totals        MetricSums                `json:"totals"`
	AvgApproval   *float64                  `json:"avg_approval"`   // nil quando a loja não recebeu propostas
	AvgConversion *float64                  `json:"avg_conversion"` // nil quando a loja não recebeu propostas
	Monthly       map[string]StoreMonthView `json:"monthly"`        // Uma entrada para cada mês conhecido
}
