package domain

// QuarterlyAggregate consolida de um a três meses de um mesmo trimestre.
//
// Somas de métricas são aditivas entre os meses. TotalStores não é somado:
// é uma fotografia do último mês do trimestre. StoresWithIncoming e
// StoresWithTrx são a média aritmética arredondada dos meses presentes, uma
// aproximação de "lojas ativas em algum momento do trimestre".
type QuarterlyAggregate struct {
	Key     string `json:"key"`     // Chave yyyy-Qn (ex: 2025-Q1), ordenável
	Quarter string `json:"quarter"` // Q1..Q4
	Label   string `json:"label"`   // Rótulo curto para exibição (ex: Q1/25)
	Months  int    `json:"months"`  // Quantidade de meses presentes no trimestre

	TotalStores        int `json:"total_stores"`
	StoresWithIncoming int `json:"stores_with_incoming"`
	StoresWithTrx      int `json:"stores_with_trx"`

	MetricSums
}

// StorePenetration retorna o percentual de lojas do trimestre com ao menos uma
// transação liquidada, ou nil quando não há lojas.
func (q QuarterlyAggregate) StorePenetration() *float64 {
	return Rate(float64(q.StoresWithTrx), float64(q.TotalStores))
}
