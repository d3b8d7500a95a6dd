package domain

// MonthlyAggregate consolida a atividade de todas as lojas em um mês.
//
// Os contadores de presença derivam dos conjuntos distintos de lojas vistos no
// mês: StoresWithIncoming e StoresWithTrx são sempre subconjuntos de TotalStores,
// dado que uma loja só entra nesses conjuntos quando possui um registro no mês.
type MonthlyAggregate struct {
	Month   string `json:"month"`   // Chave yyyy-mm, ordenável lexicograficamente
	Label   string `json:"label"`   // Rótulo curto para exibição (ex: Jan/25)
	Quarter string `json:"quarter"` // Q1..Q4, derivado do número do mês

	TotalStores        int `json:"total_stores"`         // Lojas com ao menos um registro no mês
	StoresWithIncoming int `json:"stores_with_incoming"` // Lojas com incoming > 0
	StoresWithTrx      int `json:"stores_with_trx"`      // Lojas com transações liquidadas > 0

	MetricSums
}

// StorePenetration retorna o percentual de lojas conhecidas no mês que
// registraram ao menos uma transação liquidada, ou nil sem lojas no mês.
func (m MonthlyAggregate) StorePenetration() *float64 {
	return Rate(float64(m.StoresWithTrx), float64(m.TotalStores))
}
