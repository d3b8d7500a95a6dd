package domain

// MetricSums agrega os quatro contadores básicos de desempenho em qualquer
// granularidade (loja, mês, trimestre ou acumulado).
type MetricSums struct {
	Incoming   int     `json:"incoming"`
	Approved   int     `json:"approved"`
	SettledTrx int     `json:"settled_trx"`
	GMV        float64 `json:"gmv"`
}

// Add acumula os valores de outro MetricSums neste.
func (s *MetricSums) Add(other MetricSums) {
	s.Incoming += other.Incoming
	s.Approved += other.Approved
	s.SettledTrx += other.SettledTrx
	s.GMV += other.GMV
}

// ApprovalRate retorna o percentual de propostas aprovadas sobre as recebidas,
// ou nil quando não há propostas recebidas no período.
func (s MetricSums) ApprovalRate() *float64 {
	return Rate(float64(s.Approved), float64(s.Incoming))
}

// ConversionRate retorna o percentual de transações liquidadas sobre as
// propostas recebidas, ou nil quando não há propostas recebidas.
func (s MetricSums) ConversionRate() *float64 {
	return Rate(float64(s.SettledTrx), float64(s.Incoming))
}

// AverageOrderValue retorna o ticket médio (GMV / transações liquidadas),
// ou nil quando não há transações liquidadas.
func (s MetricSums) AverageOrderValue() *float64 {
	return Ratio(s.GMV, float64(s.SettledTrx))
}

// Rate calcula numerador/denominador em percentual. Retorna nil quando o
// denominador é zero: a taxa é indefinida, nunca zero nem NaN/Inf.
func Rate(numerator, denominator float64) *float64 {
	if denominator == 0 {
		return nil
	}

	value := (numerator / denominator) * 100
	return &value
}

// Ratio calcula numerador/denominador sem converter para percentual,
// com a mesma semântica de denominador zero do Rate.
func Ratio(numerator, denominator float64) *float64 {
	if denominator == 0 {
		return nil
	}

	value := numerator / denominator
	return &value
}

// Float é um atalho para obter um ponteiro a partir de um literal numérico.
func Float(v float64) *float64 {
	return &v
}
