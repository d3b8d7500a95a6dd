package domain

// Badge classifica uma taxa em faixas de desempenho para exibição.
type Badge string

const (
	BadgeGood   Badge = "GOOD"
	BadgeWarn   Badge = "WARN"
	BadgeBad    Badge = "BAD"
	BadgeNoData Badge = "NO_DATA"
)

// Thresholds é um par de limites decrescentes [High, Low] para classificação
// de uma taxa. Os pares são configuração externa por tipo de métrica, nunca
// embutidos no classificador.
type Thresholds struct {
	High float64 `json:"high"`
	Low  float64 `json:"low"`
}

// ClassifyRate classifica um valor de taxa contra um par de limites:
// GOOD quando valor >= High, WARN quando Low <= valor < High, BAD quando
// valor < Low. Taxas indefinidas (nil) resultam em NO_DATA.
func ClassifyRate(value *float64, t Thresholds) Badge {
	if value == nil {
		return BadgeNoData
	}

	switch {
	case *value >= t.High:
		return BadgeGood
	case *value >= t.Low:
		return BadgeWarn
	default:
		return BadgeBad
	}
}
