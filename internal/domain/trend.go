package domain

// Trend indica a direção de um valor em relação ao período anterior.
// Apenas direção: a magnitude da variação não é calculada.
type Trend string

const (
	TrendUp   Trend = "UP"
	TrendDown Trend = "DOWN"
	TrendFlat Trend = "FLAT"
)

// TrendOf compara o valor atual com o do período anterior.
// Sem período anterior (nil) ou com valores iguais, a direção é FLAT.
func TrendOf(current, previous *float64) Trend {
	if previous == nil {
		return TrendFlat
	}

	if current != nil && *current == *previous {
		return TrendFlat
	}

	if current != nil && *current > *previous {
		return TrendUp
	}

	return TrendDown
}

// TrendOfInts é a variante de TrendOf para contadores inteiros sempre presentes.
func TrendOfInts(current, previous int, hasPrevious bool) Trend {
	if !hasPrevious {
		return TrendFlat
	}

	c := float64(current)
	p := float64(previous)
	return TrendOf(&c, &p)
}
