package utils

import (
	"fmt"
	"math"
	"strconv"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10) / 10
}

// FormatCompact compacta valores monetários com sufixo de magnitude:
// B e M com uma casa decimal, K sem casas decimais, abaixo de mil o valor inteiro.
func FormatCompact(value float64) string {
	switch {
	case value >= 1e9:
		return fmt.Sprintf("%.1fB", value/1e9)
	case value >= 1e6:
		return fmt.Sprintf("%.1fM", value/1e6)
	case value >= 1e3:
		return fmt.Sprintf("%.0fK", value/1e3)
	default:
		return strconv.FormatFloat(value, 'f', 0, 64)
	}
}
