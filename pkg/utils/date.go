package utils

import (
	"fmt"
	"time"
)

const monthKeyLayout = "2006-01"

// NormalizeMonthKey reduz uma data ou chave de mês para o formato yyyy-mm.
// O dia do mês, quando presente, é ignorado.
func NormalizeMonthKey(value string) (string, error) {
	if len(value) >= len(monthKeyLayout) {
		value = value[:len(monthKeyLayout)]
	}

	parsed, err := time.Parse(monthKeyLayout, value)
	if err != nil {
		return "", fmt.Errorf("chave de mês inválida %q: %w", value, err)
	}

	return parsed.Format(monthKeyLayout), nil
}

// MonthLabel monta o rótulo curto de exibição de uma chave de mês (ex: Jan/25).
// Chaves inválidas são devolvidas como estão.
func MonthLabel(monthKey string) string {
	parsed, err := time.Parse(monthKeyLayout, monthKey)
	if err != nil {
		return monthKey
	}

	return fmt.Sprintf("%s/%s", parsed.Format("Jan"), parsed.Format("06"))
}

// QuarterTag deriva a marcação de trimestre (Q1..Q4) de uma chave de mês.
func QuarterTag(monthKey string) string {
	parsed, err := time.Parse(monthKeyLayout, monthKey)
	if err != nil {
		return ""
	}

	quarter := (int(parsed.Month())-1)/3 + 1
	return fmt.Sprintf("Q%d", quarter)
}

// QuarterKey deriva a chave ordenável de trimestre (ex: 2025-Q1) de uma chave de mês.
func QuarterKey(monthKey string) string {
	parsed, err := time.Parse(monthKeyLayout, monthKey)
	if err != nil {
		return ""
	}

	return fmt.Sprintf("%s-%s", parsed.Format("2006"), QuarterTag(monthKey))
}

// QuarterLabel monta o rótulo curto de um trimestre (ex: Q1/25) a partir da
// chave de um dos seus meses.
func QuarterLabel(monthKey string) string {
	parsed, err := time.Parse(monthKeyLayout, monthKey)
	if err != nil {
		return ""
	}

	return fmt.Sprintf("%s/%s", QuarterTag(monthKey), parsed.Format("06"))
}
