package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCompact(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{name: "Bilhões com uma casa", value: 1500000000, expected: "1.5B"},
		{name: "Limite de bilhão", value: 1e9, expected: "1.0B"},
		{name: "Milhões com uma casa", value: 5000000, expected: "5.0M"},
		{name: "Milhões fracionados", value: 2340000, expected: "2.3M"},
		{name: "Milhares sem casas", value: 12500, expected: "13K"},
		{name: "Limite de milhar", value: 1000, expected: "1K"},
		{name: "Abaixo de mil", value: 999, expected: "999"},
		{name: "Zero", value: 0, expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCompact(tt.value))
		})
	}
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 53.33, RoundWithTwoDecimalPlace(53.333333))
	assert.Equal(t, 53.3, RoundWithOneDecimalPlace(53.333333))
	assert.Equal(t, 53.4, RoundWithOneDecimalPlace(53.35))
	assert.Equal(t, float64(0), RoundWithTwoDecimalPlace(0))
}
