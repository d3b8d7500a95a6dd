package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyRate(t *testing.T) {
	approval := Thresholds{High: 60, Low: 50}

	tests := []struct {
		name       string
		value      *float64
		thresholds Thresholds
		expected   Badge
	}{
		{
			name:       "Valor acima do limite superior - GOOD",
			value:      Float(62),
			thresholds: approval,
			expected:   BadgeGood,
		},
		{
			name:       "Valor exatamente no limite superior - GOOD",
			value:      Float(60),
			thresholds: approval,
			expected:   BadgeGood,
		},
		{
			name:       "Valor entre os limites - WARN",
			value:      Float(55),
			thresholds: approval,
			expected:   BadgeWarn,
		},
		{
			name:       "Valor exatamente no limite inferior - WARN",
			value:      Float(50),
			thresholds: approval,
			expected:   BadgeWarn,
		},
		{
			name:       "Valor abaixo do limite inferior - BAD",
			value:      Float(40),
			thresholds: approval,
			expected:   BadgeBad,
		},
		{
			name:       "Taxa indefinida - NO_DATA",
			value:      nil,
			thresholds: approval,
			expected:   BadgeNoData,
		},
		{
			name:       "Limites de conversão vindos de configuração",
			value:      Float(35),
			thresholds: Thresholds{High: 40, Low: 30},
			expected:   BadgeWarn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyRate(tt.value, tt.thresholds))
		})
	}
}
