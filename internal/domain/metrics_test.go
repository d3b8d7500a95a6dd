package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRate(t *testing.T) {
	value := Rate(60, 100)
	require.NotNil(t, value)
	assert.InDelta(t, 60.0, *value, 0.001)

	// Denominador zero: taxa indefinida, nunca NaN ou infinito
	assert.Nil(t, Rate(60, 0))
	assert.Nil(t, Rate(0, 0))
}

func TestMetricSumsRates(t *testing.T) {
	sums := MetricSums{Incoming: 150, Approved: 80, SettledTrx: 50, GMV: 5000000}

	approval := sums.ApprovalRate()
	require.NotNil(t, approval)
	assert.InDelta(t, 53.33, *approval, 0.01)

	conversion := sums.ConversionRate()
	require.NotNil(t, conversion)
	assert.InDelta(t, 33.33, *conversion, 0.01)

	aov := sums.AverageOrderValue()
	require.NotNil(t, aov)
	assert.InDelta(t, 100000.0, *aov, 0.001)
}

func TestMetricSumsRatesWithZeroDenominators(t *testing.T) {
	sums := MetricSums{}

	assert.Nil(t, sums.ApprovalRate())
	assert.Nil(t, sums.ConversionRate())
	assert.Nil(t, sums.AverageOrderValue())

	// GMV sem transações liquidadas: ticket médio indefinido, sem divisão por zero
	sums = MetricSums{GMV: 1000}
	aov := sums.AverageOrderValue()
	assert.Nil(t, aov)

	for _, rate := range []*float64{sums.ApprovalRate(), sums.ConversionRate()} {
		if rate != nil {
			assert.False(t, math.IsNaN(*rate))
			assert.False(t, math.IsInf(*rate, 0))
		}
	}
}

func TestMetricSumsAdd(t *testing.T) {
	sums := MetricSums{Incoming: 100, Approved: 60, SettledTrx: 40, GMV: 4000000}
	sums.Add(MetricSums{Incoming: 50, Approved: 20, SettledTrx: 10, GMV: 1000000})

	assert.Equal(t, 150, sums.Incoming)
	assert.Equal(t, 80, sums.Approved)
	assert.Equal(t, 50, sums.SettledTrx)
	assert.InDelta(t, 5000000.0, sums.GMV, 0.001)
}
