package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MarketLens/internal/collector"
)

func TestIndicators_Demo(t *testing.T) {
	set, err := Indicators(collector.DemoSource{}, IndicatorOptions{
		SMAWindow:        3,
		BollingerWindow:  3,
		BollingerStd:     2.0,
		RSIWindow:        3,
		VolatilityWindow: 3,
	})
	require.NoError(t, err)

	// 10 prices, window 3 → 8 price-window values, 7 return-window values.
	assert.Len(t, set.SMA, 8)
	assert.Len(t, set.BollingerMiddle, 8)
	assert.Len(t, set.BollingerUpper, 8)
	assert.Len(t, set.BollingerLower, 8)
	assert.Len(t, set.RollingVolatility, 7)
	assert.Len(t, set.RSI, 7)

	for j := range set.BollingerMiddle {
		assert.GreaterOrEqual(t, set.BollingerUpper[j], set.BollingerMiddle[j])
		assert.LessOrEqual(t, set.BollingerLower[j], set.BollingerMiddle[j])
	}
	for _, v := range set.RSI {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 100.0)
	}
}

func TestIndicators_WindowTooLarge(t *testing.T) {
	set, err := Indicators(collector.DemoSource{}, IndicatorOptions{
		SMAWindow:        50,
		BollingerWindow:  50,
		BollingerStd:     2.0,
		RSIWindow:        50,
		VolatilityWindow: 50,
	})
	require.NoError(t, err)
	assert.Empty(t, set.SMA)
	assert.Empty(t, set.RSI)
	assert.Empty(t, set.RollingVolatility)
}
