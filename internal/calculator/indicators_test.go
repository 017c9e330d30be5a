package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMA(t *testing.T) {
	out, err := SMA([]float64{1, 2, 3, 4, 5}, 3)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.InDelta(t, 2.0, out[0], 1e-12)
	assert.InDelta(t, 3.0, out[1], 1e-12)
	assert.InDelta(t, 4.0, out[2], 1e-12)
}

func TestSMA_Window(t *testing.T) {
	_, err := SMA([]float64{1, 2, 3}, 0)
	require.ErrorIs(t, err, ErrInvalidWindow)
	_, err = SMA([]float64{1, 2, 3}, -2)
	require.ErrorIs(t, err, ErrInvalidWindow)

	// Insufficient data is not an error; the series is simply empty.
	out, err := SMA([]float64{1, 2, 3}, 5)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestBollinger(t *testing.T) {
	prices := []float64{1, 2, 3, 4, 5}
	bands, err := Bollinger(prices, 3, 2.0)
	require.NoError(t, err)
	require.Len(t, bands.Middle, 3)
	require.Len(t, bands.Upper, 3)
	require.Len(t, bands.Lower, 3)

	for j := range bands.Middle {
		sd := StdDev(prices[j : j+3])
		assert.InDelta(t, bands.Middle[j]+2*sd, bands.Upper[j], 1e-12)
		assert.InDelta(t, bands.Middle[j]-2*sd, bands.Lower[j], 1e-12)
		// Bands are symmetric around the middle.
		assert.InDelta(t, bands.Upper[j]-bands.Middle[j], bands.Middle[j]-bands.Lower[j], 1e-12)
	}
}

func TestBollinger_FlatSeries(t *testing.T) {
	bands, err := Bollinger([]float64{5, 5, 5, 5}, 3, 2.0)
	require.NoError(t, err)
	for j := range bands.Middle {
		assert.Equal(t, 5.0, bands.Middle[j])
		assert.Equal(t, 5.0, bands.Upper[j])
		assert.Equal(t, 5.0, bands.Lower[j])
	}
}

func TestRollingVolatility(t *testing.T) {
	daily, err := RollingVolatility(goldenPrices, 3, false)
	require.NoError(t, err)
	// 9 returns, window 3 → 7 values.
	require.Len(t, daily, 7)

	annual, err := RollingVolatility(goldenPrices, 3, true)
	require.NoError(t, err)
	require.Len(t, annual, 7)
	for j := range daily {
		assert.Equal(t, daily[j]*math.Sqrt(252), annual[j])
	}
}

func TestRollingVolatility_ShortSeries(t *testing.T) {
	out, err := RollingVolatility([]float64{100, 101}, 3, false)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRSI_Saturation(t *testing.T) {
	// No negative deltas anywhere: RSI pegs at 100.
	increasing := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	out, err := RSI(increasing, 3)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	for _, v := range out {
		assert.Equal(t, 100.0, v)
	}
}

func TestRSI_AllLosses(t *testing.T) {
	decreasing := []float64{8, 7, 6, 5, 4, 3, 2, 1}
	out, err := RSI(decreasing, 3)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	for _, v := range out {
		assert.Equal(t, 0.0, v)
	}
}

func TestRSI_Bounds(t *testing.T) {
	out, err := RSI(goldenPrices, 3)
	require.NoError(t, err)
	// 9 deltas, window 3 → 7 values.
	require.Len(t, out, 7)
	for _, v := range out {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 100.0)
	}
}

func TestRSI_WindowAndLength(t *testing.T) {
	_, err := RSI(goldenPrices, 0)
	require.ErrorIs(t, err, ErrInvalidWindow)

	out, err := RSI([]float64{1, 2, 3}, 5)
	require.NoError(t, err)
	assert.Empty(t, out)

	// Exactly window+1 prices give a single value.
	out, err = RSI([]float64{1, 2, 3, 4}, 3)
	require.NoError(t, err)
	assert.Len(t, out, 1)
}
