package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReturns_Length(t *testing.T) {
	for n := 2; n <= 10; n++ {
		prices := make([]float64, n)
		for i := range prices {
			prices[i] = 100 + float64(i)
		}
		rets, err := Returns(prices)
		require.NoError(t, err)
		assert.Len(t, rets, n-1)
	}
}

func TestReturns_Values(t *testing.T) {
	rets, err := Returns([]float64{100, 110, 99})
	require.NoError(t, err)
	require.Len(t, rets, 2)
	assert.InDelta(t, 0.1, rets[0], 1e-12)
	assert.InDelta(t, -0.1, rets[1], 1e-12)
}

func TestReturns_ShortSeries(t *testing.T) {
	rets, err := Returns(nil)
	require.NoError(t, err)
	assert.Empty(t, rets)

	rets, err = Returns([]float64{42})
	require.NoError(t, err)
	assert.Empty(t, rets)
}

func TestReturns_NonPositivePrice(t *testing.T) {
	for _, prices := range [][]float64{
		{100, 0, 101},
		{-1, 100},
		{100, 101, -5},
	} {
		_, err := Returns(prices)
		assert.ErrorIs(t, err, ErrNonPositivePrice)
	}
}
