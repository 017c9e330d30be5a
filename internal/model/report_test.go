package model

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *Report {
	return &Report{
		MeanPrice:        104.87,
		MinPrice:         100,
		MaxPrice:         110,
		VolatilityDaily:  0.005,
		VolatilityAnnual: 0.08,
		TotalReturn:      10,
		MeanReturn:       0.001,
		SharpeRatio:      1.5,
		MaxDrawdown:      -0.0074,
	}
}

func TestMarshalJSON_FixedPointAndOrder(t *testing.T) {
	data, err := json.Marshal(sampleReport())
	require.NoError(t, err)

	want := `{"mean_price":104.870000,` +
		`"min_price":100.000000,` +
		`"max_price":110.000000,` +
		`"volatility_daily":0.005000,` +
		`"volatility_annual":0.080000,` +
		`"total_return":10.000000,` +
		`"mean_return":0.001000,` +
		`"sharpe_ratio":1.500000,` +
		`"max_drawdown":-0.007400}`
	assert.Equal(t, want, string(data))
}

func TestMarshalJSON_KeyOrderStable(t *testing.T) {
	data, err := json.Marshal(sampleReport())
	require.NoError(t, err)

	s := string(data)
	last := -1
	for _, key := range MetricKeys {
		idx := strings.Index(s, `"`+key+`"`)
		require.GreaterOrEqual(t, idx, 0, "missing key %q", key)
		assert.Greater(t, idx, last, "key %q out of order", key)
		last = idx
	}
}

func TestReport_RoundTrip(t *testing.T) {
	orig := sampleReport()
	data, err := json.Marshal(orig)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(data, &decoded))

	origVals, decVals := orig.Values(), decoded.Values()
	for i := range origVals {
		assert.InDelta(t, origVals[i], decVals[i], 1e-6, "metric %s", MetricKeys[i])
	}

	var keys map[string]float64
	require.NoError(t, json.Unmarshal(data, &keys))
	require.Len(t, keys, len(MetricKeys))
	for _, key := range MetricKeys {
		assert.Contains(t, keys, key)
	}
}

func TestReport_Equal(t *testing.T) {
	a, b := sampleReport(), sampleReport()
	assert.True(t, a.Equal(b))

	b.SharpeRatio += 1e-15
	assert.False(t, a.Equal(b))

	assert.False(t, a.Equal(nil))
}
