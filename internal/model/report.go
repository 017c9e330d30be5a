package model

import (
	"bytes"
	"strconv"
)

// Report is the complete metric set produced by one analysis. Field order
// matches the wire contract; MarshalJSON preserves it so serialized output
// is diff-stable across runs with identical input.
//
// TotalReturn is expressed in percent; every other metric is a raw price
// level or daily/annual fraction.
type Report struct {
	MeanPrice        float64 `json:"mean_price"`
	MinPrice         float64 `json:"min_price"`
	MaxPrice         float64 `json:"max_price"`
	VolatilityDaily  float64 `json:"volatility_daily"`
	VolatilityAnnual float64 `json:"volatility_annual"`
	TotalReturn      float64 `json:"total_return"`
	MeanReturn       float64 `json:"mean_return"`
	SharpeRatio      float64 `json:"sharpe_ratio"`
	MaxDrawdown      float64 `json:"max_drawdown"`
}

// MetricKeys lists the report keys in wire order.
var MetricKeys = []string{
	"mean_price",
	"min_price",
	"max_price",
	"volatility_daily",
	"volatility_annual",
	"total_return",
	"mean_return",
	"sharpe_ratio",
	"max_drawdown",
}

// Values returns the metric values in wire order, parallel to MetricKeys.
func (r *Report) Values() []float64 {
	return []float64{
		r.MeanPrice,
		r.MinPrice,
		r.MaxPrice,
		r.VolatilityDaily,
		r.VolatilityAnnual,
		r.TotalReturn,
		r.MeanReturn,
		r.SharpeRatio,
		r.MaxDrawdown,
	}
}

// Equal reports bitwise equality of every metric. It is the conformance
// criterion between independent engine implementations, so no epsilon.
func (r *Report) Equal(other *Report) bool {
	if other == nil {
		return false
	}
	a, b := r.Values(), other.Values()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// MarshalJSON renders the metrics as a JSON object with keys in wire order
// and fixed-point values with six decimal digits.
func (r *Report) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, v := range r.Values() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(MetricKeys[i])
		b.WriteString(`":`)
		b.WriteString(strconv.FormatFloat(v, 'f', 6, 64))
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}
