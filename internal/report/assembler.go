// Package report assembles the full metric report from a price series
// using the pure-function metric library. It is the authoritative engine;
// the vectorized engine is conformance-bound to it.
package report

import (
	"errors"
	"math"

	"MarketLens/internal/calculator"
	"MarketLens/internal/model"
)

// ErrNonFiniteMetric reports an assembled metric that is NaN or infinite.
// Valid input cannot produce one; this guards the wire contract.
var ErrNonFiniteMetric = errors.New("report contains a non-finite metric")

// Assemble computes every report metric for a price series. The risk-free
// rate is an explicit parameter of the analysis, never a baked-in default.
// The series must be non-empty with positive finite prices; degenerate but
// valid shapes (a single point, a flat series) resolve to the documented
// sentinel values instead of failing.
func Assemble(prices []float64, riskFreeRate float64) (*model.Report, error) {
	if len(prices) == 0 {
		return nil, calculator.ErrEmptySeries
	}
	for _, p := range prices {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return nil, calculator.ErrNonFinitePrice
		}
		if p <= 0 {
			return nil, calculator.ErrNonPositivePrice
		}
	}

	rets, err := calculator.Returns(prices)
	if err != nil {
		return nil, err
	}
	volDaily, err := calculator.Volatility(prices, false)
	if err != nil {
		return nil, err
	}
	volAnnual, err := calculator.Volatility(prices, true)
	if err != nil {
		return nil, err
	}

	rep := &model.Report{
		MeanPrice:        calculator.Mean(prices),
		MinPrice:         calculator.Min(prices),
		MaxPrice:         calculator.Max(prices),
		VolatilityDaily:  volDaily,
		VolatilityAnnual: volAnnual,
		// total_return crosses the wire in percent.
		TotalReturn: calculator.TotalReturn(prices) * 100,
		MeanReturn:  calculator.Mean(rets),
		SharpeRatio: calculator.SharpeRatio(rets, riskFreeRate),
		MaxDrawdown: calculator.MaxDrawdown(prices),
	}
	for _, v := range rep.Values() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNonFiniteMetric
		}
	}
	return rep, nil
}
