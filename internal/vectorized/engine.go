// Package vectorized is the imperative satellite of the metric library:
// the full report computed in explicit index loops over accumulators, with
// no calls into internal/calculator's metric functions. It must agree
// bit-for-bit with report.Assemble on every input, so floating-point
// evaluation order is part of its contract and mirrors the library's
// arithmetic exactly: left-to-right summation, two-pass population
// variance, and the same expression shapes throughout.
package vectorized

import (
	"math"

	"MarketLens/internal/calculator"
	"MarketLens/internal/model"
)

// Engine computes reports imperatively. It is stateless; the zero value is
// ready to use.
type Engine struct{}

// New returns a ready Engine.
func New() *Engine {
	return &Engine{}
}

// Analyze computes the full report for a price series under the same
// contract as report.Assemble: non-empty positive finite prices, explicit
// risk-free rate, sentinel values for degenerate shapes.
func (e *Engine) Analyze(prices []float64, riskFreeRate float64) (*model.Report, error) {
	n := len(prices)
	if n == 0 {
		return nil, calculator.ErrEmptySeries
	}
	for i := 0; i < n; i++ {
		if math.IsNaN(prices[i]) || math.IsInf(prices[i], 0) {
			return nil, calculator.ErrNonFinitePrice
		}
		if prices[i] <= 0 {
			return nil, calculator.ErrNonPositivePrice
		}
	}

	// Price pass: mean, min, max, running-peak drawdown.
	sum := 0.0
	lo, hi := prices[0], prices[0]
	peak, worst := prices[0], 0.0
	for i := 0; i < n; i++ {
		p := prices[i]
		sum += p
		if p < lo {
			lo = p
		}
		if p > hi {
			hi = p
		}
		if p > peak {
			peak = p
		}
		if dd := (p - peak) / peak; dd < worst {
			worst = dd
		}
	}
	meanPrice := sum / float64(n)

	// Return passes: mean first, then population variance. Each return is
	// recomputed with the identical expression so both passes see the same
	// values bit-for-bit.
	m := n - 1
	meanRet, varRet := 0.0, 0.0
	if m > 0 {
		sumRet := 0.0
		for i := 0; i < m; i++ {
			sumRet += (prices[i+1] - prices[i]) / prices[i]
		}
		meanRet = sumRet / float64(m)
		sumSq := 0.0
		for i := 0; i < m; i++ {
			d := (prices[i+1]-prices[i])/prices[i] - meanRet
			sumSq += d * d
		}
		varRet = sumSq / float64(m)
	}

	volDaily := math.Sqrt(varRet)
	volAnnual := math.Sqrt(varRet) * math.Sqrt(calculator.TradingDays)

	sharpe := 0.0
	annStd := math.Sqrt(varRet) * math.Sqrt(calculator.TradingDays)
	if annStd != 0 {
		sharpe = (meanRet*calculator.TradingDays - riskFreeRate) / annStd
	}

	totalRet := 0.0
	if n >= 2 {
		totalRet = (prices[n-1] - prices[0]) / prices[0] * 100
	}

	return &model.Report{
		MeanPrice:        meanPrice,
		MinPrice:         lo,
		MaxPrice:         hi,
		VolatilityDaily:  volDaily,
		VolatilityAnnual: volAnnual,
		TotalReturn:      totalRet,
		MeanReturn:       meanRet,
		SharpeRatio:      sharpe,
		MaxDrawdown:      worst,
	}, nil
}
