package calculator

import "math"

// TradingDays is the annualization basis: a 252-day trading year. Every
// annualized statistic in the engine uses this count and no other.
const TradingDays = 252

// Mean returns the arithmetic mean, 0.0 for an empty series.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// Variance returns the population variance (divide by N, not N-1),
// 0.0 for an empty series.
func Variance(xs []float64) float64 {
	if len(xs) == 0 {
		return 0.0
	}
	m := Mean(xs)
	sum := 0.0
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return sum / float64(len(xs))
}

// StdDev returns the population standard deviation.
func StdDev(xs []float64) float64 {
	return math.Sqrt(Variance(xs))
}

// Volatility is the standard deviation of the return series of prices,
// multiplied by √252 when annualize is set.
func Volatility(prices []float64, annualize bool) (float64, error) {
	rets, err := Returns(prices)
	if err != nil {
		return 0, err
	}
	vol := StdDev(rets)
	if annualize {
		vol *= math.Sqrt(TradingDays)
	}
	return vol, nil
}

// SharpeRatio is the annualized mean excess return over the annualized
// return volatility. A zero denominator (constant or empty return series)
// yields 0.0 rather than an infinity or NaN.
func SharpeRatio(returns []float64, riskFreeRate float64) float64 {
	meanRet := Mean(returns) * TradingDays
	stdRet := StdDev(returns) * math.Sqrt(TradingDays)
	if stdRet == 0 {
		return 0.0
	}
	return (meanRet - riskFreeRate) / stdRet
}

// MaxDrawdown is the worst relative decline from a running peak, always
// ≤ 0 and exactly 0 for a monotonically non-decreasing (or empty) series.
// The first point measures against its own peak and contributes 0.
func MaxDrawdown(prices []float64) float64 {
	if len(prices) == 0 {
		return 0.0
	}
	peak := prices[0]
	worst := 0.0
	for _, p := range prices {
		if p > peak {
			peak = p
		}
		if dd := (p - peak) / peak; dd < worst {
			worst = dd
		}
	}
	return worst
}

// TotalReturn is (last - first) / first as a fraction, 0.0 for a series
// with fewer than two points.
func TotalReturn(prices []float64) float64 {
	if len(prices) < 2 {
		return 0.0
	}
	return (prices[len(prices)-1] - prices[0]) / prices[0]
}

// Min returns the smallest value, 0.0 for an empty series.
func Min(xs []float64) float64 {
	if len(xs) == 0 {
		return 0.0
	}
	lo := xs[0]
	for _, x := range xs {
		if x < lo {
			lo = x
		}
	}
	return lo
}

// Max returns the largest value, 0.0 for an empty series.
func Max(xs []float64) float64 {
	if len(xs) == 0 {
		return 0.0
	}
	hi := xs[0]
	for _, x := range xs {
		if x > hi {
			hi = x
		}
	}
	return hi
}
