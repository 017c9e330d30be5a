package calculator

import "math"

// Series-valued indicators omit the leading indices where a full window is
// not yet available: results are shortened, never zero-filled. A window
// larger than the data yields an empty result without error.

// SMA computes the trailing simple moving average: result value j is the
// mean of prices[j .. j+window-1], so the first value covers the earliest
// complete window.
func SMA(prices []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, ErrInvalidWindow
	}
	if len(prices) < window {
		return nil, nil
	}
	out := make([]float64, len(prices)-window+1)
	for j := range out {
		out[j] = Mean(prices[j : j+window])
	}
	return out, nil
}

// BollingerBands holds the three band series, aligned with each other.
type BollingerBands struct {
	Middle []float64
	Upper  []float64
	Lower  []float64
}

// Bollinger computes an SMA middle band flanked by bands numStd rolling
// standard deviations away. The rolling deviation is the population
// standard deviation, matching Variance.
func Bollinger(prices []float64, window int, numStd float64) (*BollingerBands, error) {
	mid, err := SMA(prices, window)
	if err != nil {
		return nil, err
	}
	bands := &BollingerBands{
		Middle: mid,
		Upper:  make([]float64, len(mid)),
		Lower:  make([]float64, len(mid)),
	}
	for j := range mid {
		sd := StdDev(prices[j : j+window])
		bands.Upper[j] = mid[j] + numStd*sd
		bands.Lower[j] = mid[j] - numStd*sd
	}
	return bands, nil
}

// RollingVolatility computes the rolling population standard deviation of
// the return series, annualized by √252 when annualize is set. Result
// value j covers returns[j .. j+window-1].
func RollingVolatility(prices []float64, window int, annualize bool) ([]float64, error) {
	if window <= 0 {
		return nil, ErrInvalidWindow
	}
	rets, err := Returns(prices)
	if err != nil {
		return nil, err
	}
	if len(rets) < window {
		return nil, nil
	}
	factor := 1.0
	if annualize {
		factor = math.Sqrt(TradingDays)
	}
	out := make([]float64, len(rets)-window+1)
	for j := range out {
		out[j] = StdDev(rets[j:j+window]) * factor
	}
	return out, nil
}

// RSI computes the simple-average Relative Strength Index over price
// deltas: the rolling mean of gains divided by the rolling mean of loss
// magnitudes, mapped through 100 - 100/(1+RS). Result value j corresponds
// to prices[j+window]. A window with zero average loss saturates at 100.
func RSI(prices []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, ErrInvalidWindow
	}
	if len(prices) < window+1 {
		return nil, nil
	}
	n := len(prices) - 1
	gains := make([]float64, n)
	losses := make([]float64, n)
	for i := 0; i < n; i++ {
		delta := prices[i+1] - prices[i]
		if delta > 0 {
			gains[i] = delta
		} else {
			losses[i] = -delta
		}
	}
	out := make([]float64, n-window+1)
	for j := range out {
		avgGain := Mean(gains[j : j+window])
		avgLoss := Mean(losses[j : j+window])
		if avgLoss == 0 {
			out[j] = 100.0
			continue
		}
		rs := avgGain / avgLoss
		out[j] = 100.0 - 100.0/(1.0+rs)
	}
	return out, nil
}
