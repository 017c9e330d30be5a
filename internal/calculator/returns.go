package calculator

// Returns derives the simple percentage return series from a price series:
// entry i is (prices[i+1] - prices[i]) / prices[i]. Fewer than two prices
// yield an empty series without error. A zero or negative price is a caller
// contract violation and is reported, never silently coerced.
func Returns(prices []float64) ([]float64, error) {
	if len(prices) < 2 {
		return nil, nil
	}
	for _, p := range prices {
		if p <= 0 {
			return nil, ErrNonPositivePrice
		}
	}
	rets := make([]float64, len(prices)-1)
	for i := 0; i < len(prices)-1; i++ {
		rets[i] = (prices[i+1] - prices[i]) / prices[i]
	}
	return rets, nil
}
