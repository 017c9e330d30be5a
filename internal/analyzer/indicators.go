package analyzer

import (
	"MarketLens/internal/calculator"
	"MarketLens/internal/collector"
)

// IndicatorOptions hold the window parameters for one indicator pass.
type IndicatorOptions struct {
	SMAWindow        int
	BollingerWindow  int
	BollingerStd     float64
	RSIWindow        int
	VolatilityWindow int
	Annualize        bool
}

// IndicatorSet bundles every indicator series for one price series. Each
// series omits the leading indices where its window is incomplete; a nil
// series means the input was shorter than the window.
type IndicatorSet struct {
	SMA               []float64 `json:"sma"`
	BollingerMiddle   []float64 `json:"bollinger_middle"`
	BollingerUpper    []float64 `json:"bollinger_upper"`
	BollingerLower    []float64 `json:"bollinger_lower"`
	RollingVolatility []float64 `json:"rolling_volatility"`
	RSI               []float64 `json:"rsi"`
}

// Indicators computes the full indicator set for a source's price series.
func Indicators(src collector.Source, opts IndicatorOptions) (*IndicatorSet, error) {
	prices, err := src.Prices()
	if err != nil {
		return nil, err
	}

	sma, err := calculator.SMA(prices, opts.SMAWindow)
	if err != nil {
		return nil, err
	}
	bands, err := calculator.Bollinger(prices, opts.BollingerWindow, opts.BollingerStd)
	if err != nil {
		return nil, err
	}
	vol, err := calculator.RollingVolatility(prices, opts.VolatilityWindow, opts.Annualize)
	if err != nil {
		return nil, err
	}
	rsi, err := calculator.RSI(prices, opts.RSIWindow)
	if err != nil {
		return nil, err
	}

	return &IndicatorSet{
		SMA:               sma,
		BollingerMiddle:   bands.Middle,
		BollingerUpper:    bands.Upper,
		BollingerLower:    bands.Lower,
		RollingVolatility: vol,
		RSI:               rsi,
	}, nil
}
