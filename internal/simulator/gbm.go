// Package simulator synthesizes price paths with discretized Geometric
// Brownian Motion over a 252-day trading year.
package simulator

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"MarketLens/internal/calculator"
	"MarketLens/internal/model"
)

// ErrInvalidParameters reports generation parameters outside their domain.
var ErrInvalidParameters = errors.New("invalid generation parameters")

// Generator produces synthetic price paths. Each Generator owns its random
// stream; parallel generations must each use their own seeded instance so
// fixed-seed runs stay reproducible.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator with its own random stream. Seed 0
// draws from the clock and is not reproducible.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate produces a GBM price path. The annual drift μ and volatility σ
// are converted to a daily step: drift (μ - σ²/2)/252, shock σ/√252·Z with
// Z standard normal, and p[t+1] = p[t]·exp(drift+shock). The result has
// params.Periods+1 elements with params.InitialPrice as element 0.
func (g *Generator) Generate(params model.GenerationParameters) ([]float64, error) {
	if err := validate(params); err != nil {
		return nil, err
	}
	drift := (params.Drift - params.Volatility*params.Volatility/2) / calculator.TradingDays
	scale := params.Volatility / math.Sqrt(calculator.TradingDays)

	prices := make([]float64, params.Periods+1)
	prices[0] = params.InitialPrice
	for t := 0; t < params.Periods; t++ {
		shock := scale * g.rng.NormFloat64()
		prices[t+1] = prices[t] * math.Exp(drift+shock)
	}
	return prices, nil
}

func validate(p model.GenerationParameters) error {
	if p.InitialPrice <= 0 || math.IsNaN(p.InitialPrice) || math.IsInf(p.InitialPrice, 0) {
		return fmt.Errorf("%w: initial price must be positive and finite, got %g", ErrInvalidParameters, p.InitialPrice)
	}
	if p.Volatility < 0 || math.IsNaN(p.Volatility) || math.IsInf(p.Volatility, 0) {
		return fmt.Errorf("%w: volatility must be non-negative and finite, got %g", ErrInvalidParameters, p.Volatility)
	}
	if math.IsNaN(p.Drift) || math.IsInf(p.Drift, 0) {
		return fmt.Errorf("%w: drift must be finite, got %g", ErrInvalidParameters, p.Drift)
	}
	if p.Periods < 0 {
		return fmt.Errorf("%w: periods must be non-negative, got %d", ErrInvalidParameters, p.Periods)
	}
	return nil
}
