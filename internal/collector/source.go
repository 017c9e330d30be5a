// Package collector acquires price series for analysis: from a JSON file,
// from the built-in demonstration sequence, or from the synthetic
// generator as a fallback.
package collector

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/rs/zerolog/log"

	"MarketLens/internal/model"
	"MarketLens/internal/simulator"
)

// ErrMalformedInput reports price input that does not parse as a flat JSON
// array of positive finite numbers.
var ErrMalformedInput = errors.New("malformed price input")

// Source produces one price series per call. Implementations are stateless
// between calls; the caller owns the returned slice.
type Source interface {
	Prices() ([]float64, error)
	Name() string
}

// demoPrices is the built-in demonstration sequence. Its report is a
// regression fixture, so these values must never change.
var demoPrices = []float64{100.0, 102.5, 101.8, 104.2, 103.5, 106.0, 105.5, 108.0, 107.2, 110.0}

// DemoSource serves the fixed demonstration sequence.
type DemoSource struct{}

func (DemoSource) Name() string { return "demo" }

func (DemoSource) Prices() ([]float64, error) {
	out := make([]float64, len(demoPrices))
	copy(out, demoPrices)
	return out, nil
}

// FileSource reads a JSON price array from a file.
type FileSource struct {
	Path string
}

func (s *FileSource) Name() string { return "file:" + s.Path }

func (s *FileSource) Prices() ([]float64, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read price file: %w", err)
	}
	return ParsePrices(data)
}

// ParsePrices decodes a flat JSON array of positive finite numbers.
// Nested arrays, objects, empty arrays, and out-of-domain values are all
// rejected as ErrMalformedInput.
func ParsePrices(data []byte) ([]float64, error) {
	var prices []float64
	if err := json.Unmarshal(data, &prices); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if len(prices) == 0 {
		return nil, fmt.Errorf("%w: empty price array", ErrMalformedInput)
	}
	for i, p := range prices {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return nil, fmt.Errorf("%w: non-finite price at index %d", ErrMalformedInput, i)
		}
		if p <= 0 {
			return nil, fmt.Errorf("%w: non-positive price %g at index %d", ErrMalformedInput, p, i)
		}
	}
	return prices, nil
}

// SimulatorSource generates a synthetic series. Every call builds a fresh
// seeded generator, so a fixed seed reproduces the same series each time.
type SimulatorSource struct {
	Params model.GenerationParameters
}

func (s *SimulatorSource) Name() string { return "simulator" }

func (s *SimulatorSource) Prices() ([]float64, error) {
	return simulator.NewGenerator(s.Params.Seed).Generate(s.Params)
}

// WithFallback chains two sources: when the primary cannot produce prices
// the fallback is consulted instead.
func WithFallback(primary, fallback Source) Source {
	return &fallbackSource{primary: primary, fallback: fallback}
}

type fallbackSource struct {
	primary  Source
	fallback Source
}

func (s *fallbackSource) Name() string { return s.primary.Name() }

func (s *fallbackSource) Prices() ([]float64, error) {
	prices, err := s.primary.Prices()
	if err == nil {
		return prices, nil
	}
	log.Warn().Err(err).Str("source", s.primary.Name()).
		Str("fallback", s.fallback.Name()).
		Msg("primary price source failed, falling back")
	return s.fallback.Prices()
}
