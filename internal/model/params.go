package model

// GenerationParameters describe one synthetic price path. Drift and
// Volatility are annualized; a fixed Seed fully determines the output,
// Seed 0 draws from ambient entropy instead.
type GenerationParameters struct {
	InitialPrice float64 `yaml:"initial_price"`
	Drift        float64 `yaml:"drift"`
	Volatility   float64 `yaml:"volatility"`
	Periods      int     `yaml:"periods"`
	Seed         int64   `yaml:"seed"`
}
