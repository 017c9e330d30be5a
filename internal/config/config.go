package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"MarketLens/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Analysis struct {
		RiskFreeRate float64 `yaml:"risk_free_rate"`
		Engine       string  `yaml:"engine"`
		Verify       bool    `yaml:"verify"`
	} `yaml:"analysis"`
	Indicators struct {
		SMAWindow        int     `yaml:"sma_window"`
		BollingerWindow  int     `yaml:"bollinger_window"`
		BollingerStd     float64 `yaml:"bollinger_std"`
		RSIWindow        int     `yaml:"rsi_window"`
		VolatilityWindow int     `yaml:"volatility_window"`
	} `yaml:"indicators"`
	Generation model.GenerationParameters `yaml:"generation"`
	Watch      struct {
		Cron string `yaml:"cron"`
	} `yaml:"watch"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("RISK_FREE_RATE"); v != "" {
		if rate, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Analysis.RiskFreeRate = rate
		}
	}
	if v := os.Getenv("ANALYSIS_ENGINE"); v != "" {
		cfg.Analysis.Engine = v
	}
	if v := os.Getenv("GENERATION_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Generation.Seed = seed
		}
	}
	if v := os.Getenv("WATCH_CRON"); v != "" {
		cfg.Watch.Cron = v
	}

	// Defaults
	if cfg.Analysis.RiskFreeRate == 0 {
		cfg.Analysis.RiskFreeRate = 0.02
	}
	if cfg.Analysis.Engine == "" {
		cfg.Analysis.Engine = "functional"
	}
	if cfg.Indicators.SMAWindow == 0 {
		cfg.Indicators.SMAWindow = 20
	}
	if cfg.Indicators.BollingerWindow == 0 {
		cfg.Indicators.BollingerWindow = 20
	}
	if cfg.Indicators.BollingerStd == 0 {
		cfg.Indicators.BollingerStd = 2.0
	}
	if cfg.Indicators.RSIWindow == 0 {
		cfg.Indicators.RSIWindow = 14
	}
	if cfg.Indicators.VolatilityWindow == 0 {
		cfg.Indicators.VolatilityWindow = 20
	}
	if cfg.Generation.InitialPrice == 0 {
		cfg.Generation.InitialPrice = 100.0
	}
	if cfg.Generation.Drift == 0 {
		cfg.Generation.Drift = 0.05
	}
	if cfg.Generation.Volatility == 0 {
		cfg.Generation.Volatility = 0.2
	}
	if cfg.Generation.Periods == 0 {
		cfg.Generation.Periods = 252
	}
	if cfg.Generation.Seed == 0 {
		cfg.Generation.Seed = 42
	}
	if cfg.Watch.Cron == "" {
		cfg.Watch.Cron = "0 0 * * * *"
	}

	return cfg, nil
}

// Validate checks that all fields are inside their domain.
func (c *Config) Validate() error {
	if c.Analysis.Engine != "functional" && c.Analysis.Engine != "vectorized" {
		return fmt.Errorf("analysis.engine must be functional or vectorized, got %q", c.Analysis.Engine)
	}
	if c.Indicators.SMAWindow <= 0 || c.Indicators.BollingerWindow <= 0 ||
		c.Indicators.RSIWindow <= 0 || c.Indicators.VolatilityWindow <= 0 {
		return fmt.Errorf("indicator windows must be positive")
	}
	if c.Indicators.BollingerStd < 0 {
		return fmt.Errorf("indicators.bollinger_std must be non-negative")
	}
	if c.Generation.InitialPrice <= 0 {
		return fmt.Errorf("generation.initial_price must be positive")
	}
	if c.Generation.Volatility < 0 {
		return fmt.Errorf("generation.volatility must be non-negative")
	}
	if c.Generation.Periods < 0 {
		return fmt.Errorf("generation.periods must be non-negative")
	}
	return nil
}
