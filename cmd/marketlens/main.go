package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"MarketLens/internal/analyzer"
	"MarketLens/internal/collector"
	"MarketLens/internal/config"
	"MarketLens/internal/model"
)

const (
	appName = "marketlens"
	version = "v1.0.0"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	rootCmd := &cobra.Command{
		Use:   appName + " [price-file.json]",
		Short: "Deterministic market data analytics",
		Long: `MarketLens computes a fixed set of statistical and technical metrics over
a price series and prints them as a stable fixed-point JSON report.

With a file argument the series is read as a JSON array of positive prices;
with no argument the built-in demonstration series is analyzed.`,
		Version:      version,
		Args:         cobra.MaximumNArgs(1),
		RunE:         runAnalyze,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("config", "configs/config.yaml", "Path to YAML configuration")
	addAnalysisFlags(rootCmd)

	indicatorsCmd := &cobra.Command{
		Use:   "indicators [price-file.json]",
		Short: "Compute technical indicator series",
		Long:  "Computes SMA, Bollinger bands, rolling volatility, and RSI series for a price series",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runIndicators,
	}
	indicatorsCmd.Flags().Bool("annualize", false, "Annualize the rolling volatility series")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic price series",
		Long:  "Generates a geometric-Brownian-motion price path and prints it as a JSON array, ready to feed back into the analyzer",
		Args:  cobra.NoArgs,
		RunE:  runGenerate,
	}
	generateCmd.Flags().Float64("initial-price", 0, "Starting price (default from config)")
	generateCmd.Flags().Float64("drift", 0, "Annual drift (default from config)")
	generateCmd.Flags().Float64("volatility", 0, "Annual volatility (default from config)")
	generateCmd.Flags().Int("periods", 0, "Number of trading periods (default from config)")
	generateCmd.Flags().Int64("seed", 0, "Random seed, 0 for non-deterministic (default from config)")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "Analyze multiple symbols in parallel",
		Long:  "Generates an independent synthetic series per symbol and analyzes them concurrently; a fixed seed makes the whole comparison reproducible",
		Args:  cobra.NoArgs,
		RunE:  runCompare,
	}
	compareCmd.Flags().StringSlice("symbols", []string{"AAPL", "GOOGL", "MSFT"}, "Comma-separated symbol list")
	addAnalysisFlags(compareCmd)

	watchCmd := &cobra.Command{
		Use:   "watch [price-file.json]",
		Short: "Re-run an analysis on a cron schedule",
		Long:  "Periodically re-analyzes the given price file (falling back to the synthetic generator when it cannot be read) and logs the report summary",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runWatch,
	}
	watchCmd.Flags().String("cron", "", "Cron spec with seconds (default from config)")
	addAnalysisFlags(watchCmd)

	rootCmd.AddCommand(indicatorsCmd, generateCmd, compareCmd, watchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addAnalysisFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("risk-free-rate", 0.02, "Annual risk-free rate for the Sharpe ratio")
	cmd.Flags().String("engine", "functional", "Report engine (functional|vectorized)")
	cmd.Flags().Bool("verify", false, "Run both engines and require bitwise agreement")
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if v := os.Getenv("CONFIG_PATH"); v != "" && !cmd.Flags().Changed("config") {
		path = v
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// analysisOptions resolves effective options: flags win over config.
func analysisOptions(cmd *cobra.Command, cfg *config.Config) analyzer.Options {
	opts := analyzer.Options{
		RiskFreeRate: cfg.Analysis.RiskFreeRate,
		Engine:       cfg.Analysis.Engine,
		Verify:       cfg.Analysis.Verify,
	}
	if cmd.Flags().Changed("risk-free-rate") {
		opts.RiskFreeRate, _ = cmd.Flags().GetFloat64("risk-free-rate")
	}
	if cmd.Flags().Changed("engine") {
		opts.Engine, _ = cmd.Flags().GetString("engine")
	}
	if v, _ := cmd.Flags().GetBool("verify"); v {
		opts.Verify = true
	}
	return opts
}

func sourceFromArgs(args []string) collector.Source {
	if len(args) == 1 {
		return &collector.FileSource{Path: args[0]}
	}
	log.Info().Msg("no price file given, analyzing built-in demo series")
	return collector.DemoSource{}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	rep, err := analyzer.Analyze(sourceFromArgs(args), analysisOptions(cmd, cfg))
	if err != nil {
		return err
	}
	return printJSON(cmd, rep)
}

func runIndicators(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	annualize, _ := cmd.Flags().GetBool("annualize")
	set, err := analyzer.Indicators(sourceFromArgs(args), analyzer.IndicatorOptions{
		SMAWindow:        cfg.Indicators.SMAWindow,
		BollingerWindow:  cfg.Indicators.BollingerWindow,
		BollingerStd:     cfg.Indicators.BollingerStd,
		RSIWindow:        cfg.Indicators.RSIWindow,
		VolatilityWindow: cfg.Indicators.VolatilityWindow,
		Annualize:        annualize,
	})
	if err != nil {
		return err
	}
	return printJSON(cmd, set)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	params := cfg.Generation
	if cmd.Flags().Changed("initial-price") {
		params.InitialPrice, _ = cmd.Flags().GetFloat64("initial-price")
	}
	if cmd.Flags().Changed("drift") {
		params.Drift, _ = cmd.Flags().GetFloat64("drift")
	}
	if cmd.Flags().Changed("volatility") {
		params.Volatility, _ = cmd.Flags().GetFloat64("volatility")
	}
	if cmd.Flags().Changed("periods") {
		params.Periods, _ = cmd.Flags().GetInt("periods")
	}
	if cmd.Flags().Changed("seed") {
		params.Seed, _ = cmd.Flags().GetInt64("seed")
	}
	prices, err := (&collector.SimulatorSource{Params: params}).Prices()
	if err != nil {
		return err
	}
	return printJSON(cmd, prices)
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	symbols, _ := cmd.Flags().GetStringSlice("symbols")
	results := analyzer.Compare(symbols, cfg.Generation, analysisOptions(cmd, cfg))

	type row struct {
		Symbol string        `json:"symbol"`
		Report *model.Report `json:"report,omitempty"`
		Error  string        `json:"error,omitempty"`
	}
	rows := make([]row, len(results))
	failed := 0
	for i, res := range results {
		rows[i] = row{Symbol: res.Symbol, Report: res.Report}
		if res.Err != nil {
			rows[i].Error = res.Err.Error()
			failed++
			log.Error().Err(res.Err).Str("symbol", res.Symbol).Msg("analysis failed")
		}
	}
	if err := printJSON(cmd, rows); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d analyses failed", failed, len(results))
	}
	return nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
