// Package scheduler re-runs an analysis on a cron schedule and logs the
// resulting report summary.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"MarketLens/internal/analyzer"
	"MarketLens/internal/collector"
)

// Scheduler owns the cron runner and the analysis it repeats.
type Scheduler struct {
	cron   *cron.Cron
	source collector.Source
	opts   analyzer.Options
	ctx    context.Context
}

// New creates a Scheduler around one source and one set of options.
func New(ctx context.Context, src collector.Source, opts analyzer.Options) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithSeconds()),
		source: src,
		opts:   opts,
		ctx:    ctx,
	}
}

// Register adds the periodic analysis task under the given cron spec
// (six fields, with seconds).
func (s *Scheduler) Register(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return fmt.Errorf("register watch task: %w", err)
	}
	return nil
}

// Start starts the cron runner.
func (s *Scheduler) Start() {
	s.cron.Start()
	log.Info().Msg("scheduler started")
}

// Stop stops the cron runner gracefully.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Info().Msg("scheduler stopped")
}

// RunNow executes the analysis task immediately.
func (s *Scheduler) RunNow() {
	s.run()
}

func (s *Scheduler) run() {
	select {
	case <-s.ctx.Done():
		return
	default:
	}
	rep, err := analyzer.Analyze(s.source, s.opts)
	if err != nil {
		log.Error().Err(err).Str("source", s.source.Name()).Msg("scheduled analysis failed")
		return
	}
	log.Info().
		Str("source", s.source.Name()).
		Float64("mean_price", rep.MeanPrice).
		Float64("volatility_annual", rep.VolatilityAnnual).
		Float64("total_return_pct", rep.TotalReturn).
		Float64("sharpe_ratio", rep.SharpeRatio).
		Float64("max_drawdown", rep.MaxDrawdown).
		Msg("scheduled analysis complete")
}
