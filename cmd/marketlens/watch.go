package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"MarketLens/internal/collector"
	"MarketLens/internal/scheduler"
)

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	fallback := &collector.SimulatorSource{Params: cfg.Generation}
	var src collector.Source = fallback
	if len(args) == 1 {
		src = collector.WithFallback(&collector.FileSource{Path: args[0]}, fallback)
	}

	spec := cfg.Watch.Cron
	if cmd.Flags().Changed("cron") {
		spec, _ = cmd.Flags().GetString("cron")
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sched := scheduler.New(ctx, src, analysisOptions(cmd, cfg))
	if err := sched.Register(spec); err != nil {
		return err
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Info().Msg("RUN_ON_START enabled, running analysis now")
		go sched.RunNow()
	}

	log.Info().Str("cron", spec).Str("source", src.Name()).Msg("watching; press Ctrl+C to stop")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
	case <-ctx.Done():
	}
	log.Info().Msg("shutdown signal received, stopping")
	return nil
}
