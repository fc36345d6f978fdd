package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/CWELOWNIA12344/proxy-checker/internal/app/server"
	"github.com/CWELOWNIA12344/proxy-checker/internal/config"
	"github.com/CWELOWNIA12344/proxy-checker/internal/geo"
	"github.com/CWELOWNIA12344/proxy-checker/internal/jobs/checker"
	"github.com/CWELOWNIA12344/proxy-checker/internal/metrics"
	"github.com/CWELOWNIA12344/proxy-checker/internal/store"
)

func main() {
	cfg := config.Load()

	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.Warn("Unknown log level, using info", "level", cfg.LogLevel)
	}

	resolver, err := geo.Open(cfg.Geo.DatabasePath)
	if err != nil {
		log.Fatal("Failed to open GeoIP database", "error", err)
	}
	defer resolver.Close()

	resultStore := store.NewResultStore()
	m := metrics.New(resultStore.Len)

	chk := checker.New(
		cfg.Checker.JudgeURL,
		time.Duration(cfg.Checker.Timeout)*time.Millisecond,
		checker.WithMaxTimeout(time.Duration(cfg.Checker.MaxTimeout)*time.Millisecond),
		checker.WithConcurrency(cfg.Checker.Concurrency),
		checker.WithGeoResolver(resolver),
		checker.WithMetrics(m),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("Starting proxy checker",
		"judge", cfg.Checker.JudgeURL,
		"timeout_ms", cfg.Checker.Timeout,
		"concurrency", cfg.Checker.Concurrency,
	)

	srv := server.New(cfg, chk, resultStore, m)
	if err := srv.Run(ctx); err != nil {
		log.Fatal("Server exited with error", "error", err)
	}
	log.Info("Shutdown complete")
}
