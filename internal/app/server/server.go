// Package server exposes the checker, the results ledger and the aggregated
// statistics over a JSON HTTP API, plus the embedded dashboard and the
// Prometheus endpoint.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/CWELOWNIA12344/proxy-checker/internal/config"
	"github.com/CWELOWNIA12344/proxy-checker/internal/jobs/checker"
	"github.com/CWELOWNIA12344/proxy-checker/internal/metrics"
	"github.com/CWELOWNIA12344/proxy-checker/internal/store"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	cfg     config.Config
	checker *checker.Checker
	store   *store.ResultStore
	metrics *metrics.Metrics

	httpServer *http.Server
}

func New(cfg config.Config, chk *checker.Checker, resultStore *store.ResultStore, m *metrics.Metrics) *Server {
	s := &Server{
		cfg:     cfg,
		checker: chk,
		store:   resultStore,
		metrics: m,
	}

	s.httpServer = &http.Server{
		Addr:              cfg.ListenAddress(),
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Run serves until the context is canceled, then drains in-flight requests
// within the shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		log.Info("HTTP server listening", "address", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: listen on %s: %w", s.httpServer.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return <-errCh
}
