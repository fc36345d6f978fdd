package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/CWELOWNIA12344/proxy-checker/internal/api/dto"
	"github.com/CWELOWNIA12344/proxy-checker/internal/domain"
)

func (s *Server) handleCheckProxy(w http.ResponseWriter, r *http.Request) {
	var payload dto.CheckProxyRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	proxy := strings.TrimSpace(payload.Proxy)
	if proxy == "" {
		writeError(w, "proxy is required", http.StatusBadRequest)
		return
	}

	// A started check runs to its own timeout even if the caller goes away;
	// its outcome still belongs in the ledger.
	ctx := context.WithoutCancel(r.Context())
	result := s.checker.Check(ctx, proxy, s.checker.EffectiveTimeout(payload.TimeoutMs))
	s.store.Append(result)

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleCheckProxies(w http.ResponseWriter, r *http.Request) {
	var payload dto.CheckProxiesRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if len(payload.Proxies) == 0 {
		writeError(w, "proxies must be a non-empty array", http.StatusBadRequest)
		return
	}
	if limit := s.cfg.Checker.MaxBatchSize; len(payload.Proxies) > limit {
		writeError(w, fmt.Sprintf("maximum %d proxies per request", limit), http.StatusBadRequest)
		return
	}

	ctx := context.WithoutCancel(r.Context())
	results := s.checker.CheckBatch(ctx, payload.Proxies, s.checker.EffectiveTimeout(payload.TimeoutMs))
	s.store.AppendBatch(results)

	summary := dto.BatchSummary{}
	for _, result := range results {
		if result.Status == domain.StatusWorking {
			summary.Working++
		} else {
			summary.Failed++
		}
	}

	writeJSON(w, http.StatusOK, dto.CheckProxiesResponse{
		Total:   len(results),
		Results: results,
		Summary: summary,
	})
}
