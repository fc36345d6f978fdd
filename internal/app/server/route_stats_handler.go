package server

import (
	"net/http"
	"time"

	"github.com/CWELOWNIA12344/proxy-checker/internal/api/dto"
	"github.com/CWELOWNIA12344/proxy-checker/internal/stats"
)

func (s *Server) handleGetStats(w http.ResponseWriter, r *http.Request) {
	computed := stats.Compute(s.store.All())
	writeJSON(w, http.StatusOK, dto.NewStatsResponse(computed))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
