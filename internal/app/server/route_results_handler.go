package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/CWELOWNIA12344/proxy-checker/internal/api/dto"
)

func (s *Server) handleGetResults(w http.ResponseWriter, r *http.Request) {
	results := s.store.All()
	writeJSON(w, http.StatusOK, dto.ResultsResponse{
		Total:   len(results),
		Results: results,
	})
}

func (s *Server) handleGetWorkingResults(w http.ResponseWriter, r *http.Request) {
	results := s.store.Working()
	writeJSON(w, http.StatusOK, dto.ResultsResponse{
		Total:   len(results),
		Results: results,
	})
}

func (s *Server) handleClearResults(w http.ResponseWriter, r *http.Request) {
	cleared := s.store.Len()
	s.store.Clear()
	log.Info("Results ledger cleared", "entries", cleared)

	writeJSON(w, http.StatusOK, dto.ClearResultsResponse{
		Message:   "All results cleared",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
