package dto

import "github.com/CWELOWNIA12344/proxy-checker/internal/domain"

type ResultsResponse struct {
	Total   int                  `json:"total"`
	Results []domain.CheckResult `json:"results"`
}

type ClearResultsResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
