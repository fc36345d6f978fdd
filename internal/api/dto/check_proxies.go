package dto

import "github.com/CWELOWNIA12344/proxy-checker/internal/domain"

type CheckProxyRequest struct {
	Proxy string `json:"proxy"`
	// TimeoutMs optionally overrides the configured check timeout; it is
	// clamped server-side.
	TimeoutMs int `json:"timeout,omitempty"`
}

type CheckProxiesRequest struct {
	Proxies   []string `json:"proxies"`
	TimeoutMs int      `json:"timeout,omitempty"`
}

type BatchSummary struct {
	Working int `json:"working"`
	Failed  int `json:"failed"`
}

type CheckProxiesResponse struct {
	Total   int                  `json:"total"`
	Results []domain.CheckResult `json:"results"`
	Summary BatchSummary         `json:"summary"`
}
