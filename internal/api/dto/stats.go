package dto

import (
	"fmt"
	"time"

	"github.com/CWELOWNIA12344/proxy-checker/internal/stats"
)

// StatsResponse is the presentation form of aggregated statistics: the rate
// and mean are serialized as formatted strings ("100.00", "200.00ms").
type StatsResponse struct {
	TotalChecks         int    `json:"totalChecks"`
	Working             int    `json:"working"`
	Failed              int    `json:"failed"`
	SuccessRate         string `json:"successRate"`
	AverageResponseTime string `json:"averageResponseTime"`
	LastUpdated         string `json:"lastUpdated"`
}

func NewStatsResponse(s stats.Stats) StatsResponse {
	return StatsResponse{
		TotalChecks:         s.TotalChecks,
		Working:             s.Working,
		Failed:              s.Failed,
		SuccessRate:         fmt.Sprintf("%.2f", s.SuccessRate),
		AverageResponseTime: fmt.Sprintf("%.2fms", s.AverageResponseTime),
		LastUpdated:         s.LastUpdated.Format(time.RFC3339),
	}
}
