// Package stats derives aggregate figures from a ledger snapshot. The
// computation is a pure function of its input; nothing is maintained
// incrementally because ledgers stay operationally small.
package stats

import (
	"math"
	"time"

	"github.com/CWELOWNIA12344/proxy-checker/internal/domain"
)

type Stats struct {
	TotalChecks         int       `json:"totalChecks"`
	Working             int       `json:"working"`
	Failed              int       `json:"failed"`
	SuccessRate         float64   `json:"successRate"`
	AverageResponseTime float64   `json:"averageResponseTime"`
	LastUpdated         time.Time `json:"lastUpdated"`
}

// Compute walks the snapshot once and returns counts, the success rate as a
// percentage, and the mean response time in milliseconds, both rounded to two
// decimals. An empty snapshot yields zero values rather than a fault.
func Compute(snapshot []domain.CheckResult) Stats {
	s := Stats{
		TotalChecks: len(snapshot),
		LastUpdated: time.Now().UTC(),
	}

	if s.TotalChecks == 0 {
		return s
	}

	var totalResponseTime int64
	for _, result := range snapshot {
		if result.IsWorking() {
			s.Working++
		} else {
			s.Failed++
		}
		totalResponseTime += result.ResponseTime
	}

	s.SuccessRate = round2(float64(s.Working) / float64(s.TotalChecks) * 100)
	s.AverageResponseTime = round2(float64(totalResponseTime) / float64(s.TotalChecks))

	return s
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
