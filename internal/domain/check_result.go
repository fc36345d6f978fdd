package domain

import "time"

type CheckStatus string

const (
	StatusWorking CheckStatus = "working"
	StatusFailed  CheckStatus = "failed"
)

// CheckResult is one outcome of validating a single proxy. Exactly one of
// IP/Error is set, matching Status. ResponseTime is measured on every
// outcome, including failures, where it reflects time-to-failure.
type CheckResult struct {
	Proxy        string      `json:"proxy"`
	Status       CheckStatus `json:"status"`
	IP           string      `json:"ip,omitempty"`
	Error        string      `json:"error,omitempty"`
	Country      string      `json:"country,omitempty"`
	City         string      `json:"city,omitempty"`
	ResponseTime int64       `json:"responseTime"`
	Timestamp    time.Time   `json:"timestamp"`
}

func (r CheckResult) IsWorking() bool {
	return r.Status == StatusWorking
}
