// Package checker validates candidate proxies by routing one request through
// each of them to a judge endpoint that reports the caller's visible IP.
package checker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/CWELOWNIA12344/proxy-checker/internal/domain"
	"github.com/CWELOWNIA12344/proxy-checker/internal/geo"
	"github.com/CWELOWNIA12344/proxy-checker/internal/metrics"
	"github.com/CWELOWNIA12344/proxy-checker/internal/support"
)

const maxJudgeBodyBytes = 64 * 1024

type Checker struct {
	judgeURL       string
	defaultTimeout time.Duration
	maxTimeout     time.Duration
	concurrency    int
	resolver       geo.Resolver
	metrics        *metrics.Metrics
}

type Option func(*Checker)

func WithGeoResolver(resolver geo.Resolver) Option {
	return func(c *Checker) {
		c.resolver = resolver
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Checker) {
		c.metrics = m
	}
}

func WithConcurrency(limit int) Option {
	return func(c *Checker) {
		if limit > 0 {
			c.concurrency = limit
		}
	}
}

func WithMaxTimeout(limit time.Duration) Option {
	return func(c *Checker) {
		if limit > 0 {
			c.maxTimeout = limit
		}
	}
}

func New(judgeURL string, defaultTimeout time.Duration, opts ...Option) *Checker {
	c := &Checker{
		judgeURL:       judgeURL,
		defaultTimeout: defaultTimeout,
		maxTimeout:     defaultTimeout,
		concurrency:    20,
	}
	if c.maxTimeout < defaultTimeout {
		c.maxTimeout = defaultTimeout
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// EffectiveTimeout clamps a caller-requested timeout (milliseconds) into the
// allowed range; zero or negative selects the configured default.
func (c *Checker) EffectiveTimeout(requestedMs int) time.Duration {
	if requestedMs <= 0 {
		return c.defaultTimeout
	}
	timeout := time.Duration(requestedMs) * time.Millisecond
	if timeout > c.maxTimeout {
		return c.maxTimeout
	}
	return timeout
}

// Check routes a single GET through the candidate proxy to the judge and
// classifies the outcome. Failures are never returned as errors; they become
// failed results carrying the elapsed time until the failure surfaced. The
// single attempt is terminal: no retries.
func (c *Checker) Check(ctx context.Context, proxyAddress string, timeout time.Duration) domain.CheckResult {
	if timeout <= 0 {
		timeout = c.defaultTimeout
	}

	if c.metrics != nil {
		c.metrics.ChecksInFlight.Inc()
		defer c.metrics.ChecksInFlight.Dec()
	}

	start := time.Now()
	result := c.runCheck(ctx, proxyAddress, timeout, start)

	if c.metrics != nil {
		c.metrics.ObserveCheck(string(result.Status), time.Since(start).Seconds())
	}
	return result
}

func (c *Checker) runCheck(ctx context.Context, proxyAddress string, timeout time.Duration, start time.Time) domain.CheckResult {
	proxyURL, err := support.NormalizeProxyURL(proxyAddress)
	if err != nil {
		return c.failedResult(proxyAddress, start, fmt.Sprintf("invalid proxy address: %v", err))
	}

	client := &http.Client{
		Transport: support.CreateTransport(proxyURL, timeout),
		Timeout:   timeout,
	}
	defer client.CloseIdleConnections()

	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, c.judgeURL, nil)
	if err != nil {
		return c.failedResult(proxyAddress, start, fmt.Sprintf("build judge request: %v", err))
	}

	resp, err := client.Do(req)
	if err != nil {
		return c.failedResult(proxyAddress, start, describeFailure(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxJudgeBodyBytes))
		return c.failedResult(proxyAddress, start, fmt.Sprintf("judge returned HTTP %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxJudgeBodyBytes))
	if err != nil {
		return c.failedResult(proxyAddress, start, fmt.Sprintf("read judge response: %v", err))
	}

	ip, err := parseJudgeResponse(body)
	if err != nil {
		return c.failedResult(proxyAddress, start, err.Error())
	}

	result := domain.CheckResult{
		Proxy:        proxyAddress,
		Status:       domain.StatusWorking,
		IP:           ip,
		ResponseTime: time.Since(start).Milliseconds(),
		Timestamp:    time.Now().UTC(),
	}
	if c.resolver != nil {
		result.Country, result.City = c.resolver.Lookup(ip)
	}

	log.Debug("Proxy check succeeded", "proxy", proxyAddress, "ip", ip, "response_time_ms", result.ResponseTime)
	return result
}

func (c *Checker) failedResult(proxyAddress string, start time.Time, reason string) domain.CheckResult {
	elapsed := time.Since(start).Milliseconds()
	log.Debug("Proxy check failed", "proxy", proxyAddress, "reason", reason, "response_time_ms", elapsed)

	return domain.CheckResult{
		Proxy:        proxyAddress,
		Status:       domain.StatusFailed,
		Error:        reason,
		ResponseTime: elapsed,
		Timestamp:    time.Now().UTC(),
	}
}

// judgeResponse matches httpbin-style judges: {"origin": "203.0.113.7"}.
type judgeResponse struct {
	Origin string `json:"origin"`
}

// parseJudgeResponse extracts the externally visible IP from the judge body.
// JSON judges report it in an "origin" field; plain-text judges return the
// bare address.
func parseJudgeResponse(body []byte) (string, error) {
	var parsed judgeResponse
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Origin != "" {
		// httpbin reports comma-separated addresses when X-Forwarded-For
		// chains through the proxy; the first one is the exit address.
		origin := strings.TrimSpace(strings.Split(parsed.Origin, ",")[0])
		return origin, nil
	}

	text := strings.TrimSpace(string(body))
	if net.ParseIP(text) != nil {
		return text, nil
	}

	return "", errors.New("judge response did not contain an IP address")
}

func describeFailure(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return "request timed out"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "request timed out"
	}
	return err.Error()
}
