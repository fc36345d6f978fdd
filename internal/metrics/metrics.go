// Package metrics exposes Prometheus instrumentation for the checker and the
// HTTP API.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	ChecksTotal    *prometheus.CounterVec
	CheckDuration  prometheus.Histogram
	ChecksInFlight prometheus.Gauge
	HTTPRequests   *prometheus.CounterVec
	LedgerSize     prometheus.GaugeFunc
}

// New builds a registry with the service collectors plus the standard Go and
// process collectors. ledgerLen reports the current ledger size on scrape.
func New(ledgerLen func() int) *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		ChecksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "proxychecker_checks_total",
			Help: "Completed proxy checks by outcome status.",
		}, []string{"status"}),
		CheckDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "proxychecker_check_duration_seconds",
			Help:    "Wall-clock duration of individual proxy checks.",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		}),
		ChecksInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "proxychecker_checks_in_flight",
			Help: "Proxy checks currently running.",
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "proxychecker_http_requests_total",
			Help: "API requests by method, path and response code.",
		}, []string{"method", "path", "code"}),
		LedgerSize: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "proxychecker_ledger_entries",
			Help: "Entries currently held in the results ledger.",
		}, func() float64 { return float64(ledgerLen()) }),
	}

	registry.MustRegister(
		m.ChecksTotal,
		m.CheckDuration,
		m.ChecksInFlight,
		m.HTTPRequests,
		m.LedgerSize,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveCheck records one finished check.
func (m *Metrics) ObserveCheck(status string, durationSeconds float64) {
	m.ChecksTotal.WithLabelValues(status).Inc()
	m.CheckDuration.Observe(durationSeconds)
}
