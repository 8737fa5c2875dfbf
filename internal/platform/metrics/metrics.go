// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package metrics exposes the Prometheus collectors for the API and the report layer.

Collectors are registered on the default registry at init time and scraped via
promhttp on /metrics.
*/
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// # HTTP

var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "querylab_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "querylab_api_request_duration_seconds",
			Help:    "API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// # Reports

var (
	ReportDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "querylab_report_duration_seconds",
			Help:    "Time spent computing a report, excluding cache hits",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"domain", "report"},
	)

	ReportCacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "querylab_report_cache_requests_total",
			Help: "Report cache lookups by result (hit, miss, error)",
		},
		[]string{"domain", "result"},
	)

	ReportInvalidations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "querylab_report_invalidations_total",
			Help: "Number of domain generation bumps caused by writes",
		},
		[]string{"domain"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "querylab_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)
)

// RecordAPIRequest records a finished HTTP request.
func RecordAPIRequest(method, route string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordReport records the time taken to compute a report.
func RecordReport(domain, report string, duration time.Duration) {
	ReportDuration.WithLabelValues(domain, report).Observe(duration.Seconds())
}

// RecordCacheResult counts a cache lookup outcome.
func RecordCacheResult(domain, result string) {
	ReportCacheRequests.WithLabelValues(domain, result).Inc()
}
