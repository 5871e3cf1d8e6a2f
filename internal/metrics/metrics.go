package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts requests by method, route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bunk_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration observes request latency by method and route.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bunk_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// ReportsSaved counts successful daily report saves.
	ReportsSaved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bunk_reports_saved_total",
			Help: "Total number of daily reports saved",
		},
	)

	// LedgerTransactions counts applied ledger transactions by type.
	LedgerTransactions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bunk_ledger_transactions_total",
			Help: "Total number of ledger transactions applied",
		},
		[]string{"type"},
	)
)
