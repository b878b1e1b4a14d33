package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Fetch outcomes.
const (
	OutcomeSuccess           = "success"
	OutcomeNetworkFailure    = "network_failure"
	OutcomeMalformedResponse = "malformed_response"
	OutcomeStale             = "stale"
)

var (
	LogFetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "logquery_log_fetches_total",
		Help: "Total number of log service fetches by outcome",
	}, []string{"outcome"})

	LogFetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "logquery_log_fetch_duration_seconds",
		Help:    "Duration of log service fetches",
		Buckets: prometheus.DefBuckets,
	})

	LogFetchRecords = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "logquery_log_fetch_records",
		Help:    "Number of records returned by successful fetches",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	})

	FilterChangesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "logquery_filter_changes_total",
		Help: "Total number of accepted filter state transitions",
	}, []string{"kind"})

	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "logquery_active_sessions",
		Help: "Number of open viewer sessions",
	})
)
