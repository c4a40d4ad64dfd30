package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests The total number of handled HTTP requests (counter)
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "http",
			Name:      "requests_total",
			Help:      "The total number of handled HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration The time spent serving HTTP requests (summary with quantiles 0.5, 0.9, and 0.99)
	HTTPRequestDuration = promauto.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace:  "http",
			Name:       "request_duration_seconds",
			Help:       "The time spent serving HTTP requests",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"method", "route"},
	)

	// FlowTransitions The total number of applied booking and profile actions (counter)
	FlowTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "flow",
			Name:      "transitions_total",
			Help:      "The total number of applied booking and profile actions",
		},
		[]string{"flow", "action", "view"},
	)

	// FlowTransitionsFailed The total number of rejected booking and profile actions (counter)
	FlowTransitionsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "flow",
			Name:      "transitions_failed_total",
			Help:      "The total number of rejected booking and profile actions",
		},
		[]string{"flow", "action"},
	)

	// SearchCacheLookups The total number of search cache lookups by result (counter)
	SearchCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "search",
			Name:      "cache_lookups_total",
			Help:      "The total number of search cache lookups",
		},
		[]string{"result"},
	)

	// ActiveSessions The number of sessions held in memory (gauge)
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "sessions",
			Name:      "active",
			Help:      "The number of sessions held in memory",
		},
	)
)
