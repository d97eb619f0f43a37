package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Catalog client metrics
var (
	CatalogRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_requests_total",
			Help: "Total number of requests sent to the show catalog.",
		},
		[]string{"endpoint", "status"},
	)

	CatalogRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_request_duration_seconds",
			Help:    "Latency of show catalog requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
)

// Widget metrics
var (
	// WidgetActionsTotal counts user actions by flow ("search", "episodes")
	// and outcome ("rendered", "stale", "error").
	WidgetActionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "widget_actions_total",
			Help: "Total number of widget actions handled.",
		},
		[]string{"action", "outcome"},
	)

	LiveSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "widget_live_sessions",
			Help: "Number of sessions whose widget is held in memory.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		CatalogRequestsTotal,
		CatalogRequestDuration,
		WidgetActionsTotal,
		LiveSessions,
	)
}
