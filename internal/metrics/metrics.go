// Package metrics defines Prometheus instruments for the upstream
// integrations. HTTP error counts live in the errors package next to the
// middleware that records them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// GitHub API metrics
var (
	// GitHubAPIRequestsTotal tracks GitHub REST calls by endpoint and outcome.
	GitHubAPIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "github_api_requests_total",
			Help: "Total GitHub API requests by endpoint and status",
		},
		[]string{"endpoint", "status"},
	)

	// GitHubStatsDuration tracks end-to-end stats aggregation latency in seconds.
	GitHubStatsDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "github_stats_duration_seconds",
			Help:    "GitHub stats aggregation duration in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
	)
)

// Contact relay metrics
var (
	// ContactSubmissionsTotal tracks contact form submissions by outcome
	// (sent, logged_only, failed, rejected).
	ContactSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Total contact form submissions by outcome",
		},
		[]string{"outcome"},
	)
)

// AI chat proxy metrics
var (
	// ChatRequestsTotal tracks chat completions by outcome (ok, error).
	ChatRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_requests_total",
			Help: "Total AI chat proxy requests by outcome",
		},
		[]string{"outcome"},
	)
)
