// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AnalyzeRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analysis_requests_total",
			Help: "Total number of analyze requests by outcome",
		},
		[]string{"status"},
	)

	AnalyzeRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "analysis_request_duration_seconds",
			Help: "Duration of analyze request processing in seconds",
		},
	)

	IssuesExtracted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analysis_issues_extracted_total",
			Help: "Total number of issues extracted by severity",
		},
		[]string{"severity"},
	)

	ScoreDistribution = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "analysis_score",
			Help:    "Distribution of overall scores produced",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)
)
