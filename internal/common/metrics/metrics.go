// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SubmissionsFetched = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feed_submissions_fetched_total",
			Help: "Total number of raw submissions fetched from the tracker",
		},
	)

	ValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_validation_failures_total",
			Help: "Total number of submissions that failed validation",
		},
		[]string{"stage"},
	)

	RecordsExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feed_records_expired_total",
			Help: "Total number of valid records excluded as expired",
		},
	)

	RecordsEmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feed_records_emitted_total",
			Help: "Total number of records emitted into the feed",
		},
	)

	RunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "feed_run_duration_seconds",
			Help: "Duration of one full generation run in seconds",
		},
	)
)
