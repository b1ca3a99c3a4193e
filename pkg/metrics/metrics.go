// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeAccepted        = "accepted"
	OutcomeProductRequired = "product_required"
	OutcomeRatingRequired  = "rating_required"
	OutcomeCommentRequired = "comment_required"
	OutcomeCommentTooLong  = "comment_too_long"
	OutcomeError           = "error"
)

var (
	submissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "customer_feedback",
		Name:      "submissions_total",
		Help:      "Feedback form submissions by outcome.",
	}, []string{"outcome"})

	dashboardViews = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "customer_feedback",
		Name:      "dashboard_views_total",
		Help:      "Dashboard renders by sort field.",
	}, []string{"sort"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "customer_feedback",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route pattern.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

func RecordSubmission(outcome string) {
	submissions.WithLabelValues(outcome).Inc()
}

func RecordDashboardView(sortField string) {
	dashboardViews.WithLabelValues(sortField).Inc()
}

func ObserveRequest(method, route string, status int, d time.Duration) {
	requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}
