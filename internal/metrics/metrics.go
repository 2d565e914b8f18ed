// Package metrics defines Prometheus metrics for amber-scan.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "amberscan"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})
)

// Health gauges.
var (
	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "Whether the last liveness probe succeeded (1) or failed (0).",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "Whether the last readiness probe succeeded (1) or failed (0).",
	})
)

// Evaluation cycle metrics.
var (
	CycleDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "cycle_duration_seconds",
		Help:      "Duration of price evaluation cycles in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	CycleSkipsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cycle_skips_total",
		Help:      "Total cycles skipped because a previous cycle was still running.",
	})

	UsersCheckedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_checked_total",
		Help:      "Total number of user evaluations performed.",
	})

	UserErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_errors_total",
		Help:      "Total per-user evaluation failures (fetch, normalize, store).",
	})

	QuietHoursSkipsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quiet_hours_skips_total",
		Help:      "Total user evaluations skipped due to quiet hours.",
	})

	CooldownSuppressedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cooldown_suppressed_total",
		Help:      "Total alerts suppressed by the cooldown window.",
	}, []string{"kind"})
)

// Alert metrics.
var (
	AlertsFiredTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alerts_fired_total",
		Help:      "Total number of alerts fired.",
	}, []string{"kind"})

	NotificationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_failures_total",
		Help:      "Total number of notification send failures.",
	})
)

// Amber API metrics.
var (
	AmberAPICallsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "amber_api_calls_total",
		Help:      "Total cumulative Amber API calls.",
	})

	AmberAPIErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "amber_api_errors_total",
		Help:      "Total Amber API call failures after retries.",
	})

	AmberDailyUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "amber_daily_usage",
		Help:      "Current daily Amber API call count within the rolling 24-hour window.",
	})

	AmberDailyLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "amber_daily_limit_hits_total",
		Help:      "Total number of times the daily Amber API limit was reached.",
	})
)

// Scheduler metrics.
var (
	SchedulerNextCycleTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "scheduler_next_cycle_timestamp_seconds",
		Help:      "Unix timestamp of the next scheduled evaluation cycle.",
	})
)
