package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels shared by the auth counters.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeError   = "error"
)

var (
	// HTTPRequestsTotal counts handled requests by route template.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "news_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// AuthAttempts counts authentication attempts.
	// Labels:
	//   - method: "local", "google", "facebook", "twitter", "bearer", "refresh", "reset"
	//   - outcome: "success", "failure", "error"
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
		[]string{"method", "outcome"},
	)

	// PasswordHashDuration measures bcrypt work including the wait for a hash slot.
	PasswordHashDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "news_password_hash_duration_seconds",
			Help:    "Duration of password hashing operations",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
	)

	ArticleQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "news_article_query_duration_seconds",
			Help:    "Duration of article listing queries",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)

	DBUp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "news_database_up",
			Help: "1 when the last database health check succeeded",
		},
	)
)

// RecordHTTPRequest records one completed request.
func RecordHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func RecordAuthAttempt(method, outcome string) {
	AuthAttempts.WithLabelValues(method, outcome).Inc()
}

func SetDBUp(up bool) {
	if up {
		DBUp.Set(1)
		return
	}
	DBUp.Set(0)
}
