package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "ledger"

// HTTPRequestsTotal counts handled HTTP requests.
// Labels:
//   - method: the HTTP method
//   - path: the matched route template (not the raw URL)
//   - status: the response status code
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests handled, by method, route and status.",
	},
	[]string{"method", "path", "status"},
)

// HTTPRequestDuration measures request latency per route.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency from routing to response write.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "path"},
)

// DepositsApprovedTotal counts deposit approvals that credited a balance.
var DepositsApprovedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "deposits_approved_total",
		Help:      "Total number of deposits approved and credited.",
	},
)

// WithdrawalsTotal counts withdrawal attempts.
// Label:
//   - result: "ok", "ineligible", "insufficient_funds" or "error"
var WithdrawalsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "withdrawals_total",
		Help:      "Total number of withdrawal attempts, by result.",
	},
	[]string{"result"},
)

// Metrics records request counts and latencies for every matched route.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		HTTPRequestsTotal.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status()),
		).Inc()
		HTTPRequestDuration.WithLabelValues(
			c.Request.Method, path,
		).Observe(time.Since(start).Seconds())
	}
}

// MetricsHandler serves the Prometheus scrape endpoint.
func MetricsHandler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
