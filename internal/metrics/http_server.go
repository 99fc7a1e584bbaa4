package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http_server",
		Name:      "requests_total",
		Help:      "Count of HTTP requests.",
	}, []string{"method", "route", "code"})
	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http_server",
		Name:      "request_duration_seconds",
		Help:      "Duration of HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// HTTPServer tracks metrics for served HTTP requests.
type HTTPServer struct{}

// NewHTTPServer creates an HTTPServer metrics collector.
func NewHTTPServer() *HTTPServer {
	return &HTTPServer{}
}

// ObserveRequest records one served request. route is the matched route
// template, not the raw path.
func (m HTTPServer) ObserveRequest(method, route string, code int, started time.Time) {
	if route == "" {
		route = "unmatched"
	}

	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(time.Since(started).Seconds())
}
