package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	chainClientRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "chain_client",
		Name:      "operations_total",
		Help:      "Count of chain indexer operations.",
	}, []string{"operation", "provider", "status"})
	chainClientRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "chain_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of chain indexer operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "provider", "status"})
)

// ChainClient tracks metrics for calls to a chain-indexing provider.
type ChainClient struct {
	provider string
}

// NewChainClient constructs a metrics collector for one provider.
func NewChainClient(provider string) *ChainClient {
	if provider == "" {
		provider = "unknown"
	}
	return &ChainClient{provider: provider}
}

// Observe records a single provider call outcome and duration.
func (m ChainClient) Observe(operation string, err error, started time.Time) {
	status := statusFromError(err)

	chainClientRequestsTotal.WithLabelValues(operation, m.provider, status).Inc()
	chainClientRequestDuration.WithLabelValues(operation, m.provider, status).Observe(time.Since(started).Seconds())
}
