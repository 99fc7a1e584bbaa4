package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ledgerRepositoryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ledger_repository",
		Name:      "operations_total",
		Help:      "Count of ledger repository operations.",
	}, []string{"operation", "status"})
	ledgerRepositoryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "ledger_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of ledger repository operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"operation", "status"})
)

// LedgerRepository tracks metrics for ledger repository operations.
type LedgerRepository struct{}

// NewLedgerRepository creates a LedgerRepository metrics collector.
func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{}
}

// Observe records duration and status of a repository operation.
func (m LedgerRepository) Observe(operation string, err error, started time.Time) {
	status := statusFromError(err)

	ledgerRepositoryRequestsTotal.WithLabelValues(operation, status).Inc()
	ledgerRepositoryRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
