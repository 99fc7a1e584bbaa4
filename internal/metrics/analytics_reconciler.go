package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/vistara-apps/tipbase-acd2-17568614/internal/tipping/model"
)

var (
	analyticsReportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "analytics_reconciler",
		Name:      "reports_total",
		Help:      "Count of analytics reports by source.",
	}, []string{"source"})
	analyticsChainFallbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "analytics_reconciler",
		Name:      "chain_fallbacks_total",
		Help:      "Count of reports served from the ledger because the chain source failed.",
	})
	analyticsReportDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "analytics_reconciler",
		Name:      "report_duration_seconds",
		Help:      "Duration of analytics report assembly.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"source"})
)

// AnalyticsReconciler tracks metrics for analytics reports.
type AnalyticsReconciler struct{}

// NewAnalyticsReconciler creates an AnalyticsReconciler metrics collector.
func NewAnalyticsReconciler() *AnalyticsReconciler {
	return &AnalyticsReconciler{}
}

// ObserveReport records a served report. chainErr is the swallowed chain
// source failure, if any.
func (m AnalyticsReconciler) ObserveReport(source model.AnalyticsSource, chainErr error, started time.Time) {
	if chainErr != nil {
		analyticsChainFallbacksTotal.Inc()
	}

	analyticsReportsTotal.WithLabelValues(string(source)).Inc()
	analyticsReportDuration.WithLabelValues(string(source)).Observe(time.Since(started).Seconds())
}
