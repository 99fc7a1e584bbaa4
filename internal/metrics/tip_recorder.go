package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/vistara-apps/tipbase-acd2-17568614/internal/tipping/model"
)

var (
	tipRecorderRecordsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "tip_recorder",
		Name:      "records_total",
		Help:      "Count of tip record attempts by outcome.",
	}, []string{"outcome", "verification"})
	tipRecorderRecordDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "tip_recorder",
		Name:      "record_duration_seconds",
		Help:      "Duration of tip record attempts.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"outcome"})
)

// TipRecorder tracks metrics for tip recording.
type TipRecorder struct{}

// NewTipRecorder creates a TipRecorder metrics collector.
func NewTipRecorder() *TipRecorder {
	return &TipRecorder{}
}

// ObserveRecord records the outcome of one record attempt.
func (m TipRecorder) ObserveRecord(outcome model.RecordOutcome, verification model.VerificationOutcome, started time.Time) {
	if verification == "" {
		verification = "none"
	}

	tipRecorderRecordsTotal.WithLabelValues(string(outcome), string(verification)).Inc()
	tipRecorderRecordDuration.WithLabelValues(string(outcome)).Observe(time.Since(started).Seconds())
}
