package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventPublisherFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "event_publisher",
		Name:      "flushes_total",
		Help:      "Count of event batch flushes.",
	}, []string{"status"})
	eventPublisherEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "event_publisher",
		Name:      "events_total",
		Help:      "Count of events handled by the publisher.",
	}, []string{"status"})
	eventPublisherFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "event_publisher",
		Name:      "flush_duration_seconds",
		Help:      "Duration of event batch flushes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
)

// EventPublisher tracks metrics for the tip event publisher.
type EventPublisher struct{}

// NewEventPublisher creates an EventPublisher metrics collector.
func NewEventPublisher() *EventPublisher {
	return &EventPublisher{}
}

// ObserveFlush records a batch flush of the given size.
func (m EventPublisher) ObserveFlush(err error, events int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	eventPublisherFlushTotal.WithLabelValues(status).Inc()
	eventPublisherEventsTotal.WithLabelValues(status).Add(float64(events))
	eventPublisherFlushDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

// ObserveDropped records an event dropped because the queue was full.
func (m EventPublisher) ObserveDropped() {
	eventPublisherEventsTotal.WithLabelValues("dropped").Inc()
}
