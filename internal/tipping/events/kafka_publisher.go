// Package events publishes recorded tips to Kafka.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/vistara-apps/tipbase-acd2-17568614/internal/tipping/model"
	"github.com/vistara-apps/tipbase-acd2-17568614/pkg/batcher"
	"go.uber.org/zap"
)

const (
	DefaultFlushSize     = 100
	DefaultFlushInterval = time.Second
)

// Config tunes event batching. Zero values fall back to the defaults.
type Config struct {
	FlushSize     int
	FlushInterval time.Duration
	RPS           int
}

// KafkaPublisher queues tip events and writes them to Kafka in batches.
// Publishing never blocks the caller; events that do not fit the queue are
// dropped and counted.
type KafkaPublisher struct {
	writer  Writer
	batcher *batcher.Batcher[model.TipEvent]
	metrics Metrics
	logger  *zap.Logger
}

// NewKafkaWriter builds a writer that keys partitions by message key.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
	}
}

func NewKafkaPublisher(writer Writer, metrics Metrics, logger *zap.Logger, cfg Config) (*KafkaPublisher, error) {
	if writer == nil {
		return nil, errors.New("kafka writer is required")
	}
	if metrics == nil {
		return nil, errors.New("publisher metrics is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if cfg.FlushSize <= 0 {
		cfg.FlushSize = DefaultFlushSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = DefaultFlushInterval
	}

	p := &KafkaPublisher{
		writer:  writer,
		metrics: metrics,
		logger:  logger.Named("event_publisher"),
	}
	p.batcher = batcher.New(p.logger, p.flush, cfg.FlushSize, cfg.FlushInterval, cfg.RPS)
	return p, nil
}

// Start runs the flush loop until Close. Events still queued when ctx is
// cancelled are written with ctx, so callers pass a context that outlives
// request handling.
func (p *KafkaPublisher) Start(ctx context.Context) {
	p.batcher.Start(ctx)
}

// Publish queues event for delivery.
func (p *KafkaPublisher) Publish(event model.TipEvent) {
	if p.batcher.Offer(event) {
		return
	}
	p.metrics.ObserveDropped()
	p.logger.Warn("event queue full, event dropped",
		zap.String("type", event.Type),
		zap.String("tx_hash", event.Tip.TransactionHash),
	)
}

// Close flushes queued events and closes the writer.
func (p *KafkaPublisher) Close() error {
	p.batcher.Stop()
	return p.writer.Close()
}

func (p *KafkaPublisher) flush(ctx context.Context, events []model.TipEvent) (err error) {
	started := time.Now()
	defer func() {
		p.metrics.ObserveFlush(err, len(events), started)
	}()

	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		value, encErr := json.Marshal(e)
		if encErr != nil {
			return fmt.Errorf("encode event %s: %w", e.Tip.TransactionHash, encErr)
		}
		msgs = append(msgs, kafka.Message{
			Key:     []byte(e.Tip.TransactionHash),
			Value:   value,
			Headers: []kafka.Header{{Key: "type", Value: []byte(e.Type)}},
		})
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write %d events: %w", len(msgs), err)
	}
	return nil
}
