package events

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Writer interface {
		WriteMessages(ctx context.Context, msgs ...kafka.Message) error
		Close() error
	}
	Metrics interface {
		ObserveFlush(err error, events int, started time.Time)
		ObserveDropped()
	}
)
