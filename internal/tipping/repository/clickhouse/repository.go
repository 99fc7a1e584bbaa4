// Package clickhouse reads a self-hosted ERC-20 transfer index. It answers the
// same questions as the hosted chain indexer: whether a transaction exists and
// succeeded, and what a receiver was paid over a window.
package clickhouse

import (
	"errors"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2"
)

type Repository struct {
	conn    Conn
	network string
	metrics Metrics
}

func NewRepository(dsn, network string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}
	if network == "" {
		return nil, errors.New("transfer index network is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{conn: conn, network: network, metrics: metrics}, nil
}

func (r *Repository) Close() error {
	return r.conn.Close()
}
