package clickhouse

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vistara-apps/tipbase-acd2-17568614/internal/tipping/model"
)

// AggregateTransfers summarizes successful token transfers to address since the
// given time.
func (r *Repository) AggregateTransfers(ctx context.Context, address string, token model.Token, since time.Time) (model.TransferStats, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("aggregate_transfers", err, start)
	}()

	const query = `SELECT
    count() AS transfers,
    uniqExact(from_address) AS senders,
    sum(amount) AS total,
    uniqExact(toDate(block_time)) AS days
FROM erc20_transfers FINAL
WHERE network = ? AND token_address = ? AND to_address = ? AND block_time >= ? AND tx_success`

	rows, err := r.conn.Query(ctx, query, r.network, strings.ToLower(token.Address), strings.ToLower(address), since.UTC())
	if err != nil {
		err = fmt.Errorf("query transfer aggregate: %w: %w", model.ErrUpstreamUnavailable, err)
		return model.TransferStats{}, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	stats := model.TransferStats{Currency: token.Symbol}
	if !rows.Next() {
		if err = rows.Err(); err != nil {
			err = fmt.Errorf("iterate transfer aggregate: %w: %w", model.ErrUpstreamUnavailable, err)
			return model.TransferStats{}, err
		}
		return stats, nil
	}

	if err = rows.Scan(&stats.Count, &stats.UniqueSenders, &stats.TotalAmount, &stats.ActiveDays); err != nil {
		err = fmt.Errorf("scan transfer aggregate: %w: %w", model.ErrMalformedResponse, err)
		return model.TransferStats{}, err
	}

	return stats, nil
}
