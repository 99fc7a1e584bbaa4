package clickhouse

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vistara-apps/tipbase-acd2-17568614/internal/tipping/model"
)

// VerifyTransaction looks up the first indexed token transfer of a transaction.
func (r *Repository) VerifyTransaction(ctx context.Context, txHash string) (*model.TransactionVerification, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("verify_transaction", err, start)
	}()

	const query = `SELECT tx_hash, from_address, to_address, amount, tx_success, block_time
FROM erc20_transfers FINAL
WHERE network = ? AND tx_hash = ?
ORDER BY log_index ASC
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, r.network, strings.ToLower(txHash))
	if err != nil {
		err = fmt.Errorf("query transaction %s: %w: %w", txHash, model.ErrUpstreamUnavailable, err)
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			err = fmt.Errorf("iterate transaction rows: %w: %w", model.ErrUpstreamUnavailable, err)
			return nil, err
		}
		err = fmt.Errorf("transaction %s: %w", txHash, model.ErrTransactionNotFound)
		return nil, err
	}

	var (
		v         model.TransactionVerification
		amount    decimal.Decimal
		blockTime time.Time
	)
	if err = rows.Scan(&v.Hash, &v.From, &v.To, &amount, &v.Success, &blockTime); err != nil {
		err = fmt.Errorf("scan transaction: %w: %w", model.ErrMalformedResponse, err)
		return nil, err
	}
	v.Value = amount
	v.Timestamp = blockTime.UTC()

	return &v, nil
}
