package bitquery

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vistara-apps/tipbase-acd2-17568614/internal/tipping/model"
)

const timestampLayout = "2006-01-02 15:04:05"

const verifyTransactionQuery = `query ($network: EthereumNetwork!, $hash: String!) {
  ethereum(network: $network) {
    transactions(txHash: {is: $hash}) {
      hash
      from { address }
      to { address }
      value
      success
      timestamp { time(format: "%Y-%m-%d %H:%M:%S") }
    }
  }
}`

type address struct {
	Address string `json:"address"`
}

type verifyTransactionData struct {
	Ethereum *struct {
		Transactions []struct {
			Hash      string          `json:"hash"`
			From      address         `json:"from"`
			To        address         `json:"to"`
			Value     decimal.Decimal `json:"value"`
			Success   bool            `json:"success"`
			Timestamp struct {
				Time string `json:"time"`
			} `json:"timestamp"`
		} `json:"transactions"`
	} `json:"ethereum"`
}

// VerifyTransaction reports whether the indexer has seen txHash and whether it
// succeeded. A transaction the indexer does not know yields
// model.ErrTransactionNotFound.
func (c *Client) VerifyTransaction(ctx context.Context, txHash string) (_ *model.TransactionVerification, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("verify_transaction", err, started)
	}()

	var data verifyTransactionData
	err = c.query(ctx, verifyTransactionQuery, map[string]any{
		"network": c.network,
		"hash":    lower(txHash),
	}, &data)
	if err != nil {
		return nil, fmt.Errorf("verify transaction %s: %w", txHash, err)
	}

	if data.Ethereum == nil {
		return nil, fmt.Errorf("verify transaction %s: missing ethereum object: %w", txHash, model.ErrMalformedResponse)
	}
	if len(data.Ethereum.Transactions) == 0 {
		return nil, fmt.Errorf("verify transaction %s: %w", txHash, model.ErrTransactionNotFound)
	}

	tx := data.Ethereum.Transactions[0]
	v := &model.TransactionVerification{
		Hash:    tx.Hash,
		From:    tx.From.Address,
		To:      tx.To.Address,
		Value:   tx.Value,
		Success: tx.Success,
	}
	if raw := tx.Timestamp.Time; raw != "" {
		ts, parseErr := time.ParseInLocation(timestampLayout, raw, time.UTC)
		if parseErr != nil {
			return nil, fmt.Errorf("parse timestamp %q: %w: %w", raw, model.ErrMalformedResponse, parseErr)
		}
		v.Timestamp = ts
	}

	return v, nil
}
