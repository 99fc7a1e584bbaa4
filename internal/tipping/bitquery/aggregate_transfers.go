package bitquery

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vistara-apps/tipbase-acd2-17568614/internal/tipping/model"
)

const aggregateTransfersQuery = `query ($network: EthereumNetwork!, $token: String!, $receiver: String!, $since: ISO8601DateTime) {
  ethereum(network: $network) {
    transfers(currency: {is: $token}, receiver: {is: $receiver}, time: {since: $since}) {
      count
      senders: count(uniq: sender)
      amount
      currency { symbol }
      days: count(uniq: date)
    }
  }
}`

type aggregateTransfersData struct {
	Ethereum *struct {
		Transfers []struct {
			Count    uint64          `json:"count"`
			Senders  uint64          `json:"senders"`
			Amount   decimal.Decimal `json:"amount"`
			Days     uint64          `json:"days"`
			Currency struct {
				Symbol string `json:"symbol"`
			} `json:"currency"`
		} `json:"transfers"`
	} `json:"ethereum"`
}

// AggregateTransfers summarizes token transfers received by address since the
// given time. An address with no transfers yields zero stats.
func (c *Client) AggregateTransfers(ctx context.Context, address string, token model.Token, since time.Time) (_ model.TransferStats, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("aggregate_transfers", err, started)
	}()

	var data aggregateTransfersData
	err = c.query(ctx, aggregateTransfersQuery, map[string]any{
		"network":  c.network,
		"token":    lower(token.Address),
		"receiver": lower(address),
		"since":    since.UTC().Format(time.RFC3339),
	}, &data)
	if err != nil {
		return model.TransferStats{}, fmt.Errorf("aggregate transfers to %s: %w", address, err)
	}

	if data.Ethereum == nil {
		return model.TransferStats{}, fmt.Errorf("aggregate transfers to %s: missing ethereum object: %w", address, model.ErrMalformedResponse)
	}

	stats := model.TransferStats{TotalAmount: decimal.Zero, Currency: token.Symbol}
	if len(data.Ethereum.Transfers) == 0 {
		return stats, nil
	}

	row := data.Ethereum.Transfers[0]
	stats.Count = row.Count
	stats.UniqueSenders = row.Senders
	stats.TotalAmount = row.Amount
	stats.ActiveDays = row.Days
	if row.Currency.Symbol != "" {
		stats.Currency = row.Currency.Symbol
	}
	return stats, nil
}
