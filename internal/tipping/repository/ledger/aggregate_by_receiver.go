package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vistara-apps/tipbase-acd2-17568614/internal/tipping/model"
	"gorm.io/gorm/clause"
)

// AggregateByReceiver summarizes the tips address received at or after since.
// A zero since covers the whole history.
func (r *Repository) AggregateByReceiver(ctx context.Context, address string, since time.Time) (agg model.LedgerAggregate, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("aggregate_by_receiver", err, start)
	}()

	query := r.db.WithContext(ctx).
		Model(&tipRecord{}).
		Select("sender_address", "amount", "timestamp").
		Where("receiver_address = ?", address)
	if !since.IsZero() {
		query = query.Where(clause.Gte{Column: clause.Column{Name: "timestamp"}, Value: since.UTC()})
	}

	var recs []tipRecord
	if err = query.Find(&recs).Error; err != nil {
		return model.LedgerAggregate{}, fmt.Errorf("aggregate tips by receiver: %w", err)
	}

	return aggregate(recs), nil
}

func aggregate(recs []tipRecord) model.LedgerAggregate {
	agg := model.LedgerAggregate{TotalAmount: decimal.Zero}
	senders := make(map[string]struct{}, len(recs))

	for _, rec := range recs {
		agg.Count++
		agg.TotalAmount = agg.TotalAmount.Add(rec.Amount)
		senders[rec.SenderAddress] = struct{}{}

		ts := rec.Timestamp.UTC()
		if agg.Earliest == nil || ts.Before(*agg.Earliest) {
			earliest := ts
			agg.Earliest = &earliest
		}
		if agg.Latest == nil || ts.After(*agg.Latest) {
			latest := ts
			agg.Latest = &latest
		}
	}
	agg.UniqueSenders = uint64(len(senders))

	return agg
}
