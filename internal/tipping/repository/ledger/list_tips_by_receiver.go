package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/vistara-apps/tipbase-acd2-17568614/internal/tipping/model"
	"gorm.io/gorm/clause"
)

// ListTipsByReceiver returns every tip sent to address, newest first.
func (r *Repository) ListTipsByReceiver(ctx context.Context, address string) (tips []model.Tip, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("list_tips_by_receiver", err, start)
	}()

	var recs []tipRecord
	err = r.db.WithContext(ctx).
		Where("receiver_address = ?", address).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "timestamp"}, Desc: true}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "tip_id"}, Desc: true}).
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("list tips by receiver: %w", err)
	}

	tips = make([]model.Tip, 0, len(recs))
	for _, rec := range recs {
		tips = append(tips, rec.toModel())
	}
	return tips, nil
}
