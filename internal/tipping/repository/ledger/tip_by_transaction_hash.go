package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vistara-apps/tipbase-acd2-17568614/internal/tipping/model"
	"gorm.io/gorm"
)

// TipByTransactionHash loads the tip recorded for a transaction.
func (r *Repository) TipByTransactionHash(ctx context.Context, hash string) (tip model.Tip, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("tip_by_transaction_hash", err, start)
	}()

	var rec tipRecord
	err = r.db.WithContext(ctx).Where("transaction_hash = ?", hash).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Tip{}, fmt.Errorf("tip for %s: %w", hash, model.ErrTipNotFound)
	}
	if err != nil {
		return model.Tip{}, fmt.Errorf("query tip by transaction hash: %w", err)
	}
	return rec.toModel(), nil
}
