package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vistara-apps/tipbase-acd2-17568614/internal/tipping/model"
	"gorm.io/gorm"
)

// InsertTip persists a new tip, assigning its id and timestamp. A second tip
// with the same transaction hash is rejected by the unique index with
// model.ErrDuplicateTransaction. The returned tip is read back from the store.
func (r *Repository) InsertTip(ctx context.Context, in model.TipInput) (tip model.Tip, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_tip", err, start)
	}()

	if err = in.Validate(); err != nil {
		return model.Tip{}, fmt.Errorf("%w: %w", model.ErrValidation, err)
	}

	rec := tipRecord{
		TipID:           uuid.NewString(),
		SenderAddress:   in.SenderAddress,
		ReceiverAddress: in.ReceiverAddress,
		Amount:          in.Amount,
		Currency:        in.Currency,
		Message:         in.Message,
		Timestamp:       r.now().UTC().Truncate(time.Microsecond),
		TransactionHash: in.TransactionHash,
	}

	if err = r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return model.Tip{}, fmt.Errorf("insert tip %s: %w", in.TransactionHash, model.ErrDuplicateTransaction)
		}
		return model.Tip{}, fmt.Errorf("insert tip: %w", err)
	}

	var stored tipRecord
	if err = r.db.WithContext(ctx).Where("tip_id = ?", rec.TipID).Take(&stored).Error; err != nil {
		return model.Tip{}, fmt.Errorf("reload tip %s: %w", rec.TipID, err)
	}
	return stored.toModel(), nil
}
