package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vistara-apps/tipbase-acd2-17568614/internal/tipping/model"
)

// TipHistory lists the tips a creator received.
type TipHistory struct {
	ledger  TipLedger
	timeout Timeouts
}

func NewTipHistory(ledger TipLedger, timeouts Timeouts) (*TipHistory, error) {
	if ledger == nil {
		return nil, errors.New("tip ledger is required")
	}
	return &TipHistory{ledger: ledger, timeout: timeouts.withDefaults()}, nil
}

// ListTips returns the tips received by address, newest first.
func (h *TipHistory) ListTips(ctx context.Context, address string) ([]model.Tip, error) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout.Ledger)
	defer cancel()

	tips, err := h.ledger.ListTipsByReceiver(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("%w: list tips for %s: %w", model.ErrStorageFailure, address, err)
	}
	return tips, nil
}
