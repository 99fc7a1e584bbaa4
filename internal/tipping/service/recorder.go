package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vistara-apps/tipbase-acd2-17568614/internal/tipping/model"
	"go.uber.org/zap"
)

// TipRecorder verifies and persists submitted tips.
type TipRecorder struct {
	ledger   TipLedger
	verifier TransactionVerifier
	events   TipEventPublisher
	metrics  RecorderMetrics
	logger   *zap.Logger
	timeouts Timeouts
}

// NewTipRecorder wires a recorder. verifier and events are optional: without a
// verifier tips are recorded unverified, without a publisher no events are
// emitted.
func NewTipRecorder(
	ledger TipLedger,
	verifier TransactionVerifier,
	events TipEventPublisher,
	metrics RecorderMetrics,
	logger *zap.Logger,
	timeouts Timeouts,
) (*TipRecorder, error) {
	if ledger == nil {
		return nil, errors.New("tip ledger is required")
	}
	if metrics == nil {
		return nil, errors.New("recorder metrics is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	return &TipRecorder{
		ledger:   ledger,
		verifier: verifier,
		events:   events,
		metrics:  metrics,
		logger:   logger.Named("tip_recorder"),
		timeouts: timeouts.withDefaults(),
	}, nil
}

// Record validates in, checks the transaction on chain when a verifier is
// configured and stores the tip. Replaying an already recorded transaction
// with the same details returns the stored tip with Duplicate set.
func (r *TipRecorder) Record(ctx context.Context, in model.TipInput) (model.RecordResult, error) {
	started := time.Now()
	outcome := model.RecordStorageFailure
	var verification model.VerificationOutcome
	defer func() {
		r.metrics.ObserveRecord(outcome, verification, started)
	}()

	if err := in.Validate(); err != nil {
		outcome = model.RecordInvalid
		return model.RecordResult{}, fmt.Errorf("%w: %w", model.ErrInvalidRequest, err)
	}

	logger := r.logger.With(zap.String("tx_hash", in.TransactionHash))

	verification, err := r.verify(ctx, logger, in.TransactionHash)
	if err != nil {
		outcome = model.RecordVerificationFailed
		return model.RecordResult{}, err
	}

	tip, duplicate, err := r.persist(ctx, in)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidRequest):
			outcome = model.RecordInvalid
		case errors.Is(err, model.ErrTransactionConflict):
			outcome = model.RecordConflict
			logger.Warn("transaction already recorded with different details", zap.Error(err))
		default:
			logger.Error("tip not stored", zap.Error(err))
		}
		return model.RecordResult{}, err
	}

	if duplicate {
		outcome = model.RecordDuplicate
		logger.Debug("tip replayed", zap.String("tip_id", tip.TipID))
	} else {
		outcome = model.RecordRecorded
		logger.Info("tip recorded",
			zap.String("tip_id", tip.TipID),
			zap.String("receiver", tip.ReceiverAddress),
			zap.String("amount", tip.Amount.String()),
			zap.String("verification", string(verification)),
		)
		r.publish(tip, verification)
	}

	return model.RecordResult{Tip: tip, Duplicate: duplicate, Verification: verification}, nil
}

func (r *TipRecorder) verify(ctx context.Context, logger *zap.Logger, txHash string) (model.VerificationOutcome, error) {
	if r.verifier == nil {
		return model.VerificationDisabled, nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeouts.Chain)
	defer cancel()

	v, verifyErr := r.verifier.VerifyTransaction(ctx, txHash)
	outcome, err := verificationPolicy(v, verifyErr)
	switch outcome {
	case model.VerificationFailed:
		logger.Info("transaction failed on chain, tip rejected")
	case model.VerificationSkipped:
		logger.Warn("transaction not verified, recording anyway", zap.Error(verifyErr))
	}
	return outcome, err
}

// verificationPolicy decides whether a chain lookup blocks recording. Only a
// transaction the indexer has seen fail is rejected. Lookup failures and
// indexing lag let the tip through unverified.
func verificationPolicy(v *model.TransactionVerification, err error) (model.VerificationOutcome, error) {
	switch {
	case err != nil, v == nil:
		return model.VerificationSkipped, nil
	case !v.Success:
		return model.VerificationFailed, fmt.Errorf("transaction %s reverted: %w", v.Hash, model.ErrTransactionVerificationFailed)
	default:
		return model.VerificationVerified, nil
	}
}

// persist inserts the tip. A duplicate hash resolves to the stored tip when
// the details match and to model.ErrTransactionConflict otherwise.
func (r *TipRecorder) persist(ctx context.Context, in model.TipInput) (model.Tip, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeouts.Ledger)
	defer cancel()

	tip, err := r.ledger.InsertTip(ctx, in)
	switch {
	case err == nil:
		return tip, false, nil
	case errors.Is(err, model.ErrValidation):
		return model.Tip{}, false, fmt.Errorf("%w: %w", model.ErrInvalidRequest, err)
	case !errors.Is(err, model.ErrDuplicateTransaction):
		return model.Tip{}, false, fmt.Errorf("%w: insert tip: %w", model.ErrStorageFailure, err)
	}

	existing, err := r.ledger.TipByTransactionHash(ctx, in.TransactionHash)
	if err != nil {
		return model.Tip{}, false, fmt.Errorf("%w: load recorded tip: %w", model.ErrStorageFailure, err)
	}
	if !existing.Matches(in) {
		return model.Tip{}, false, fmt.Errorf("transaction %s: %w", in.TransactionHash, model.ErrTransactionConflict)
	}
	return existing, true, nil
}

func (r *TipRecorder) publish(tip model.Tip, verification model.VerificationOutcome) {
	if r.events == nil {
		return
	}
	r.events.Publish(model.TipEvent{
		Type:         model.TipRecordedEvent,
		Tip:          tip,
		Verification: verification,
	})
}
