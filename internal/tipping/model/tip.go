// Package model defines domain models shared by tip recording and analytics.
package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MaxMessageLength bounds the optional note attached to a tip.
const MaxMessageLength = 280

// MaxAmountScale is the most fractional digits an amount may carry, the
// precision of an 18-decimal ERC-20 token.
const MaxAmountScale = 18

// MaxAmount is the exclusive upper bound on a tip amount.
var MaxAmount = decimal.New(1, 36)

// Tip is a recorded on-chain payment from a supporter to a creator.
type Tip struct {
	TipID           string          `json:"tipId"`
	SenderAddress   string          `json:"senderAddress"`
	ReceiverAddress string          `json:"receiverAddress"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	Message         string          `json:"message,omitempty"`
	Timestamp       time.Time       `json:"timestamp"`
	TransactionHash string          `json:"transactionHash"`
}

// TipInput is a tip that has not been persisted yet. TipID and Timestamp are
// assigned by the ledger.
type TipInput struct {
	SenderAddress   string
	ReceiverAddress string
	Amount          decimal.Decimal
	Currency        string
	Message         string
	TransactionHash string
}

// Validate reports the first missing or malformed field.
func (in TipInput) Validate() error {
	switch {
	case strings.TrimSpace(in.SenderAddress) == "":
		return errors.New("senderAddress is required")
	case strings.TrimSpace(in.ReceiverAddress) == "":
		return errors.New("receiverAddress is required")
	case strings.TrimSpace(in.Currency) == "":
		return errors.New("currency is required")
	case strings.TrimSpace(in.TransactionHash) == "":
		return errors.New("transactionHash is required")
	case !in.Amount.IsPositive():
		return errors.New("amount must be positive")
	case !in.Amount.Equal(in.Amount.Truncate(MaxAmountScale)):
		return fmt.Errorf("amount has more than %d decimal places", MaxAmountScale)
	case in.Amount.GreaterThanOrEqual(MaxAmount):
		return errors.New("amount is too large")
	case len([]rune(in.Message)) > MaxMessageLength:
		return errors.New("message is too long")
	}
	return nil
}

// Matches reports whether the tip records the same transfer as in. The
// message is not part of the transfer and is ignored.
func (t Tip) Matches(in TipInput) bool {
	return strings.EqualFold(t.TransactionHash, in.TransactionHash) &&
		strings.EqualFold(t.SenderAddress, in.SenderAddress) &&
		strings.EqualFold(t.ReceiverAddress, in.ReceiverAddress) &&
		strings.EqualFold(t.Currency, in.Currency) &&
		t.Amount.Equal(in.Amount)
}

// VerificationOutcome describes what happened to the chain check of a tip.
type VerificationOutcome string

const (
	VerificationVerified VerificationOutcome = "verified"
	VerificationSkipped  VerificationOutcome = "skipped"
	VerificationDisabled VerificationOutcome = "disabled"
	VerificationFailed   VerificationOutcome = "failed"
)

// RecordOutcome labels the result of a record attempt.
type RecordOutcome string

const (
	RecordRecorded           RecordOutcome = "recorded"
	RecordDuplicate          RecordOutcome = "duplicate"
	RecordConflict           RecordOutcome = "conflict"
	RecordInvalid            RecordOutcome = "invalid"
	RecordVerificationFailed RecordOutcome = "verification_failed"
	RecordStorageFailure     RecordOutcome = "storage_failure"
)

// RecordResult is returned by a successful record attempt. Duplicate is set
// when the transaction was already recorded with identical details.
type RecordResult struct {
	Tip          Tip
	Duplicate    bool
	Verification VerificationOutcome
}
