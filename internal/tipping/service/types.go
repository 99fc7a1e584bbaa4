package service

import (
	"context"
	"time"

	"github.com/vistara-apps/tipbase-acd2-17568614/internal/tipping/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	TipLedger interface {
		InsertTip(ctx context.Context, in model.TipInput) (model.Tip, error)
		TipByTransactionHash(ctx context.Context, hash string) (model.Tip, error)
		ListTipsByReceiver(ctx context.Context, address string) ([]model.Tip, error)
		AggregateByReceiver(ctx context.Context, address string, since time.Time) (model.LedgerAggregate, error)
	}
	ProfileStore interface {
		CreateProfile(ctx context.Context, in model.ProfileInput, vanityURL string) (model.CreatorProfile, error)
		ProfileByVanityURL(ctx context.Context, vanityURL string) (model.CreatorProfile, error)
		ProfileByWallet(ctx context.Context, walletAddress string) (model.CreatorProfile, error)
	}

	// TransactionVerifier reports what a chain indexer knows about a
	// transaction. Unknown transactions yield model.ErrTransactionNotFound.
	TransactionVerifier interface {
		VerifyTransaction(ctx context.Context, txHash string) (*model.TransactionVerification, error)
	}
	// TransferStatsSource aggregates token transfers received by an address.
	TransferStatsSource interface {
		AggregateTransfers(ctx context.Context, address string, token model.Token, since time.Time) (model.TransferStats, error)
	}

	TipEventPublisher interface {
		Publish(event model.TipEvent)
	}

	RecorderMetrics interface {
		ObserveRecord(outcome model.RecordOutcome, verification model.VerificationOutcome, started time.Time)
	}
	ReconcilerMetrics interface {
		ObserveReport(source model.AnalyticsSource, chainErr error, started time.Time)
	}
)
