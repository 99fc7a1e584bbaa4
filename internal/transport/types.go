package transport

import (
	"context"
	"time"

	"github.com/vistara-apps/tipbase-acd2-17568614/internal/tipping/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	TipRecorder interface {
		Record(ctx context.Context, in model.TipInput) (model.RecordResult, error)
	}
	TipHistory interface {
		ListTips(ctx context.Context, address string) ([]model.Tip, error)
	}
	AnalyticsReconciler interface {
		Analytics(ctx context.Context, address string, days int) (model.AnalyticsReport, error)
	}
	ProfileResolver interface {
		CreateProfile(ctx context.Context, in model.ProfileInput) (model.CreatorProfile, error)
		ByVanityURL(ctx context.Context, vanityURL string) (model.CreatorProfile, error)
		ByWallet(ctx context.Context, walletAddress string) (model.CreatorProfile, error)
	}
	HealthChecker interface {
		Ping(ctx context.Context) error
	}

	HTTPMetrics interface {
		ObserveRequest(method, route string, code int, started time.Time)
	}
)
