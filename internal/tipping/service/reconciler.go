package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vistara-apps/tipbase-acd2-17568614/internal/tipping/model"
	"github.com/vistara-apps/tipbase-acd2-17568614/pkg/safe"
	"github.com/vistara-apps/tipbase-acd2-17568614/pkg/workerpool"
	"go.uber.org/zap"
)

type analyticsSource int

const (
	ledgerSource analyticsSource = iota
	chainSource
)

// AnalyticsReconciler builds creator earnings reports from the ledger and,
// when configured, on-chain transfer statistics.
type AnalyticsReconciler struct {
	ledger   TipLedger
	stats    TransferStatsSource
	token    model.Token
	metrics  ReconcilerMetrics
	logger   *zap.Logger
	timeouts Timeouts
	now      func() time.Time
}

// NewAnalyticsReconciler wires a reconciler. stats is optional; without it
// every report comes from the ledger alone.
func NewAnalyticsReconciler(
	ledger TipLedger,
	stats TransferStatsSource,
	token model.Token,
	metrics ReconcilerMetrics,
	logger *zap.Logger,
	timeouts Timeouts,
) (*AnalyticsReconciler, error) {
	if ledger == nil {
		return nil, errors.New("tip ledger is required")
	}
	if metrics == nil {
		return nil, errors.New("reconciler metrics is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	return &AnalyticsReconciler{
		ledger:   ledger,
		stats:    stats,
		token:    token,
		metrics:  metrics,
		logger:   logger.Named("analytics_reconciler"),
		timeouts: timeouts.withDefaults(),
		now:      time.Now,
	}, nil
}

// Analytics reports what address received over the last days days. The
// ledger is authoritative; chain failures only drop the chain figures.
func (a *AnalyticsReconciler) Analytics(ctx context.Context, address string, days int) (model.AnalyticsReport, error) {
	started := time.Now()
	if days <= 0 {
		days = model.DefaultAnalyticsDays
	}
	since := a.now().UTC().Add(-time.Duration(days) * 24 * time.Hour)

	var (
		agg      model.LedgerAggregate
		stats    *model.TransferStats
		chainErr error
	)

	sources := []analyticsSource{ledgerSource}
	if a.stats != nil {
		sources = append(sources, chainSource)
	}

	err := workerpool.Process(ctx, len(sources), sources, func(ctx context.Context, src analyticsSource) error {
		if src == chainSource {
			stats, chainErr = a.chainStats(ctx, address, since)
			return nil
		}
		var ledgerErr error
		agg, ledgerErr = a.ledgerAggregate(ctx, address, since)
		return ledgerErr
	}, nil)
	if err != nil {
		if !errors.Is(err, model.ErrStorageFailure) {
			err = fmt.Errorf("%w: %w", model.ErrStorageFailure, err)
		}
		a.logger.Error("analytics not built", zap.String("address", address), zap.Error(err))
		return model.AnalyticsReport{}, err
	}

	report := reportFromLedger(agg, days)
	if stats != nil {
		report = mergeChainStats(report, *stats)
	}

	a.metrics.ObserveReport(report.Source, chainErr, started)
	return report, nil
}

func (a *AnalyticsReconciler) ledgerAggregate(ctx context.Context, address string, since time.Time) (model.LedgerAggregate, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeouts.Ledger)
	defer cancel()

	agg, err := a.ledger.AggregateByReceiver(ctx, address, since)
	if err != nil {
		return model.LedgerAggregate{}, fmt.Errorf("%w: aggregate tips for %s: %w", model.ErrStorageFailure, address, err)
	}
	return agg, nil
}

// chainStats returns nil stats when the chain has nothing to add. The error
// is only reported, never returned to the caller of Analytics.
func (a *AnalyticsReconciler) chainStats(ctx context.Context, address string, since time.Time) (*model.TransferStats, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeouts.Chain)
	defer cancel()

	stats, err := a.stats.AggregateTransfers(ctx, address, a.token, since)
	if err != nil {
		a.logger.Warn("chain stats unavailable, serving ledger figures",
			zap.String("address", address),
			zap.Error(err),
		)
		return nil, err
	}
	if stats.Count == 0 {
		return nil, nil
	}
	return &stats, nil
}

func reportFromLedger(agg model.LedgerAggregate, days int) model.AnalyticsReport {
	report := model.AnalyticsReport{
		TotalTips:     agg.Count,
		TotalAmount:   agg.TotalAmount,
		UniqueTippers: agg.UniqueSenders,
		AveragePerTip: decimal.Zero,
		AveragePerDay: decimal.Zero,
		EarliestTip:   agg.Earliest,
		LatestTip:     agg.Latest,
		Period:        fmt.Sprintf("%d days", days),
		Source:        model.SourceDatabase,
	}
	if agg.Count > 0 {
		report.AveragePerTip = agg.TotalAmount.Div(decimal.NewFromUint64(agg.Count))
	}
	if agg.Earliest != nil && agg.Latest != nil {
		report.DaysActive = activeDays(*agg.Earliest, *agg.Latest)
	}
	if report.DaysActive > 0 {
		report.AveragePerDay = agg.TotalAmount.Div(decimal.NewFromUint64(report.DaysActive))
	}
	return report
}

// activeDays counts the calendar span between the first and last tip,
// inclusive of both ends.
func activeDays(earliest, latest time.Time) uint64 {
	spanDays := math.Ceil(latest.Sub(earliest).Hours() / 24)
	days, err := safe.Uint64(int64(spanDays))
	if err != nil {
		return 1
	}
	return days + 1
}

// mergeChainStats overrides the ledger totals with the chain figures.
func mergeChainStats(report model.AnalyticsReport, stats model.TransferStats) model.AnalyticsReport {
	report.TotalTips = stats.Count
	report.TotalAmount = stats.TotalAmount
	report.UniqueTippers = stats.UniqueSenders
	report.AveragePerTip = stats.TotalAmount.Div(decimal.NewFromUint64(stats.Count))
	if stats.ActiveDays > 0 {
		report.DaysActive = stats.ActiveDays
		report.AveragePerDay = stats.TotalAmount.Div(decimal.NewFromUint64(stats.ActiveDays))
	}
	report.Source = model.SourceHybrid
	return report
}
