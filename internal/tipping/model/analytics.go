package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultAnalyticsDays is used when the requested window is missing or invalid.
const DefaultAnalyticsDays = 30

// AnalyticsSource names where the figures of a report came from.
type AnalyticsSource string

const (
	SourceDatabase AnalyticsSource = "database"
	// SourceOnChain is part of the report contract but not produced: every
	// report starts from the ledger, so chain figures yield SourceHybrid.
	SourceOnChain AnalyticsSource = "onchain"
	SourceHybrid  AnalyticsSource = "hybrid"
)

// LedgerAggregate summarizes the tips a receiver got inside a window.
type LedgerAggregate struct {
	Count         uint64
	TotalAmount   decimal.Decimal
	UniqueSenders uint64
	Earliest      *time.Time
	Latest        *time.Time
}

// AnalyticsReport is the per-creator earnings summary.
type AnalyticsReport struct {
	TotalTips     uint64          `json:"totalTips"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	UniqueTippers uint64          `json:"uniqueTippers"`
	AveragePerTip decimal.Decimal `json:"averagePerTip"`
	DaysActive    uint64          `json:"daysActive"`
	AveragePerDay decimal.Decimal `json:"averagePerDay"`
	EarliestTip   *time.Time      `json:"earliestTip,omitempty"`
	LatestTip     *time.Time      `json:"latestTip,omitempty"`
	Period        string          `json:"period"`
	Source        AnalyticsSource `json:"source"`
}
