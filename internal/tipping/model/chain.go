package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Token identifies the ERC-20 token tips are paid in.
type Token struct {
	Address  string
	Symbol   string
	Decimals int32
}

// USDCOnBase is the default tipping token.
var USDCOnBase = Token{
	Address:  "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913",
	Symbol:   "USDC",
	Decimals: 6,
}

// TransactionVerification is what a chain indexer knows about a transaction.
type TransactionVerification struct {
	Hash      string
	From      string
	To        string
	Value     decimal.Decimal
	Success   bool
	Timestamp time.Time
}

// TransferStats aggregates token transfers received by an address.
type TransferStats struct {
	Count         uint64
	UniqueSenders uint64
	TotalAmount   decimal.Decimal
	ActiveDays    uint64
	Currency      string
}
