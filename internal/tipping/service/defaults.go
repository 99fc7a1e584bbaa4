package service

import "time"

const (
	DefaultChainTimeout  = 5 * time.Second
	DefaultLedgerTimeout = 10 * time.Second
)

// Timeouts bound the calls a service makes to its collaborators. Zero values
// fall back to the defaults.
type Timeouts struct {
	Chain  time.Duration
	Ledger time.Duration
}

func (t Timeouts) withDefaults() Timeouts {
	if t.Chain <= 0 {
		t.Chain = DefaultChainTimeout
	}
	if t.Ledger <= 0 {
		t.Ledger = DefaultLedgerTimeout
	}
	return t
}
