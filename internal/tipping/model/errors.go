package model

import "errors"

var (
	ErrInvalidRequest                = errors.New("invalid request")
	ErrValidation                    = errors.New("validation failed")
	ErrTransactionVerificationFailed = errors.New("transaction verification failed")
	ErrDuplicateTransaction          = errors.New("transaction already recorded")
	ErrTransactionConflict           = errors.New("transaction recorded with different details")
	ErrTipNotFound                   = errors.New("tip not found")
	ErrStorageFailure                = errors.New("storage failure")

	ErrUpstreamUnavailable = errors.New("chain indexer unavailable")
	ErrMalformedResponse   = errors.New("malformed chain indexer response")
	ErrTransactionNotFound = errors.New("transaction not found")

	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileExists   = errors.New("profile already exists for wallet")
	ErrVanityTaken     = errors.New("vanity url already taken")
)
