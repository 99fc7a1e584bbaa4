package metrics

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum"
	"github.com/vistara-apps/tipbase-acd2-17568614/internal/tipping/model"
)

const namespace = "tipbase"

func statusFromError(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, model.ErrTransactionNotFound), errors.Is(err, model.ErrTipNotFound), errors.Is(err, model.ErrProfileNotFound), errors.Is(err, ethereum.NotFound):
		return "not_found"
	case errors.Is(err, model.ErrDuplicateTransaction), errors.Is(err, model.ErrVanityTaken), errors.Is(err, model.ErrProfileExists):
		return "duplicate"
	case errors.Is(err, model.ErrValidation):
		return "invalid"
	case errors.Is(err, model.ErrMalformedResponse):
		return "malformed"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, model.ErrUpstreamUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}
