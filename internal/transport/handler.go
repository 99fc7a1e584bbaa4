// Package transport exposes the tipping HTTP API.
package transport

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vistara-apps/tipbase-acd2-17568614/internal/tipping/model"
	"go.uber.org/zap"
)

// Handler serves the tipping API.
type Handler struct {
	recorder  TipRecorder
	history   TipHistory
	analytics AnalyticsReconciler
	profiles  ProfileResolver
	health    HealthChecker
	logger    *zap.Logger
}

func NewHandler(
	recorder TipRecorder,
	history TipHistory,
	analytics AnalyticsReconciler,
	profiles ProfileResolver,
	health HealthChecker,
	logger *zap.Logger,
) (*Handler, error) {
	switch {
	case recorder == nil:
		return nil, errors.New("tip recorder is required")
	case history == nil:
		return nil, errors.New("tip history is required")
	case analytics == nil:
		return nil, errors.New("analytics reconciler is required")
	case profiles == nil:
		return nil, errors.New("profile resolver is required")
	case health == nil:
		return nil, errors.New("health checker is required")
	case logger == nil:
		return nil, errors.New("logger is required")
	}
	return &Handler{
		recorder:  recorder,
		history:   history,
		analytics: analytics,
		profiles:  profiles,
		health:    health,
		logger:    logger.Named("http"),
	}, nil
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidRequest),
		errors.Is(err, model.ErrValidation),
		errors.Is(err, model.ErrTransactionVerificationFailed):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrTransactionConflict),
		errors.Is(err, model.ErrVanityTaken),
		errors.Is(err, model.ErrProfileExists):
		return http.StatusConflict
	case errors.Is(err, model.ErrProfileNotFound), errors.Is(err, model.ErrTipNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err. Server-side failures are logged and not echoed.
func (h *Handler) writeError(c *gin.Context, err error, extra gin.H) {
	status := statusFor(err)
	body := gin.H{"error": err.Error()}
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		body["error"] = http.StatusText(status)
		for k, v := range extra {
			body[k] = v
		}
	}
	c.JSON(status, body)
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
