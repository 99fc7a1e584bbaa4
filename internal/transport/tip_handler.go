package transport

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/vistara-apps/tipbase-acd2-17568614/internal/tipping/chain"
	"github.com/vistara-apps/tipbase-acd2-17568614/internal/tipping/model"
)

const (
	headerVerification = "X-Tip-Verification"
	headerReplayed     = "Idempotent-Replayed"
)

type tipRequest struct {
	SenderAddress   string          `json:"senderAddress" binding:"required"`
	ReceiverAddress string          `json:"receiverAddress" binding:"required"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency" binding:"required"`
	Message         string          `json:"message"`
	TransactionHash string          `json:"transactionHash" binding:"required"`
}

func (r tipRequest) toInput() (model.TipInput, error) {
	sender, ok := chain.NormalizeAddress(r.SenderAddress)
	if !ok {
		return model.TipInput{}, fmt.Errorf("%w: senderAddress %q is not an address", model.ErrInvalidRequest, r.SenderAddress)
	}
	receiver, ok := chain.NormalizeAddress(r.ReceiverAddress)
	if !ok {
		return model.TipInput{}, fmt.Errorf("%w: receiverAddress %q is not an address", model.ErrInvalidRequest, r.ReceiverAddress)
	}
	hash, ok := chain.NormalizeTxHash(r.TransactionHash)
	if !ok {
		return model.TipInput{}, fmt.Errorf("%w: transactionHash %q is not a transaction hash", model.ErrInvalidRequest, r.TransactionHash)
	}
	return model.TipInput{
		SenderAddress:   sender,
		ReceiverAddress: receiver,
		Amount:          r.Amount,
		Currency:        strings.ToUpper(strings.TrimSpace(r.Currency)),
		Message:         strings.TrimSpace(r.Message),
		TransactionHash: hash,
	}, nil
}

// RecordTip handles POST /tips.
func (h *Handler) RecordTip(c *gin.Context) {
	var req tipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	in, err := req.toInput()
	if err != nil {
		h.writeError(c, err, nil)
		return
	}

	res, err := h.recorder.Record(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, err, gin.H{"outcome": "unknown"})
		return
	}

	c.Header(headerVerification, string(res.Verification))
	c.Header(headerReplayed, strconv.FormatBool(res.Duplicate))
	status := http.StatusCreated
	if res.Duplicate {
		status = http.StatusOK
	}
	c.JSON(status, res.Tip)
}

// ListTips handles GET /tips?address=.
func (h *Handler) ListTips(c *gin.Context) {
	address, ok := addressParam(c)
	if !ok {
		return
	}
	tips, err := h.history.ListTips(c.Request.Context(), address)
	if err != nil {
		h.writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, tips)
}

// Analytics handles GET /analytics?address=&days=.
func (h *Handler) Analytics(c *gin.Context) {
	address, ok := addressParam(c)
	if !ok {
		return
	}
	// Unparseable values fall through to the default window.
	days, _ := strconv.Atoi(c.Query("days"))

	report, err := h.analytics.Analytics(c.Request.Context(), address, days)
	if err != nil {
		h.writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, report)
}

func addressParam(c *gin.Context) (string, bool) {
	raw := c.Query("address")
	if strings.TrimSpace(raw) == "" {
		badRequest(c, "address parameter is required")
		return "", false
	}
	address, ok := chain.NormalizeAddress(raw)
	if !ok {
		badRequest(c, fmt.Sprintf("address %q is not an address", raw))
		return "", false
	}
	return address, true
}
