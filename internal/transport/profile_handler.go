package transport

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vistara-apps/tipbase-acd2-17568614/internal/tipping/chain"
	"github.com/vistara-apps/tipbase-acd2-17568614/internal/tipping/model"
)

type profileRequest struct {
	WalletAddress string `json:"walletAddress" binding:"required"`
	DisplayName   string `json:"displayName" binding:"required"`
	Bio           string `json:"bio"`
}

// CreateProfile handles POST /profile.
func (h *Handler) CreateProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	wallet, ok := chain.NormalizeAddress(req.WalletAddress)
	if !ok {
		badRequest(c, "walletAddress is not an address")
		return
	}

	profile, err := h.profiles.CreateProfile(c.Request.Context(), model.ProfileInput{
		WalletAddress: wallet,
		DisplayName:   req.DisplayName,
		Bio:           req.Bio,
	})
	if err != nil {
		h.writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// GetProfile handles GET /profile?vanityUrl= and GET /profile?address=.
func (h *Handler) GetProfile(c *gin.Context) {
	var (
		profile model.CreatorProfile
		err     error
	)
	switch vanity, address := strings.TrimSpace(c.Query("vanityUrl")), strings.TrimSpace(c.Query("address")); {
	case vanity != "":
		profile, err = h.profiles.ByVanityURL(c.Request.Context(), vanity)
	case address != "":
		wallet, ok := chain.NormalizeAddress(address)
		if !ok {
			badRequest(c, "address is not an address")
			return
		}
		profile, err = h.profiles.ByWallet(c.Request.Context(), wallet)
	default:
		badRequest(c, "vanityUrl or address parameter is required")
		return
	}
	if err != nil {
		h.writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, profile)
}
