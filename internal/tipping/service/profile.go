package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vistara-apps/tipbase-acd2-17568614/internal/tipping/model"
	"go.uber.org/zap"
)

// ProfileResolver creates creator profiles and resolves them by vanity URL or
// wallet.
type ProfileResolver struct {
	store    ProfileStore
	logger   *zap.Logger
	timeouts Timeouts
}

func NewProfileResolver(store ProfileStore, logger *zap.Logger, timeouts Timeouts) (*ProfileResolver, error) {
	if store == nil {
		return nil, errors.New("profile store is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	return &ProfileResolver{
		store:    store,
		logger:   logger.Named("profile_resolver"),
		timeouts: timeouts.withDefaults(),
	}, nil
}

// CreateProfile registers a creator page for a wallet. The vanity URL is
// derived from the display name.
func (p *ProfileResolver) CreateProfile(ctx context.Context, in model.ProfileInput) (model.CreatorProfile, error) {
	in.DisplayName = strings.TrimSpace(in.DisplayName)
	in.Bio = strings.TrimSpace(in.Bio)
	if strings.TrimSpace(in.WalletAddress) == "" {
		return model.CreatorProfile{}, fmt.Errorf("%w: walletAddress is required", model.ErrInvalidRequest)
	}
	if in.DisplayName == "" {
		return model.CreatorProfile{}, fmt.Errorf("%w: displayName is required", model.ErrInvalidRequest)
	}
	vanity := model.VanityURL(in.DisplayName)
	if vanity == "" {
		return model.CreatorProfile{}, fmt.Errorf("%w: displayName %q has no url-safe characters", model.ErrInvalidRequest, in.DisplayName)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeouts.Ledger)
	defer cancel()

	profile, err := p.store.CreateProfile(ctx, in, vanity)
	switch {
	case err == nil:
	case errors.Is(err, model.ErrVanityTaken), errors.Is(err, model.ErrProfileExists):
		return model.CreatorProfile{}, err
	default:
		return model.CreatorProfile{}, fmt.Errorf("%w: create profile: %w", model.ErrStorageFailure, err)
	}

	p.logger.Info("profile created",
		zap.String("creator_id", profile.CreatorID),
		zap.String("vanity_url", profile.VanityURL),
	)
	return profile, nil
}

// ByVanityURL resolves a public page slug.
func (p *ProfileResolver) ByVanityURL(ctx context.Context, vanityURL string) (model.CreatorProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeouts.Ledger)
	defer cancel()

	return resolved(p.store.ProfileByVanityURL(ctx, strings.ToLower(strings.TrimSpace(vanityURL))))
}

// ByWallet resolves the profile owned by a wallet.
func (p *ProfileResolver) ByWallet(ctx context.Context, walletAddress string) (model.CreatorProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeouts.Ledger)
	defer cancel()

	return resolved(p.store.ProfileByWallet(ctx, walletAddress))
}

func resolved(profile model.CreatorProfile, err error) (model.CreatorProfile, error) {
	switch {
	case err == nil:
		return profile, nil
	case errors.Is(err, model.ErrProfileNotFound):
		return model.CreatorProfile{}, err
	default:
		return model.CreatorProfile{}, fmt.Errorf("%w: resolve profile: %w", model.ErrStorageFailure, err)
	}
}
