package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vistara-apps/tipbase-acd2-17568614/internal/tipping/model"
	"gorm.io/gorm"
)

// CreateProfile creates the creator profile of a wallet under vanityURL,
// registering the wallet as a user first when it is new.
func (r *Repository) CreateProfile(ctx context.Context, in model.ProfileInput, vanityURL string) (profile model.CreatorProfile, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("create_profile", err, start)
	}()

	now := r.now().UTC()
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user := userRecord{}
		err := tx.Where(userRecord{WalletAddress: in.WalletAddress}).
			Attrs(userRecord{UserID: uuid.NewString(), CreatedAt: now}).
			FirstOrCreate(&user).Error
		if err != nil {
			return fmt.Errorf("upsert user: %w", err)
		}

		rec := profileRecord{
			CreatorID:   uuid.NewString(),
			UserID:      user.UserID,
			DisplayName: in.DisplayName,
			Bio:         in.Bio,
			VanityURL:   vanityURL,
			CreatedAt:   now,
		}
		if err := tx.Create(&rec).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return duplicateProfileError(tx, vanityURL)
			}
			return fmt.Errorf("insert profile: %w", err)
		}

		profile = rec.toModel(user)
		return nil
	})
	if err != nil {
		return model.CreatorProfile{}, err
	}
	return profile, nil
}

func duplicateProfileError(tx *gorm.DB, vanityURL string) error {
	var taken int64
	if err := tx.Model(&profileRecord{}).Where("vanity_url = ?", vanityURL).Count(&taken).Error; err != nil {
		return fmt.Errorf("check vanity url: %w", err)
	}
	if taken > 0 {
		return fmt.Errorf("vanity url %q: %w", vanityURL, model.ErrVanityTaken)
	}
	return model.ErrProfileExists
}

// ProfileByVanityURL resolves a public slug to a creator profile.
func (r *Repository) ProfileByVanityURL(ctx context.Context, vanityURL string) (profile model.CreatorProfile, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("profile_by_vanity_url", err, start)
	}()

	db := r.db.WithContext(ctx)

	var rec profileRecord
	if err = db.Where("vanity_url = ?", vanityURL).Take(&rec).Error; err != nil {
		return model.CreatorProfile{}, notFound("query profile by vanity url", err)
	}
	var user userRecord
	if err = db.Where("user_id = ?", rec.UserID).Take(&user).Error; err != nil {
		return model.CreatorProfile{}, notFound("query profile owner", err)
	}
	return rec.toModel(user), nil
}

// ProfileByWallet resolves a wallet address to its creator profile.
func (r *Repository) ProfileByWallet(ctx context.Context, walletAddress string) (profile model.CreatorProfile, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("profile_by_wallet", err, start)
	}()

	db := r.db.WithContext(ctx)

	var user userRecord
	if err = db.Where("wallet_address = ?", walletAddress).Take(&user).Error; err != nil {
		return model.CreatorProfile{}, notFound("query user by wallet", err)
	}
	var rec profileRecord
	if err = db.Where("user_id = ?", user.UserID).Take(&rec).Error; err != nil {
		return model.CreatorProfile{}, notFound("query profile by user", err)
	}
	return rec.toModel(user), nil
}

func notFound(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", op, model.ErrProfileNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}
