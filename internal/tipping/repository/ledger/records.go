package ledger

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vistara-apps/tipbase-acd2-17568614/internal/tipping/model"
)

// tipRecord keeps the amount as its canonical decimal string so every driver
// returns exactly what was written.
type tipRecord struct {
	TipID           string          `gorm:"column:tip_id;primaryKey;size:36"`
	SenderAddress   string          `gorm:"column:sender_address;size:42;not null;index:idx_tips_sender"`
	ReceiverAddress string          `gorm:"column:receiver_address;size:42;not null;index:idx_tips_receiver_timestamp,priority:1"`
	Amount          decimal.Decimal `gorm:"column:amount;type:varchar(64);not null"`
	Currency        string          `gorm:"column:currency;size:16;not null"`
	Message         string          `gorm:"column:message;size:1024"`
	Timestamp       time.Time       `gorm:"column:timestamp;precision:6;not null;index:idx_tips_receiver_timestamp,priority:2"`
	TransactionHash string          `gorm:"column:transaction_hash;size:66;not null;uniqueIndex:ux_tips_transaction_hash"`
}

func (tipRecord) TableName() string {
	return "tips"
}

func (r tipRecord) toModel() model.Tip {
	return model.Tip{
		TipID:           r.TipID,
		SenderAddress:   r.SenderAddress,
		ReceiverAddress: r.ReceiverAddress,
		Amount:          r.Amount,
		Currency:        r.Currency,
		Message:         r.Message,
		Timestamp:       r.Timestamp.UTC(),
		TransactionHash: r.TransactionHash,
	}
}

type userRecord struct {
	UserID        string    `gorm:"column:user_id;primaryKey;size:36"`
	WalletAddress string    `gorm:"column:wallet_address;size:42;not null;uniqueIndex:ux_users_wallet_address"`
	CreatedAt     time.Time `gorm:"column:created_at;precision:6;not null"`
}

func (userRecord) TableName() string {
	return "users"
}

type profileRecord struct {
	CreatorID   string    `gorm:"column:creator_id;primaryKey;size:36"`
	UserID      string    `gorm:"column:user_id;size:36;not null;uniqueIndex:ux_creator_profiles_user_id"`
	DisplayName string    `gorm:"column:display_name;size:128;not null"`
	Bio         string    `gorm:"column:bio;size:1024"`
	VanityURL   string    `gorm:"column:vanity_url;size:128;not null;uniqueIndex:ux_creator_profiles_vanity_url"`
	CreatedAt   time.Time `gorm:"column:created_at;precision:6;not null"`
}

func (profileRecord) TableName() string {
	return "creator_profiles"
}

func (p profileRecord) toModel(user userRecord) model.CreatorProfile {
	return model.CreatorProfile{
		CreatorID:     p.CreatorID,
		UserID:        p.UserID,
		WalletAddress: user.WalletAddress,
		DisplayName:   p.DisplayName,
		Bio:           p.Bio,
		VanityURL:     p.VanityURL,
		CreatedAt:     p.CreatedAt.UTC(),
	}
}
