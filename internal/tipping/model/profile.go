package model

import (
	"strings"
	"time"
	"unicode"
)

// User is a wallet known to the platform.
type User struct {
	UserID        string    `json:"userId"`
	WalletAddress string    `json:"walletAddress"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CreatorProfile is the public page of a creator.
type CreatorProfile struct {
	CreatorID     string    `json:"creatorId"`
	UserID        string    `json:"userId"`
	WalletAddress string    `json:"walletAddress"`
	DisplayName   string    `json:"displayName"`
	Bio           string    `json:"bio,omitempty"`
	VanityURL     string    `json:"vanityUrl"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ProfileInput is a request to create a creator profile.
type ProfileInput struct {
	WalletAddress string
	DisplayName   string
	Bio           string
}

// VanityURL derives the public slug of a display name: lowercase, whitespace
// runs become a single dash, anything outside [a-z0-9-] is dropped.
func VanityURL(displayName string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(displayName)) {
		switch {
		case unicode.IsSpace(r):
			pendingDash = true
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
		}
	}
	return b.String()
}
