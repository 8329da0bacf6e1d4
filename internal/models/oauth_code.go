package models

import (
	"time"
)

// OAuthCode is a single-use authorization code issued by the authorize endpoint
type OAuthCode struct {
	Code                string `gorm:"primaryKey"`
	ClientID            string `gorm:"not null;index"`
	UserID              string `gorm:"not null"`
	Scopes              string
	RedirectURI         string
	CodeChallenge       string
	CodeChallengeMethod string
	ExpiresAt           time.Time `gorm:"not null"`
	CreatedAt           time.Time
}

func (OAuthCode) TableName() string {
	return "oauth_codes"
}

// Expired reports whether the code can no longer be exchanged
func (c OAuthCode) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// Lifetime is the validity window the code was issued with
func (c OAuthCode) Lifetime() time.Duration {
	return c.ExpiresAt.Sub(c.CreatedAt)
}
