package models

import (
	"time"
)

// OAuthToken records an issued access token. UserID is nil when no user owns the grant.
type OAuthToken struct {
	ID           uint    `gorm:"primaryKey"`
	ClientID     string  `gorm:"not null;index"`
	UserID       *string `gorm:"index"`
	AccessToken  string  `gorm:"uniqueIndex;not null"`
	RefreshToken *string `gorm:"index"`
	Scopes       string
	ExpiresAt    time.Time `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (OAuthToken) TableName() string {
	return "oauth_tokens"
}

func (t OAuthToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

func (t OAuthToken) Lifetime() time.Duration {
	return t.ExpiresAt.Sub(t.CreatedAt)
}
