package model

import (
	"time"

	"github.com/google/uuid"
)

// User is the credential-store record. PasswordHash is opaque to every
// caller and must never be serialized into a response.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"uniqueIndex;not null"`
	Username     string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TokenPair is the result of a successful login: both tokens plus the
// TTLs the cookie layer needs for Max-Age.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	AccessTTL    time.Duration
	RefreshTTL   time.Duration
	UserId       uuid.UUID
}

// AccessToken is the result of a refresh: only the access half rotates.
type AccessToken struct {
	Token     string
	TTL       time.Duration
	ExpiresAt time.Time
	UserId    uuid.UUID
}
