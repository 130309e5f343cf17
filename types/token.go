package types

import (
	"time"

	"github.com/google/uuid"
)

// Table Model (refresh_tokens)
type RefreshToken struct {
	ID            int64     `db:"id" json:"id"`
	UserID        uuid.UUID `db:"user_id" json:"userId"`
	UserEmail     string    `db:"user_email" json:"userEmail"`
	Token         string    `db:"token" json:"-"`
	IPAddress     string    `db:"ip_address" json:"ipAddress"`
	UserAgent     string    `db:"user_agent" json:"userAgent"`
	IsRevoked     bool      `db:"is_revoked" json:"isRevoked"`
	RevokedReason string    `db:"revoked_reason" json:"revokedReason"`
	ExpiresAt     time.Time `db:"expires_at" json:"expiresAt"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	LastUsedAt    time.Time `db:"last_used_at" json:"lastUsedAt"`
}

// TokenClaims - payload carried inside the access token
type TokenClaims struct {
	UserID   uuid.UUID `json:"userId"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Language Language  `json:"language"`
}

// TokenCreateRequest - refresh token creation request
type TokenCreateRequest struct {
	UserID    uuid.UUID
	UserEmail string
	Token     string
	IPAddress string
	UserAgent string
	ExpiresAt time.Time
}

// RefreshRequest - access token renewal request
type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}
