package user

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user account in the domain. Local users are anchored to a
// single location via LocationID; superusers see every location.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	IsSuperuser  bool
	LocationID   *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RefreshToken is a stored, revocable refresh token.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    int64
	Token     string
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsExpired reports whether the token is past its expiry.
func (t *RefreshToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}
