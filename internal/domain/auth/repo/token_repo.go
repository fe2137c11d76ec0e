package repo

import (
	"context"
	"time"
)

// TokenRepo is the revocation store: a denylist keyed by jti. Entries
// expire together with the token they revoke.
type TokenRepo interface {
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error

	IsRevoked(ctx context.Context, jti string) (bool, error)

	RevokeAccess(ctx context.Context, jti string, expiresAt time.Time) error

	IsAccessRevoked(ctx context.Context, jti string) (bool, error)
}
