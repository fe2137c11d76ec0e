package repo

import (
	"context"

	"github.com/fweber/authgate/internal/domain/auth/model"
	"github.com/google/uuid"
)

// UserRepo is the credential store. CreateUser must enforce username and
// email uniqueness atomically (a unique constraint, not check-then-insert).
type UserRepo interface {
	CreateUser(ctx context.Context, u model.User) (uuid.UUID, error)

	GetUserByUsername(ctx context.Context, username string) (model.User, error)

	GetUserByEmail(ctx context.Context, email string) (model.User, error)

	GetUserByID(ctx context.Context, id uuid.UUID) (model.User, error)
}
