package ports

import (
	"context"

	"github.com/linkboard/linkboard-api/internal/core/domain"
)

// UserRepository defines credential persistence. Email uniqueness is
// enforced by the store; Create reports a collision as
// domain.ErrDuplicateEmail.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
