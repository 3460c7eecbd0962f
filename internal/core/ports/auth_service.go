package ports

import (
	"context"

	"github.com/linkboard/linkboard-api/internal/core/domain"
)

type AuthService interface {
	// Signup registers a new account and returns a signed token plus
	// the created user. Fails with domain.ErrDuplicateEmail when the
	// email is already registered.
	Signup(ctx context.Context, name, email, password string) (string, *domain.User, error)
	// Login verifies credentials and returns a signed token plus the
	// user. Unknown email and wrong password are both
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
