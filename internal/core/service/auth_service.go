package service

import (
	"context"
	"errors"
	"time"

	"github.com/linkboard/linkboard-api/internal/core/auth"
	"github.com/linkboard/linkboard-api/internal/core/domain"
	"github.com/linkboard/linkboard-api/internal/core/ports"
)

// dummyHash is a valid bcrypt blob compared against when login hits an
// unknown email, so that path costs the same as a wrong password and
// the response cannot be timed to discover registered addresses.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService implements signup and login on top of the credential
// primitives in the auth package.
type AuthService struct {
	users      ports.UserRepository
	tokens     *auth.TokenIssuer
	hashCost   int
	activities ActivityRecorder
}

func NewAuthService(users ports.UserRepository, tokens *auth.TokenIssuer, hashCost int, activities ActivityRecorder) *AuthService {
	return &AuthService{users: users, tokens: tokens, hashCost: hashCost, activities: activities}
}

func (s *AuthService) Signup(ctx context.Context, name, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(password, s.hashCost)
	if err != nil {
		return "", nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return "", nil, err
	}

	if s.activities != nil {
		s.activities.Record(domain.Activity{
			Kind:      domain.ActivityUserSignedUp,
			UserID:    created.ID,
			Timestamp: created.CreatedAt,
		})
	}

	return token, created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			auth.VerifyPassword(password, dummyHash)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}
