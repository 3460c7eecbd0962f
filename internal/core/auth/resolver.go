package auth

import "github.com/linkboard/linkboard-api/internal/core/domain"

// TokenVerifier is the single primitive the resolver needs from the
// credential layer.
type TokenVerifier interface {
	Verify(raw string) (string, error)
}

// Resolver turns an inbound raw token into the acting user id. Every
// identity-requiring operation goes through Resolve; the failure mode
// is always domain.ErrUnauthenticated, kept distinct from business
// errors so the transport layer can map it to its own status.
type Resolver struct {
	tokens TokenVerifier
}

func NewResolver(tokens TokenVerifier) *Resolver {
	return &Resolver{tokens: tokens}
}

// Resolve validates raw and returns the user id it asserts. An absent
// or invalid token resolves to domain.ErrUnauthenticated.
func (r *Resolver) Resolve(raw string) (string, error) {
	if raw == "" {
		return "", domain.ErrUnauthenticated
	}
	userID, err := r.tokens.Verify(raw)
	if err != nil {
		return "", domain.ErrUnauthenticated
	}
	return userID, nil
}
