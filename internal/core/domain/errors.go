package domain

import "errors"

// Sentinel errors surfaced to callers as distinct outcomes. None of
// them are retried internally; StoreUnavailable is the only kind a
// caller might reasonably retry, and that policy lives outside this
// service.
var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password at login. The two are deliberately indistinguishable so
	// the endpoint cannot be used to probe which emails are registered.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDuplicateEmail signals a signup against an already registered
	// email address.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidToken signals a malformed, tampered, or expired token.
	ErrInvalidToken = errors.New("invalid token")

	// ErrUnauthenticated signals a missing or unverifiable identity on
	// an operation that requires one. It is an authorization boundary,
	// distinct from any data error.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrDuplicateVote signals that the (user, link) pair already holds
	// a vote. A terminal business outcome, not a transient fault.
	ErrDuplicateVote = errors.New("already voted for link")

	ErrUserNotFound = errors.New("user not found")
	ErrLinkNotFound = errors.New("link not found")

	// ErrStoreUnavailable wraps persistence-layer failures. Propagated
	// as-is, never masked.
	ErrStoreUnavailable = errors.New("store unavailable")
)
