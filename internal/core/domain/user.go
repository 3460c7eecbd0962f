package domain

import "time"

// User models a registered account.
//
// PasswordHash never leaves the service layer: it is excluded from JSON
// and only the auth package knows how to produce or check it.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
