package domain

import "time"

// Vote records that a user voted for a link. The pair (UserID, LinkID)
// is unique across all votes; the store's unique index is the arbiter,
// never an application-level existence check.
type Vote struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	LinkID    string    `json:"link_id"`
	CreatedAt time.Time `json:"created_at"`
}
