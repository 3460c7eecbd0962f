package ports

import (
	"context"

	"github.com/linkboard/linkboard-api/internal/core/domain"
)

// VoteRepository defines vote persistence. Insert is an atomic
// test-and-insert: the store's unique index on (user_id, link_id) is
// the arbiter, so two concurrent inserts for the same pair can never
// both succeed. A separate exists-then-insert sequence is not an
// acceptable implementation of this contract.
type VoteRepository interface {
	// Insert creates the vote, failing with domain.ErrDuplicateVote if
	// a vote for the same (user, link) pair already exists.
	Insert(ctx context.Context, vote *domain.Vote) (*domain.Vote, error)
	// CountByLink returns the number of votes recorded for a link.
	CountByLink(ctx context.Context, linkID string) (int64, error)
}
