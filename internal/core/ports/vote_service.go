package ports

import (
	"context"

	"github.com/linkboard/linkboard-api/internal/core/domain"
)

type VoteService interface {
	// Cast records userID's vote for linkID. At most one vote per
	// (user, link) pair ever succeeds; a second attempt fails with
	// domain.ErrDuplicateVote and is never retried.
	Cast(ctx context.Context, userID, linkID string) (*domain.Vote, error)
}
