package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/linkboard/linkboard-api/internal/core/domain"
	"github.com/linkboard/linkboard-api/internal/core/ports"
)

// ScoreCache abstracts the per-link vote-count cache (Redis). The cache
// is read-through: counts are always recomputed from the vote set on a
// miss and invalidated on a successful vote, never incremented.
type ScoreCache interface {
	Get(ctx context.Context, linkID string) (int64, bool, error)
	Set(ctx context.Context, linkID string, count int64) error
	Invalidate(ctx context.Context, linkID string) error
}

type voteService struct {
	votes      ports.VoteRepository
	links      ports.LinkRepository
	scores     ScoreCache
	activities ActivityRecorder
	log        zerolog.Logger
}

// NewVoteService returns a VoteService enforcing the one-vote-per-
// (user, link) invariant. scores and activities may be nil.
func NewVoteService(
	votes ports.VoteRepository,
	links ports.LinkRepository,
	scores ScoreCache,
	activities ActivityRecorder,
	log zerolog.Logger,
) ports.VoteService {
	return &voteService{votes: votes, links: links, scores: scores, activities: activities, log: log}
}

// Cast records a vote. The insert attempt itself is the uniqueness
// arbiter: there is no existence pre-check, so concurrent attempts for
// the same pair race only inside the store's unique index, and exactly
// one wins. Duplicates are terminal, never retried.
func (s *voteService) Cast(ctx context.Context, userID, linkID string) (*domain.Vote, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}

	// Existence check is for a clean not-found answer only; the vote
	// invariant never depends on it.
	if _, err := s.links.FindByID(ctx, linkID); err != nil {
		return nil, err
	}

	vote := &domain.Vote{
		UserID:    userID,
		LinkID:    linkID,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.votes.Insert(ctx, vote)
	if err != nil {
		return nil, err
	}

	if s.scores != nil {
		if err := s.scores.Invalidate(ctx, linkID); err != nil {
			s.log.Warn().Err(err).Str("link_id", linkID).Msg("failed to invalidate score cache")
		}
	}

	if s.activities != nil {
		s.activities.Record(domain.Activity{
			Kind:      domain.ActivityVoteCast,
			UserID:    userID,
			SubjectID: linkID,
			Timestamp: created.CreatedAt,
		})
	}

	s.log.Info().Str("user_id", userID).Str("link_id", linkID).Msg("vote cast")

	return created, nil
}
