package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/linkboard/linkboard-api/internal/core/domain"
	"github.com/linkboard/linkboard-api/internal/core/ports"
)

const (
	defaultFeedLimit = 20
	maxFeedLimit     = 100
)

type linkService struct {
	links      ports.LinkRepository
	votes      ports.VoteRepository
	scores     ScoreCache
	activities ActivityRecorder
	log        zerolog.Logger
}

// NewLinkService returns a LinkService. scores and activities may be nil.
func NewLinkService(
	links ports.LinkRepository,
	votes ports.VoteRepository,
	scores ScoreCache,
	activities ActivityRecorder,
	log zerolog.Logger,
) ports.LinkService {
	return &linkService{links: links, votes: votes, scores: scores, activities: activities, log: log}
}

func (s *linkService) Post(ctx context.Context, userID, url, description string) (*domain.Link, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}

	link := &domain.Link{
		URL:         url,
		Description: description,
		PostedBy:    userID,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.links.Create(ctx, link)
	if err != nil {
		return nil, err
	}

	if s.activities != nil {
		s.activities.Record(domain.Activity{
			Kind:      domain.ActivityLinkPosted,
			UserID:    userID,
			SubjectID: created.ID,
			Timestamp: created.CreatedAt,
		})
	}

	s.log.Info().Str("user_id", userID).Str("link_id", created.ID).Msg("link posted")

	return created, nil
}

func (s *linkService) Feed(ctx context.Context, limit int) ([]ports.FeedItem, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}

	links, err := s.links.List(ctx, limit)
	if err != nil {
		return nil, err
	}

	items := make([]ports.FeedItem, 0, len(links))
	for _, link := range links {
		count, err := s.voteCount(ctx, link.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, ports.FeedItem{Link: link, Votes: count})
	}
	return items, nil
}

// voteCount reads the cached count, falling back to counting the vote
// set. Cache failures degrade to a direct count, never to an error.
func (s *linkService) voteCount(ctx context.Context, linkID string) (int64, error) {
	if s.scores != nil {
		count, ok, err := s.scores.Get(ctx, linkID)
		if err != nil {
			s.log.Warn().Err(err).Str("link_id", linkID).Msg("score cache read failed")
		} else if ok {
			return count, nil
		}
	}

	count, err := s.votes.CountByLink(ctx, linkID)
	if err != nil {
		return 0, err
	}

	if s.scores != nil {
		if err := s.scores.Set(ctx, linkID, count); err != nil {
			s.log.Warn().Err(err).Str("link_id", linkID).Msg("score cache write failed")
		}
	}
	return count, nil
}
