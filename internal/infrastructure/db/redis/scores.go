package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const scoreTTL = 5 * time.Minute

// ScoreCache caches per-link vote counts. It is read-through only:
// entries are written from a fresh count of the vote set and deleted
// when a vote lands. Counts are never incremented in place, so a stale
// or missing entry can only cost a recount, never a wrong tally.
// Key format: score:<link_id>
type ScoreCache struct {
	client *redis.Client
}

// NewScoreCache creates a ScoreCache wrapping the given Redis client.
func NewScoreCache(client *redis.Client) *ScoreCache {
	return &ScoreCache{client: client}
}

// Get returns the cached count for linkID and whether it was present.
func (s *ScoreCache) Get(ctx context.Context, linkID string) (int64, bool, error) {
	count, err := s.client.Get(ctx, s.key(linkID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("score get: %w", err)
	}
	return count, true, nil
}

// Set stores a freshly computed count (expires after scoreTTL).
func (s *ScoreCache) Set(ctx context.Context, linkID string, count int64) error {
	return s.client.Set(ctx, s.key(linkID), count, scoreTTL).Err()
}

// Invalidate drops the cached count for linkID.
func (s *ScoreCache) Invalidate(ctx context.Context, linkID string) error {
	return s.client.Del(ctx, s.key(linkID)).Err()
}

func (s *ScoreCache) key(linkID string) string {
	return "score:" + linkID
}
