package ports

import (
	"context"

	"github.com/linkboard/linkboard-api/internal/core/domain"
)

// FeedItem is a link paired with its current vote count. Counts are
// computed from the vote set on read, never maintained incrementally.
type FeedItem struct {
	Link  *domain.Link `json:"link"`
	Votes int64        `json:"votes"`
}

type LinkService interface {
	// Post creates a link on behalf of userID.
	Post(ctx context.Context, userID, url, description string) (*domain.Link, error)
	// Feed returns recent links with their vote counts.
	Feed(ctx context.Context, limit int) ([]FeedItem, error)
}
