package ports

import (
	"context"

	"github.com/linkboard/linkboard-api/internal/core/domain"
)

// LinkRepository defines persistence operations for shared links.
type LinkRepository interface {
	Create(ctx context.Context, link *domain.Link) (*domain.Link, error)
	FindByID(ctx context.Context, id string) (*domain.Link, error)
	// List returns the most recent links, newest first, capped at limit.
	List(ctx context.Context, limit int) ([]*domain.Link, error)
}
