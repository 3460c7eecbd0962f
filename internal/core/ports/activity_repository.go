package ports

import (
	"context"

	"github.com/linkboard/linkboard-api/internal/core/domain"
)

// ActivityRepository persists audit records of user actions.
type ActivityRepository interface {
	Insert(ctx context.Context, activity *domain.Activity) error
}
