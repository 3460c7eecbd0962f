package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/linkboard/linkboard-api/internal/core/domain"
)

const collectionActivities = "activities"

// ActivityRepository appends audit records. Write-only from the
// application's point of view; reads happen out of band.
type ActivityRepository struct {
	col *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{col: db.Collection(collectionActivities)}
}

type activityDoc struct {
	Kind      string    `bson:"kind"`
	UserID    string    `bson:"user_id"`
	SubjectID string    `bson:"subject_id,omitempty"`
	Timestamp time.Time `bson:"timestamp"`
}

func (r *ActivityRepository) Insert(ctx context.Context, activity *domain.Activity) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := activityDoc{
		Kind:      string(activity.Kind),
		UserID:    activity.UserID,
		SubjectID: activity.SubjectID,
		Timestamp: activity.Timestamp,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return storeError("insert activity", err)
	}
	return nil
}
