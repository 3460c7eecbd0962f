package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linkboard/linkboard-api/internal/core/domain"
)

const collectionVotes = "votes"

// VoteRepository persists votes. The compound unique index on
// (user_id, link_id) makes InsertOne an atomic test-and-insert: when
// two requests race on the same pair, the index admits exactly one and
// the loser sees a duplicate-key error. There is no check-then-act
// window to exploit, and unrelated pairs never contend.
type VoteRepository struct {
	col *mongo.Collection
}

func NewVoteRepository(db *mongo.Database) *VoteRepository {
	return &VoteRepository{col: db.Collection(collectionVotes)}
}

type voteDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	LinkID    string             `bson:"link_id"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (r *VoteRepository) Insert(ctx context.Context, vote *domain.Vote) (*domain.Vote, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := voteDoc{
		ID:        primitive.NewObjectID(),
		UserID:    vote.UserID,
		LinkID:    vote.LinkID,
		CreatedAt: vote.CreatedAt,
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateVote
		}
		return nil, storeError("insert vote", err)
	}

	return &domain.Vote{
		ID:        doc.ID.Hex(),
		UserID:    doc.UserID,
		LinkID:    doc.LinkID,
		CreatedAt: doc.CreatedAt.UTC(),
	}, nil
}

func (r *VoteRepository) CountByLink(ctx context.Context, linkID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	count, err := r.col.CountDocuments(ctx, bson.M{"link_id": linkID})
	if err != nil {
		return 0, storeError("count votes", err)
	}
	return count, nil
}

// EnsureIndexes creates the unique (user_id, link_id) index that the
// deduplication contract depends on. Must run before the first vote is
// accepted.
func (r *VoteRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "link_id", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "link_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
