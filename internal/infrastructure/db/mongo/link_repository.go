package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linkboard/linkboard-api/internal/core/domain"
)

const collectionLinks = "links"

type LinkRepository struct {
	col *mongo.Collection
}

func NewLinkRepository(db *mongo.Database) *LinkRepository {
	return &LinkRepository{col: db.Collection(collectionLinks)}
}

type linkDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	URL         string             `bson:"url"`
	Description string             `bson:"description,omitempty"`
	PostedBy    string             `bson:"posted_by"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (d linkDoc) toDomain() *domain.Link {
	return &domain.Link{
		ID:          d.ID.Hex(),
		URL:         d.URL,
		Description: d.Description,
		PostedBy:    d.PostedBy,
		CreatedAt:   d.CreatedAt.UTC(),
	}
}

func (r *LinkRepository) Create(ctx context.Context, link *domain.Link) (*domain.Link, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := linkDoc{
		ID:          primitive.NewObjectID(),
		URL:         link.URL,
		Description: link.Description,
		PostedBy:    link.PostedBy,
		CreatedAt:   link.CreatedAt,
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, storeError("insert link", err)
	}
	return doc.toDomain(), nil
}

func (r *LinkRepository) FindByID(ctx context.Context, id string) (*domain.Link, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrLinkNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc linkDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLinkNotFound
		}
		return nil, storeError("find link", err)
	}
	return doc.toDomain(), nil
}

// List returns the newest links first, capped at limit.
func (r *LinkRepository) List(ctx context.Context, limit int) ([]*domain.Link, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, storeError("list links", err)
	}
	defer cur.Close(ctx)

	var links []*domain.Link
	for cur.Next(ctx) {
		var doc linkDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, storeError("decode link", err)
		}
		links = append(links, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, storeError("list links", err)
	}
	return links, nil
}

// EnsureIndexes creates the feed sort index.
func (r *LinkRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	return err
}
