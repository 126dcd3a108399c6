package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mentorconnect/mentorship-api/internal/core/domain"
)

const resourcesCollection = "resources"

type ResourceRepository struct {
	coll *mongo.Collection
}

func NewResourceRepository(db *mongo.Database) *ResourceRepository {
	return &ResourceRepository{coll: db.Collection(resourcesCollection)}
}

type mongoResource struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Title      string             `bson:"title"`
	URL        string             `bson:"url"`
	UploadedAt time.Time          `bson:"uploaded_at"`
}

func (r *ResourceRepository) Create(ctx context.Context, resource *domain.Resource) (*domain.Resource, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoResource{
		Title:      resource.Title,
		URL:        resource.URL,
		UploadedAt: resource.UploadedAt.UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert resource: %w", err)
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	created := *resource
	created.ID = id.Hex()
	return &created, nil
}

// ListAll returns resources newest first, id descending as tiebreak.
func (r *ResourceRepository) ListAll(ctx context.Context) ([]domain.Resource, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "uploaded_at", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoResource
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode resources: %w", err)
	}

	resources := make([]domain.Resource, 0, len(docs))
	for _, mr := range docs {
		resources = append(resources, domain.Resource{
			ID:         mr.ID.Hex(),
			Title:      mr.Title,
			URL:        mr.URL,
			UploadedAt: mr.UploadedAt,
		})
	}
	return resources, nil
}
