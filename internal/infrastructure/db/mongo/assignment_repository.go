package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mentorconnect/mentorship-api/internal/core/domain"
)

const assignmentsCollection = "assignments"

type AssignmentRepository struct {
	coll *mongo.Collection
}

func NewAssignmentRepository(db *mongo.Database) *AssignmentRepository {
	return &AssignmentRepository{coll: db.Collection(assignmentsCollection)}
}

type mongoAssignment struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	MentorID string             `bson:"mentor_id"`
	MenteeID string             `bson:"mentee_id"`
}

// Upsert writes the pairing keyed on mentee id: an existing row has its
// mentor overwritten in place, otherwise a new row is inserted. The unique
// index on mentee_id is the backstop for two concurrent upserts racing past
// validation; the loser surfaces as a duplicate-key error.
func (r *AssignmentRepository) Upsert(ctx context.Context, mentorID, menteeID string) (*domain.Assignment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"mentee_id": menteeID}
	update := bson.M{"$set": bson.M{"mentor_id": mentorID}}
	opts := options.Update().SetUpsert(true)

	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAssignmentConflict
		}
		return nil, fmt.Errorf("upsert assignment: %w", err)
	}

	return r.FindByMentee(ctx, menteeID)
}

func (r *AssignmentRepository) FindByMentee(ctx context.Context, menteeID string) (*domain.Assignment, error) {
	var ma mongoAssignment
	if err := r.coll.FindOne(ctx, bson.M{"mentee_id": menteeID}).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotAssigned
		}
		return nil, fmt.Errorf("find assignment: %w", err)
	}
	return toDomainAssignment(ma), nil
}

func (r *AssignmentRepository) ListByMentor(ctx context.Context, mentorID string) ([]domain.Assignment, error) {
	return r.list(ctx, bson.M{"mentor_id": mentorID})
}

func (r *AssignmentRepository) ListAll(ctx context.Context) ([]domain.Assignment, error) {
	return r.list(ctx, bson.M{})
}

func (r *AssignmentRepository) list(ctx context.Context, filter bson.M) ([]domain.Assignment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoAssignment
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode assignments: %w", err)
	}

	assignments := make([]domain.Assignment, 0, len(docs))
	for _, ma := range docs {
		assignments = append(assignments, *toDomainAssignment(ma))
	}
	return assignments, nil
}

// EnsureIndexes creates the unique index enforcing one mentor per mentee.
func (r *AssignmentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "mentee_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "mentor_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func toDomainAssignment(ma mongoAssignment) *domain.Assignment {
	return &domain.Assignment{
		ID:       ma.ID.Hex(),
		MentorID: ma.MentorID,
		MenteeID: ma.MenteeID,
	}
}
