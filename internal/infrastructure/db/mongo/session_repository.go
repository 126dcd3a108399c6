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

const sessionsCollection = "session_records"

type SessionRepository struct {
	coll *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{coll: db.Collection(sessionsCollection)}
}

type mongoSession struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	MentorID        string             `bson:"mentor_id"`
	MenteeID        string             `bson:"mentee_id"`
	Date            time.Time          `bson:"date"`
	FluencyScore    int                `bson:"fluency_score"`
	ConfidenceScore int                `bson:"confidence_score"`
	Notes           string             `bson:"notes"`
	NextSteps       string             `bson:"next_steps"`
}

func (r *SessionRepository) Create(ctx context.Context, record *domain.SessionRecord) (*domain.SessionRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoSession{
		MentorID:        record.MentorID,
		MenteeID:        record.MenteeID,
		Date:            record.Date.UTC(),
		FluencyScore:    record.FluencyScore,
		ConfidenceScore: record.ConfidenceScore,
		Notes:           record.Notes,
		NextSteps:       record.NextSteps,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	created := *record
	created.ID = id.Hex()
	return &created, nil
}

// ListAll returns all records sorted by date descending, then id descending
// as the stable tiebreak for same-day sessions.
func (r *SessionRepository) ListAll(ctx context.Context) ([]domain.SessionRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoSession
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode sessions: %w", err)
	}

	records := make([]domain.SessionRecord, 0, len(docs))
	for _, ms := range docs {
		records = append(records, domain.SessionRecord{
			ID:              ms.ID.Hex(),
			MentorID:        ms.MentorID,
			MenteeID:        ms.MenteeID,
			Date:            ms.Date,
			FluencyScore:    ms.FluencyScore,
			ConfidenceScore: ms.ConfidenceScore,
			Notes:           ms.Notes,
			NextSteps:       ms.NextSteps,
		})
	}
	return records, nil
}

func (r *SessionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "mentor_id", Value: 1}}},
		{Keys: bson.D{{Key: "mentee_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
