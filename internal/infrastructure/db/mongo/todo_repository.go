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

const todosCollection = "todos"

type TodoRepository struct {
	coll *mongo.Collection
}

func NewTodoRepository(db *mongo.Database) *TodoRepository {
	return &TodoRepository{coll: db.Collection(todosCollection)}
}

type mongoTodo struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	MentorID    string             `bson:"mentor_id"`
	MenteeID    string             `bson:"mentee_id"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	DueDate     time.Time          `bson:"due_date"`
	Completed   bool               `bson:"completed"`
}

func (r *TodoRepository) Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoTodo{
		MentorID:    todo.MentorID,
		MenteeID:    todo.MenteeID,
		Title:       todo.Title,
		Description: todo.Description,
		DueDate:     todo.DueDate.UTC(),
		Completed:   todo.Completed,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert todo: %w", err)
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	created := *todo
	created.ID = id.Hex()
	return &created, nil
}

func (r *TodoRepository) FindByID(ctx context.Context, id string) (*domain.Todo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTodoNotFound
	}

	var mt mongoTodo
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTodoNotFound
		}
		return nil, fmt.Errorf("find todo: %w", err)
	}
	return toDomainTodo(mt), nil
}

// ListByMentee returns the mentee's todos ordered by due date ascending.
func (r *TodoRepository) ListByMentee(ctx context.Context, menteeID string) ([]domain.Todo, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "due_date", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"mentee_id": menteeID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoTodo
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode todos: %w", err)
	}

	todos := make([]domain.Todo, 0, len(docs))
	for _, mt := range docs {
		todos = append(todos, *toDomainTodo(mt))
	}
	return todos, nil
}

func (r *TodoRepository) SetCompleted(ctx context.Context, id string, completed bool) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTodoNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"completed": completed}})
	if err != nil {
		return fmt.Errorf("update todo: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrTodoNotFound
	}
	return nil
}

func (r *TodoRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "mentee_id", Value: 1}, {Key: "due_date", Value: 1}},
	})
	return err
}

func toDomainTodo(mt mongoTodo) *domain.Todo {
	return &domain.Todo{
		ID:          mt.ID.Hex(),
		MentorID:    mt.MentorID,
		MenteeID:    mt.MenteeID,
		Title:       mt.Title,
		Description: mt.Description,
		DueDate:     mt.DueDate,
		Completed:   mt.Completed,
	}
}
