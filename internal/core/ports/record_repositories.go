package ports

import (
	"context"

	"github.com/mentorconnect/mentorship-api/internal/core/domain"
)

// SessionRepository persists immutable session records.
type SessionRepository interface {
	Create(ctx context.Context, record *domain.SessionRecord) (*domain.SessionRecord, error)
	// ListAll returns all records, most recent date first, id descending as
	// the stable tiebreak.
	ListAll(ctx context.Context) ([]domain.SessionRecord, error)
}

// TodoRepository persists mentee to-dos.
type TodoRepository interface {
	Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error)
	FindByID(ctx context.Context, id string) (*domain.Todo, error)
	// ListByMentee returns the mentee's todos ordered by due date ascending.
	ListByMentee(ctx context.Context, menteeID string) ([]domain.Todo, error)
	SetCompleted(ctx context.Context, id string, completed bool) error
}

// ResourceRepository persists uploaded resource records.
type ResourceRepository interface {
	Create(ctx context.Context, resource *domain.Resource) (*domain.Resource, error)
	// ListAll returns resources newest first, id descending as tiebreak.
	ListAll(ctx context.Context) ([]domain.Resource, error)
}
