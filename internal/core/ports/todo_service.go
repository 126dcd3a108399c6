package ports

import (
	"context"
	"time"

	"github.com/mentorconnect/mentorship-api/internal/core/domain"
)

// CreateTodoInput carries the fields for a mentor-assigned to-do.
type CreateTodoInput struct {
	MentorID    string
	MenteeID    string
	Title       string
	Description string
	DueDate     time.Time
}

// TodoService creates, lists, and toggles mentee to-dos.
type TodoService interface {
	Create(ctx context.Context, in CreateTodoInput) (*domain.Todo, error)
	ListForMentee(ctx context.Context, menteeID string) ([]domain.Todo, error)
	// Toggle flips the completed flag. callerID must be the owning mentee.
	Toggle(ctx context.Context, todoID, callerID string) (*domain.Todo, error)
}
