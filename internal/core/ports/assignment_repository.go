package ports

import (
	"context"

	"github.com/mentorconnect/mentorship-api/internal/core/domain"
)

// AssignmentRepository defines the interface for mentor-mentee pairing
// persistence. The store enforces uniqueness on mentee id; Upsert overwrites
// the mentor in place when a row for the mentee already exists.
type AssignmentRepository interface {
	Upsert(ctx context.Context, mentorID, menteeID string) (*domain.Assignment, error)
	FindByMentee(ctx context.Context, menteeID string) (*domain.Assignment, error)
	ListByMentor(ctx context.Context, mentorID string) ([]domain.Assignment, error)
	ListAll(ctx context.Context) ([]domain.Assignment, error)
}
