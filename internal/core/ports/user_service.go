package ports

import (
	"context"

	"github.com/mentorconnect/mentorship-api/internal/core/domain"
)

// CreateUserInput carries the admin-supplied fields for a new account.
type CreateUserInput struct {
	Name     string
	Role     string
	Password string
}

// UserService covers admin user management and mentor meet-link updates.
type UserService interface {
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	// ListByRole returns users with the given role, name ascending.
	ListByRole(ctx context.Context, role string) ([]domain.User, error)
	SetMeetLink(ctx context.Context, mentorID, meetLink string) (string, error)
	GetMeetLink(ctx context.Context, mentorID string) (string, error)
}
