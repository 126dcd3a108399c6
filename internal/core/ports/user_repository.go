package ports

import (
	"context"

	"github.com/mentorconnect/mentorship-api/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByNameAndRole(ctx context.Context, name, role string) (*domain.User, error)
	ListByRole(ctx context.Context, role string) ([]domain.User, error)
	UpdatePassword(ctx context.Context, id, password string) error
	UpdateMeetLink(ctx context.Context, id, meetLink string) error
}
