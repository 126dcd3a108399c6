package ports

import (
	"context"

	"github.com/mentorconnect/mentorship-api/internal/core/domain"
)

// AuthService authenticates (name, role, password) triples and issues signed
// bearer tokens. All authentication failures collapse into
// domain.ErrInvalidCredentials so callers cannot probe which accounts exist.
type AuthService interface {
	Login(ctx context.Context, name, role, password string) (string, *domain.User, error)
}
