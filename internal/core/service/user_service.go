package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mentorconnect/mentorship-api/internal/core/credential"
	"github.com/mentorconnect/mentorship-api/internal/core/domain"
	"github.com/mentorconnect/mentorship-api/internal/core/ports"
)

// UserService implements admin user management and meet-link updates.
type UserService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, log: log}
}

// Create registers a mentor or mentee account. Admin accounts cannot be
// created through this path, and (name, role) must be unique.
func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	name := strings.TrimSpace(in.Name)
	password := strings.TrimSpace(in.Password)
	if name == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Role != domain.RoleMentor && in.Role != domain.RoleMentee {
		return nil, domain.ErrInvalidRole
	}

	if _, err := s.users.FindByNameAndRole(ctx, name, in.Role); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := credential.Hash(password)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, &domain.User{
		Name:     name,
		Role:     in.Role,
		Password: hash,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user created")
	return created, nil
}

// ListByRole returns users with the given role, name ascending.
func (s *UserService) ListByRole(ctx context.Context, role string) ([]domain.User, error) {
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}
	return s.users.ListByRole(ctx, role)
}

// SetMeetLink stores the mentor's meeting link. The link must be empty or
// start with an http(s) scheme.
func (s *UserService) SetMeetLink(ctx context.Context, mentorID, meetLink string) (string, error) {
	link := strings.TrimSpace(meetLink)
	if link != "" && !strings.HasPrefix(link, "http://") && !strings.HasPrefix(link, "https://") {
		return "", domain.ErrInvalidMeetLink
	}

	if _, err := s.findMentor(ctx, mentorID); err != nil {
		return "", err
	}
	if err := s.users.UpdateMeetLink(ctx, mentorID, link); err != nil {
		return "", err
	}
	return link, nil
}

func (s *UserService) GetMeetLink(ctx context.Context, mentorID string) (string, error) {
	mentor, err := s.findMentor(ctx, mentorID)
	if err != nil {
		return "", err
	}
	return mentor.MeetLink, nil
}

func (s *UserService) findMentor(ctx context.Context, mentorID string) (*domain.User, error) {
	mentor, err := s.users.FindByID(ctx, mentorID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrMentorNotFound
		}
		return nil, err
	}
	if mentor.Role != domain.RoleMentor {
		return nil, domain.ErrMentorNotFound
	}
	return mentor, nil
}
