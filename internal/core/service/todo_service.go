package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mentorconnect/mentorship-api/internal/core/domain"
	"github.com/mentorconnect/mentorship-api/internal/core/ports"
)

// TodoService creates, lists, and toggles mentee to-dos.
type TodoService struct {
	todos ports.TodoRepository
	users ports.UserRepository
	pairs PairChecker
	log   zerolog.Logger
}

func NewTodoService(todos ports.TodoRepository, users ports.UserRepository, pairs PairChecker, log zerolog.Logger) *TodoService {
	return &TodoService{todos: todos, users: users, pairs: pairs, log: log}
}

// Create assigns a to-do. Same precondition as session logging: both users
// must exist with correct roles and the pairing must be active.
func (s *TodoService) Create(ctx context.Context, in ports.CreateTodoInput) (*domain.Todo, error) {
	if err := s.requireRole(ctx, in.MentorID, domain.RoleMentor, domain.ErrMentorNotFound); err != nil {
		return nil, err
	}
	if err := s.requireRole(ctx, in.MenteeID, domain.RoleMentee, domain.ErrMenteeNotFound); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, domain.ErrInvalidInput
	}

	active, err := s.pairs.IsActivePair(ctx, in.MentorID, in.MenteeID)
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, domain.ErrNotAssigned
	}

	todo, err := s.todos.Create(ctx, &domain.Todo{
		MentorID:    in.MentorID,
		MenteeID:    in.MenteeID,
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		DueDate:     in.DueDate,
		Completed:   false,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("todo_id", todo.ID).Str("mentee_id", in.MenteeID).Msg("todo created")
	return todo, nil
}

// ListForMentee returns the mentee's todos ordered by due date ascending.
// Returns ErrMenteeNotFound when the id is absent or wrong role.
func (s *TodoService) ListForMentee(ctx context.Context, menteeID string) ([]domain.Todo, error) {
	if err := s.requireRole(ctx, menteeID, domain.RoleMentee, domain.ErrMenteeNotFound); err != nil {
		return nil, err
	}
	return s.todos.ListByMentee(ctx, menteeID)
}

// Toggle flips the completed flag. Only the owning mentee may toggle:
// unknown id is NotFound, someone else's todo is Forbidden.
func (s *TodoService) Toggle(ctx context.Context, todoID, callerID string) (*domain.Todo, error) {
	todo, err := s.todos.FindByID(ctx, todoID)
	if err != nil {
		return nil, err
	}
	if todo.MenteeID != callerID {
		return nil, domain.ErrTodoNotOwned
	}

	todo.Completed = !todo.Completed
	if err := s.todos.SetCompleted(ctx, todo.ID, todo.Completed); err != nil {
		return nil, err
	}

	s.log.Info().Str("todo_id", todo.ID).Bool("completed", todo.Completed).Msg("todo toggled")
	return todo, nil
}

func (s *TodoService) requireRole(ctx context.Context, userID, role string, notFound error) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return notFound
		}
		return err
	}
	if user.Role != role {
		return notFound
	}
	return nil
}
