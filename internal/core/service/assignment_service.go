package service

import (
	"context"
	"errors"
	"sort"

	"github.com/rs/zerolog"

	"github.com/mentorconnect/mentorship-api/internal/core/domain"
	"github.com/mentorconnect/mentorship-api/internal/core/ports"
)

// AssignmentService maintains the mentor-mentee pairing set.
type AssignmentService struct {
	assignments ports.AssignmentRepository
	users       ports.UserRepository
	log         zerolog.Logger
}

func NewAssignmentService(assignments ports.AssignmentRepository, users ports.UserRepository, log zerolog.Logger) *AssignmentService {
	return &AssignmentService{assignments: assignments, users: users, log: log}
}

// Assign pairs mentee with mentor. If the mentee already has a mentor the
// pairing is overwritten in place; last writer wins, no history. Repeated
// calls with the same pair are no-ops in effect.
func (s *AssignmentService) Assign(ctx context.Context, mentorID, menteeID string) (*domain.Assignment, error) {
	if _, err := s.requireRole(ctx, mentorID, domain.RoleMentor, domain.ErrMentorNotFound); err != nil {
		return nil, err
	}
	if _, err := s.requireRole(ctx, menteeID, domain.RoleMentee, domain.ErrMenteeNotFound); err != nil {
		return nil, err
	}

	assignment, err := s.assignments.Upsert(ctx, mentorID, menteeID)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("mentor_id", mentorID).Str("mentee_id", menteeID).Msg("mentor assigned to mentee")
	return assignment, nil
}

// MentorOf returns the mentee's current mentor, or nil when unassigned.
func (s *AssignmentService) MentorOf(ctx context.Context, menteeID string) (*domain.User, error) {
	assignment, err := s.assignments.FindByMentee(ctx, menteeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotAssigned) {
			return nil, nil
		}
		return nil, err
	}

	mentor, err := s.users.FindByID(ctx, assignment.MentorID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mentor, nil
}

// MenteesOf returns the mentees currently assigned to the mentor, name
// ascending. Returns ErrMentorNotFound when the id is absent or wrong role.
func (s *AssignmentService) MenteesOf(ctx context.Context, mentorID string) ([]domain.User, error) {
	if _, err := s.requireRole(ctx, mentorID, domain.RoleMentor, domain.ErrMentorNotFound); err != nil {
		return nil, err
	}

	assignments, err := s.assignments.ListByMentor(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	mentees := make([]domain.User, 0, len(assignments))
	for _, a := range assignments {
		mentee, err := s.users.FindByID(ctx, a.MenteeID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				continue
			}
			return nil, err
		}
		mentees = append(mentees, *mentee)
	}

	sort.Slice(mentees, func(i, j int) bool { return mentees[i].Name < mentees[j].Name })
	return mentees, nil
}

// IsActivePair reports whether an assignment exists with exactly this mentor
// id for this mentee id. This predicate gates session and todo creation.
func (s *AssignmentService) IsActivePair(ctx context.Context, mentorID, menteeID string) (bool, error) {
	assignment, err := s.assignments.FindByMentee(ctx, menteeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotAssigned) {
			return false, nil
		}
		return false, err
	}
	return assignment.MentorID == mentorID, nil
}

// ListMappings returns all assignments with both participant names resolved.
func (s *AssignmentService) ListMappings(ctx context.Context) ([]ports.MappingResult, error) {
	assignments, err := s.assignments.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]ports.MappingResult, 0, len(assignments))
	for _, a := range assignments {
		results = append(results, ports.MappingResult{
			MentorID:   a.MentorID,
			MentorName: s.nameOf(ctx, a.MentorID),
			MenteeID:   a.MenteeID,
			MenteeName: s.nameOf(ctx, a.MenteeID),
		})
	}
	return results, nil
}

func (s *AssignmentService) nameOf(ctx context.Context, userID string) string {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "Unknown"
	}
	return user.Name
}

func (s *AssignmentService) requireRole(ctx context.Context, userID, role string, notFound error) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, notFound
		}
		return nil, err
	}
	if user.Role != role {
		return nil, notFound
	}
	return user, nil
}
