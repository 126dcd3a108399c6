package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mentorconnect/mentorship-api/internal/core/domain"
	"github.com/mentorconnect/mentorship-api/internal/core/ports"
)

// PairChecker abstracts the assignment registry predicate that gates session
// and todo creation.
type PairChecker interface {
	IsActivePair(ctx context.Context, mentorID, menteeID string) (bool, error)
}

// SessionService logs and lists mentoring session records.
type SessionService struct {
	sessions ports.SessionRepository
	users    ports.UserRepository
	pairs    PairChecker
	log      zerolog.Logger
}

func NewSessionService(sessions ports.SessionRepository, users ports.UserRepository, pairs PairChecker, log zerolog.Logger) *SessionService {
	return &SessionService{sessions: sessions, users: users, pairs: pairs, log: log}
}

// Log creates an immutable session record. Both participants must exist with
// the correct roles AND the mentee must be currently assigned to the mentor.
func (s *SessionService) Log(ctx context.Context, in ports.LogSessionInput) (*ports.SessionResult, error) {
	mentor, err := s.requireRole(ctx, in.MentorID, domain.RoleMentor, domain.ErrMentorNotFound)
	if err != nil {
		return nil, err
	}
	mentee, err := s.requireRole(ctx, in.MenteeID, domain.RoleMentee, domain.ErrMenteeNotFound)
	if err != nil {
		return nil, err
	}

	if in.FluencyScore < 1 || in.FluencyScore > 10 || in.ConfidenceScore < 1 || in.ConfidenceScore > 10 {
		return nil, domain.ErrInvalidInput
	}

	active, err := s.pairs.IsActivePair(ctx, in.MentorID, in.MenteeID)
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, domain.ErrNotAssigned
	}

	record, err := s.sessions.Create(ctx, &domain.SessionRecord{
		MentorID:        in.MentorID,
		MenteeID:        in.MenteeID,
		Date:            in.Date,
		FluencyScore:    in.FluencyScore,
		ConfidenceScore: in.ConfidenceScore,
		Notes:           strings.TrimSpace(in.Notes),
		NextSteps:       strings.TrimSpace(in.NextSteps),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("mentor_id", in.MentorID).Str("mentee_id", in.MenteeID).Msg("session logged")
	return s.toResult(record, mentor.Name, mentee.Name), nil
}

// ListAll returns every session record newest first with names resolved.
func (s *SessionService) ListAll(ctx context.Context) ([]ports.SessionResult, error) {
	records, err := s.sessions.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]ports.SessionResult, 0, len(records))
	for _, r := range records {
		results = append(results, *s.toResult(&r, s.nameOf(ctx, r.MentorID), s.nameOf(ctx, r.MenteeID)))
	}
	return results, nil
}

func (s *SessionService) toResult(r *domain.SessionRecord, mentorName, menteeName string) *ports.SessionResult {
	return &ports.SessionResult{
		ID:              r.ID,
		MentorName:      mentorName,
		MenteeName:      menteeName,
		Date:            r.Date,
		FluencyScore:    r.FluencyScore,
		ConfidenceScore: r.ConfidenceScore,
		Notes:           r.Notes,
		NextSteps:       r.NextSteps,
	}
}

func (s *SessionService) nameOf(ctx context.Context, userID string) string {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "Unknown"
	}
	return user.Name
}

func (s *SessionService) requireRole(ctx context.Context, userID, role string, notFound error) (*domain.User, error) {
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
