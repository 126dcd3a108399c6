package ports

import (
	"context"

	"github.com/mentorconnect/mentorship-api/internal/core/domain"
)

// MappingResult is an assignment with both endpoint names resolved.
type MappingResult struct {
	MentorID   string `json:"mentor_id"`
	MentorName string `json:"mentor_name"`
	MenteeID   string `json:"mentee_id"`
	MenteeName string `json:"mentee_name"`
}

// AssignmentService is the registry of mentor-mentee pairings.
type AssignmentService interface {
	// Assign pairs mentee with mentor, overwriting any existing pairing for
	// the mentee. Both ids must resolve to users of the correct role.
	Assign(ctx context.Context, mentorID, menteeID string) (*domain.Assignment, error)
	// MentorOf returns the mentee's current mentor, or nil when unassigned.
	MentorOf(ctx context.Context, menteeID string) (*domain.User, error)
	// MenteesOf returns the mentees currently assigned to the mentor, name
	// ascending. The mentor must exist with role mentor.
	MenteesOf(ctx context.Context, mentorID string) ([]domain.User, error)
	// IsActivePair reports whether an assignment exists with exactly this
	// mentor id for this mentee id.
	IsActivePair(ctx context.Context, mentorID, menteeID string) (bool, error)
	ListMappings(ctx context.Context) ([]MappingResult, error)
}
