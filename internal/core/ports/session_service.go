package ports

import (
	"context"
	"time"
)

// LogSessionInput carries all data needed to log a mentoring session.
type LogSessionInput struct {
	MentorID        string
	MenteeID        string
	Date            time.Time
	FluencyScore    int
	ConfidenceScore int
	Notes           string
	NextSteps       string
}

// SessionResult is a session record with participant names resolved.
type SessionResult struct {
	ID              string    `json:"id"`
	MentorName      string    `json:"mentor_name"`
	MenteeName      string    `json:"mentee_name"`
	Date            time.Time `json:"date"`
	FluencyScore    int       `json:"fluency_score"`
	ConfidenceScore int       `json:"confidence_score"`
	Notes           string    `json:"notes"`
	NextSteps       string    `json:"next_steps"`
}

// SessionService logs and lists session records.
type SessionService interface {
	Log(ctx context.Context, in LogSessionInput) (*SessionResult, error)
	ListAll(ctx context.Context) ([]SessionResult, error)
}
