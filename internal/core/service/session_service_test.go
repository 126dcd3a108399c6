package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/mentorconnect/mentorship-api/internal/core/domain"
	"github.com/mentorconnect/mentorship-api/internal/core/ports"
)

type stubSessionRepo struct {
	records []domain.SessionRecord
	nextID  int
}

func (r *stubSessionRepo) Create(_ context.Context, record *domain.SessionRecord) (*domain.SessionRecord, error) {
	r.nextID++
	clone := *record
	clone.ID = fmt.Sprintf("session_%d", r.nextID)
	r.records = append(r.records, clone)
	out := clone
	return &out, nil
}

func (r *stubSessionRepo) ListAll(_ context.Context) ([]domain.SessionRecord, error) {
	// Newest first, matching the real repository sort.
	out := make([]domain.SessionRecord, 0, len(r.records))
	for i := len(r.records) - 1; i >= 0; i-- {
		out = append(out, r.records[i])
	}
	return out, nil
}

func validSessionInput() ports.LogSessionInput {
	return ports.LogSessionInput{
		MentorID:        "mentor_1",
		MenteeID:        "mentee_1",
		Date:            time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		FluencyScore:    7,
		ConfidenceScore: 8,
		Notes:           "  good progress  ",
		NextSteps:       "practice interviews",
	}
}

func newSessionFixture(active bool) (*stubSessionRepo, *SessionService) {
	users := newStubUserRepo()
	users.seed("mentor_1", "alice", domain.RoleMentor, "x")
	users.seed("mentee_1", "bob", domain.RoleMentee, "x")
	sessions := &stubSessionRepo{}
	svc := NewSessionService(sessions, users, &stubPairs{active: active}, discardLogger)
	return sessions, svc
}

func TestSessionService_Log_Success(t *testing.T) {
	sessions, svc := newSessionFixture(true)

	result, err := svc.Log(context.Background(), validSessionInput())
	if err != nil {
		t.Fatalf("Log returned error: %v", err)
	}
	if result.MentorName != "alice" || result.MenteeName != "bob" {
		t.Fatalf("unexpected names: %+v", result)
	}
	if result.FluencyScore != 7 || result.ConfidenceScore != 8 {
		t.Fatalf("unexpected scores: %+v", result)
	}
	if result.Notes != "good progress" {
		t.Fatalf("expected trimmed notes, got %q", result.Notes)
	}
	if len(sessions.records) != 1 {
		t.Fatalf("expected 1 stored record, got %d", len(sessions.records))
	}
}

func TestSessionService_Log_ScoreOutOfRange(t *testing.T) {
	_, svc := newSessionFixture(true)

	for _, score := range []int{0, 11, -3} {
		in := validSessionInput()
		in.FluencyScore = score
		if _, err := svc.Log(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("fluency %d: expected ErrInvalidInput, got %v", score, err)
		}

		in = validSessionInput()
		in.ConfidenceScore = score
		if _, err := svc.Log(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("confidence %d: expected ErrInvalidInput, got %v", score, err)
		}
	}

	// Boundary values 1 and 10 are valid.
	in := validSessionInput()
	in.FluencyScore, in.ConfidenceScore = 1, 10
	if _, err := svc.Log(context.Background(), in); err != nil {
		t.Fatalf("boundary scores rejected: %v", err)
	}
}

func TestSessionService_Log_RequiresActivePair(t *testing.T) {
	sessions, svc := newSessionFixture(false)

	_, err := svc.Log(context.Background(), validSessionInput())
	if !errors.Is(err, domain.ErrNotAssigned) {
		t.Fatalf("expected ErrNotAssigned, got %v", err)
	}
	if len(sessions.records) != 0 {
		t.Fatalf("no record must be stored on gate failure, got %d", len(sessions.records))
	}
}

func TestSessionService_Log_UnknownParticipants(t *testing.T) {
	_, svc := newSessionFixture(true)

	in := validSessionInput()
	in.MentorID = "ghost"
	if _, err := svc.Log(context.Background(), in); !errors.Is(err, domain.ErrMentorNotFound) {
		t.Fatalf("unknown mentor: expected ErrMentorNotFound, got %v", err)
	}

	in = validSessionInput()
	in.MenteeID = "ghost"
	if _, err := svc.Log(context.Background(), in); !errors.Is(err, domain.ErrMenteeNotFound) {
		t.Fatalf("unknown mentee: expected ErrMenteeNotFound, got %v", err)
	}

	in = validSessionInput()
	in.MentorID, in.MenteeID = "mentee_1", "mentor_1" // roles swapped
	if _, err := svc.Log(context.Background(), in); !errors.Is(err, domain.ErrMentorNotFound) {
		t.Fatalf("swapped roles: expected ErrMentorNotFound, got %v", err)
	}
}

func TestSessionService_Log_GateCheckedAfterScores(t *testing.T) {
	// Invalid input is reported even when the pair is inactive; score
	// validation comes first.
	_, svc := newSessionFixture(false)

	in := validSessionInput()
	in.FluencyScore = 0
	if _, err := svc.Log(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSessionService_ListAll_ResolvesNames(t *testing.T) {
	sessions, svc := newSessionFixture(true)
	if _, err := svc.Log(context.Background(), validSessionInput()); err != nil {
		t.Fatalf("seed log failed: %v", err)
	}

	// A record referencing a deleted user lists as Unknown.
	sessions.records = append(sessions.records, domain.SessionRecord{
		ID:       "session_x",
		MentorID: "ghost",
		MenteeID: "mentee_1",
		Date:     time.Now().UTC(),
	})

	results, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	// Newest first: the ghost record was appended last.
	if results[0].MentorName != "Unknown" {
		t.Fatalf("expected Unknown mentor name, got %q", results[0].MentorName)
	}
	if results[1].MentorName != "alice" || results[1].MenteeName != "bob" {
		t.Fatalf("unexpected names: %+v", results[1])
	}
}
