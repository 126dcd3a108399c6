package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mentorconnect/mentorship-api/internal/core/domain"
)

func newAssignmentFixture() (*stubUserRepo, *stubAssignmentRepo, *AssignmentService) {
	users := newStubUserRepo()
	users.seed("mentor_1", "alice", domain.RoleMentor, "x")
	users.seed("mentor_2", "carol", domain.RoleMentor, "x")
	users.seed("mentee_1", "bob", domain.RoleMentee, "x")
	users.seed("mentee_2", "dave", domain.RoleMentee, "x")
	assignments := newStubAssignmentRepo()
	svc := NewAssignmentService(assignments, users, discardLogger)
	return users, assignments, svc
}

func TestAssignmentService_Assign_Success(t *testing.T) {
	_, repo, svc := newAssignmentFixture()

	a, err := svc.Assign(context.Background(), "mentor_1", "mentee_1")
	if err != nil {
		t.Fatalf("Assign returned error: %v", err)
	}
	if a.MentorID != "mentor_1" || a.MenteeID != "mentee_1" {
		t.Fatalf("unexpected assignment: %+v", a)
	}
	if len(repo.byMentee) != 1 {
		t.Fatalf("expected 1 stored assignment, got %d", len(repo.byMentee))
	}
}

func TestAssignmentService_Assign_UnknownOrWrongRole(t *testing.T) {
	_, _, svc := newAssignmentFixture()

	if _, err := svc.Assign(context.Background(), "ghost", "mentee_1"); !errors.Is(err, domain.ErrMentorNotFound) {
		t.Fatalf("unknown mentor: expected ErrMentorNotFound, got %v", err)
	}
	if _, err := svc.Assign(context.Background(), "mentee_1", "mentee_2"); !errors.Is(err, domain.ErrMentorNotFound) {
		t.Fatalf("mentee in mentor slot: expected ErrMentorNotFound, got %v", err)
	}
	if _, err := svc.Assign(context.Background(), "mentor_1", "ghost"); !errors.Is(err, domain.ErrMenteeNotFound) {
		t.Fatalf("unknown mentee: expected ErrMenteeNotFound, got %v", err)
	}
	if _, err := svc.Assign(context.Background(), "mentor_1", "mentor_2"); !errors.Is(err, domain.ErrMenteeNotFound) {
		t.Fatalf("mentor in mentee slot: expected ErrMenteeNotFound, got %v", err)
	}
}

func TestAssignmentService_Assign_ReassignOverwrites(t *testing.T) {
	_, repo, svc := newAssignmentFixture()

	first, err := svc.Assign(context.Background(), "mentor_1", "mentee_1")
	if err != nil {
		t.Fatalf("first assign failed: %v", err)
	}
	second, err := svc.Assign(context.Background(), "mentor_2", "mentee_1")
	if err != nil {
		t.Fatalf("reassign failed: %v", err)
	}

	if second.MentorID != "mentor_2" {
		t.Fatalf("expected mentor_2 after reassign, got %s", second.MentorID)
	}
	if second.ID != first.ID {
		t.Fatalf("reassign must overwrite the row in place, got new id %s", second.ID)
	}
	if len(repo.byMentee) != 1 {
		t.Fatalf("expected 1 row after reassign, got %d", len(repo.byMentee))
	}

	// The old pairing is gone.
	active, err := svc.IsActivePair(context.Background(), "mentor_1", "mentee_1")
	if err != nil {
		t.Fatalf("IsActivePair returned error: %v", err)
	}
	if active {
		t.Fatalf("old pairing must no longer be active")
	}
}

func TestAssignmentService_Assign_SamePairIsNoop(t *testing.T) {
	_, repo, svc := newAssignmentFixture()

	_, _ = svc.Assign(context.Background(), "mentor_1", "mentee_1")
	_, _ = svc.Assign(context.Background(), "mentor_1", "mentee_1")

	if len(repo.byMentee) != 1 {
		t.Fatalf("expected 1 row after repeated assign, got %d", len(repo.byMentee))
	}
}

func TestAssignmentService_MentorOf(t *testing.T) {
	_, _, svc := newAssignmentFixture()
	_, _ = svc.Assign(context.Background(), "mentor_1", "mentee_1")

	mentor, err := svc.MentorOf(context.Background(), "mentee_1")
	if err != nil {
		t.Fatalf("MentorOf returned error: %v", err)
	}
	if mentor == nil || mentor.ID != "mentor_1" {
		t.Fatalf("unexpected mentor: %+v", mentor)
	}

	// Unassigned mentee resolves to nil without error.
	mentor, err = svc.MentorOf(context.Background(), "mentee_2")
	if err != nil {
		t.Fatalf("MentorOf for unassigned mentee returned error: %v", err)
	}
	if mentor != nil {
		t.Fatalf("expected nil mentor for unassigned mentee, got %+v", mentor)
	}
}

func TestAssignmentService_MenteesOf_SortedByName(t *testing.T) {
	_, _, svc := newAssignmentFixture()
	_, _ = svc.Assign(context.Background(), "mentor_1", "mentee_2") // dave
	_, _ = svc.Assign(context.Background(), "mentor_1", "mentee_1") // bob

	mentees, err := svc.MenteesOf(context.Background(), "mentor_1")
	if err != nil {
		t.Fatalf("MenteesOf returned error: %v", err)
	}
	if len(mentees) != 2 {
		t.Fatalf("expected 2 mentees, got %d", len(mentees))
	}
	if mentees[0].Name != "bob" || mentees[1].Name != "dave" {
		t.Fatalf("expected name-ascending order, got %s, %s", mentees[0].Name, mentees[1].Name)
	}
}

func TestAssignmentService_MenteesOf_Validation(t *testing.T) {
	_, _, svc := newAssignmentFixture()

	if _, err := svc.MenteesOf(context.Background(), "ghost"); !errors.Is(err, domain.ErrMentorNotFound) {
		t.Fatalf("unknown id: expected ErrMentorNotFound, got %v", err)
	}
	if _, err := svc.MenteesOf(context.Background(), "mentee_1"); !errors.Is(err, domain.ErrMentorNotFound) {
		t.Fatalf("mentee id: expected ErrMentorNotFound, got %v", err)
	}

	mentees, err := svc.MenteesOf(context.Background(), "mentor_2")
	if err != nil {
		t.Fatalf("mentor without mentees: %v", err)
	}
	if len(mentees) != 0 {
		t.Fatalf("expected empty list, got %d", len(mentees))
	}
}

func TestAssignmentService_IsActivePair(t *testing.T) {
	_, _, svc := newAssignmentFixture()
	_, _ = svc.Assign(context.Background(), "mentor_1", "mentee_1")

	cases := []struct {
		mentorID, menteeID string
		want               bool
	}{
		{"mentor_1", "mentee_1", true},
		{"mentor_2", "mentee_1", false}, // different mentor
		{"mentor_1", "mentee_2", false}, // unassigned mentee
	}
	for _, tc := range cases {
		got, err := svc.IsActivePair(context.Background(), tc.mentorID, tc.menteeID)
		if err != nil {
			t.Fatalf("IsActivePair(%s, %s) returned error: %v", tc.mentorID, tc.menteeID, err)
		}
		if got != tc.want {
			t.Errorf("IsActivePair(%s, %s) = %v, want %v", tc.mentorID, tc.menteeID, got, tc.want)
		}
	}
}

func TestAssignmentService_ListMappings_ResolvesNames(t *testing.T) {
	users, _, svc := newAssignmentFixture()
	_, _ = svc.Assign(context.Background(), "mentor_1", "mentee_1")

	mappings, err := svc.ListMappings(context.Background())
	if err != nil {
		t.Fatalf("ListMappings returned error: %v", err)
	}
	if len(mappings) != 1 {
		t.Fatalf("expected 1 mapping, got %d", len(mappings))
	}
	if mappings[0].MentorName != "alice" || mappings[0].MenteeName != "bob" {
		t.Fatalf("unexpected names: %+v", mappings[0])
	}

	// A participant deleted after pairing shows as Unknown rather than failing.
	delete(users.users, "mentor_1")
	mappings, err = svc.ListMappings(context.Background())
	if err != nil {
		t.Fatalf("ListMappings returned error: %v", err)
	}
	if mappings[0].MentorName != "Unknown" {
		t.Fatalf("expected Unknown for missing mentor, got %q", mappings[0].MentorName)
	}
}
