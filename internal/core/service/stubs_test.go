package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/mentorconnect/mentorship-api/internal/core/domain"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory user repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by id
	nextID int

	updatePasswordErr error // if set, UpdatePassword returns this error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

// seed inserts a user directly, bypassing service-level validation.
func (r *stubUserRepo) seed(id, name, role, password string) *domain.User {
	u := &domain.User{ID: id, Name: name, Role: role, Password: password}
	r.users[id] = u
	return u
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Name == user.Name && u.Role == user.Role {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	copy := cloneUser(user)
	copy.ID = fmt.Sprintf("user_%d", r.nextID)
	r.users[copy.ID] = copy
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByNameAndRole(_ context.Context, name, role string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Name == name && u.Role == role {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ListByRole(_ context.Context, role string) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, *cloneUser(u))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, id, password string) error {
	if r.updatePasswordErr != nil {
		return r.updatePasswordErr
	}
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Password = password
	return nil
}

func (r *stubUserRepo) UpdateMeetLink(_ context.Context, id, meetLink string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.MeetLink = meetLink
	return nil
}

// ---------------------------------------------------------------------------
// In-memory assignment repository
// ---------------------------------------------------------------------------

type stubAssignmentRepo struct {
	byMentee map[string]*domain.Assignment
	nextID   int
}

func newStubAssignmentRepo() *stubAssignmentRepo {
	return &stubAssignmentRepo{byMentee: make(map[string]*domain.Assignment)}
}

func (r *stubAssignmentRepo) Upsert(_ context.Context, mentorID, menteeID string) (*domain.Assignment, error) {
	if a, ok := r.byMentee[menteeID]; ok {
		a.MentorID = mentorID
		clone := *a
		return &clone, nil
	}
	r.nextID++
	a := &domain.Assignment{
		ID:       fmt.Sprintf("assignment_%d", r.nextID),
		MentorID: mentorID,
		MenteeID: menteeID,
	}
	r.byMentee[menteeID] = a
	clone := *a
	return &clone, nil
}

func (r *stubAssignmentRepo) FindByMentee(_ context.Context, menteeID string) (*domain.Assignment, error) {
	a, ok := r.byMentee[menteeID]
	if !ok {
		return nil, domain.ErrNotAssigned
	}
	clone := *a
	return &clone, nil
}

func (r *stubAssignmentRepo) ListByMentor(_ context.Context, mentorID string) ([]domain.Assignment, error) {
	var out []domain.Assignment
	for _, a := range r.byMentee {
		if a.MentorID == mentorID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubAssignmentRepo) ListAll(_ context.Context) ([]domain.Assignment, error) {
	out := make([]domain.Assignment, 0, len(r.byMentee))
	for _, a := range r.byMentee {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ---------------------------------------------------------------------------
// Pair checker stub for tests that do not need the full assignment service
// ---------------------------------------------------------------------------

type stubPairs struct {
	active bool
	err    error
}

func (p *stubPairs) IsActivePair(context.Context, string, string) (bool, error) {
	return p.active, p.err
}
