package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin  = "admin"
	RoleMentor = "mentor"
	RoleMentee = "mentee"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user with this name and role already exists")
var ErrInvalidRole = errors.New("invalid role")
var ErrForbidden = errors.New("access forbidden")
var ErrInvalidMeetLink = errors.New("meet link must be a valid http(s) URL")

// ValidRole reports whether role is one of the three recognized roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleMentor || role == RoleMentee
}

// User models an authenticated actor in the system. Password holds either a
// bcrypt hash or, for legacy seeded accounts, the plaintext value pending
// migration on first successful login. Names are unique per (name, role).
type User struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Role      string    `json:"role" bson:"role"`
	Password  string    `json:"-" bson:"password"`
	MeetLink  string    `json:"meet_link,omitempty" bson:"meet_link,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
