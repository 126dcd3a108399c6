package domain

import "errors"

var ErrMentorNotFound = errors.New("mentor not found")
var ErrMenteeNotFound = errors.New("mentee not found")
var ErrNotAssigned = errors.New("mentee is not assigned to this mentor")
var ErrAssignmentConflict = errors.New("assignment already exists for this mentee")

// Assignment is the current mentor-mentee pairing. At most one row exists per
// mentee at any time; re-assigning overwrites the mentor in place.
type Assignment struct {
	ID       string `json:"id" bson:"_id,omitempty"`
	MentorID string `json:"mentor_id" bson:"mentor_id"`
	MenteeID string `json:"mentee_id" bson:"mentee_id"`
}
