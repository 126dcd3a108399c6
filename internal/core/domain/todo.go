package domain

import (
	"errors"
	"time"
)

var ErrTodoNotFound = errors.New("todo not found")
var ErrTodoNotOwned = errors.New("todo does not belong to this mentee")

// Todo is a task assigned by a mentor to one of their mentees. Only the
// owning mentee may flip Completed.
type Todo struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	MentorID    string    `json:"mentor_id" bson:"mentor_id"`
	MenteeID    string    `json:"mentee_id" bson:"mentee_id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	DueDate     time.Time `json:"due_date" bson:"due_date"`
	Completed   bool      `json:"completed" bson:"completed"`
}
