package domain

import "time"

// SessionRecord is an immutable log entry for a mentoring session. Creation
// requires an active Assignment tying exactly this mentor to this mentee.
type SessionRecord struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	MentorID        string    `json:"mentor_id" bson:"mentor_id"`
	MenteeID        string    `json:"mentee_id" bson:"mentee_id"`
	Date            time.Time `json:"date" bson:"date"`
	FluencyScore    int       `json:"fluency_score" bson:"fluency_score"`
	ConfidenceScore int       `json:"confidence_score" bson:"confidence_score"`
	Notes           string    `json:"notes" bson:"notes"`
	NextSteps       string    `json:"next_steps" bson:"next_steps"`
}
