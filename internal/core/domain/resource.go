package domain

import (
	"errors"
	"time"
)

var ErrInvalidFileType = errors.New("only PDF files are accepted")
var ErrInvalidInput = errors.New("invalid input")

// Resource is an uploaded document visible to all authenticated roles.
// URL is a relative reference to the stored file, never a filesystem path.
type Resource struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	Title      string    `json:"title" bson:"title"`
	URL        string    `json:"url" bson:"url"`
	UploadedAt time.Time `json:"uploaded_at" bson:"uploaded_at"`
}
