package ports

import (
	"context"

	"github.com/mentorconnect/mentorship-api/internal/core/domain"
)

// UploadResourceInput carries a resource upload. Filename and ContentType are
// the client-declared values; both must identify a PDF.
type UploadResourceInput struct {
	Title       string
	Filename    string
	ContentType string
	Data        []byte
}

// ResourceService stores and lists uploaded resources.
type ResourceService interface {
	Upload(ctx context.Context, in UploadResourceInput) (*domain.Resource, error)
	List(ctx context.Context) ([]domain.Resource, error)
}
