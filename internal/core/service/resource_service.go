package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mentorconnect/mentorship-api/internal/core/domain"
	"github.com/mentorconnect/mentorship-api/internal/core/ports"
)

// ResourceService stores uploaded PDFs and their records.
type ResourceService struct {
	resources ports.ResourceRepository
	blobs     ports.BlobStore
	log       zerolog.Logger
}

func NewResourceService(resources ports.ResourceRepository, blobs ports.BlobStore, log zerolog.Logger) *ResourceService {
	return &ResourceService{resources: resources, blobs: blobs, log: log}
}

// Upload validates the file, writes the blob under a generated collision-free
// name, then commits the resource record. Only PDF content is accepted: both
// the filename extension and the declared content type are checked before any
// byte is written.
func (s *ResourceService) Upload(ctx context.Context, in ports.UploadResourceInput) (*domain.Resource, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" || len(in.Data) == 0 {
		return nil, domain.ErrInvalidInput
	}

	if !strings.HasSuffix(strings.ToLower(in.Filename), ".pdf") {
		return nil, domain.ErrInvalidFileType
	}
	if mediaType := strings.ToLower(strings.TrimSpace(strings.SplitN(in.ContentType, ";", 2)[0])); mediaType != "application/pdf" {
		return nil, domain.ErrInvalidFileType
	}

	// The stored name is opaque and decoupled from the user-supplied title.
	name := generateFilename()
	if err := s.blobs.Save(ctx, name, in.Data); err != nil {
		return nil, fmt.Errorf("save blob: %w", err)
	}

	resource, err := s.resources.Create(ctx, &domain.Resource{
		Title:      title,
		URL:        "uploads/" + name,
		UploadedAt: time.Now().UTC(),
	})
	if err != nil {
		// The row never committed; drop the orphaned blob.
		if rmErr := s.blobs.Remove(ctx, name); rmErr != nil {
			s.log.Warn().Err(rmErr).Str("file", name).Msg("failed to remove orphaned blob")
		}
		return nil, err
	}

	s.log.Info().Str("resource_id", resource.ID).Str("file", name).Msg("resource uploaded")
	return resource, nil
}

// List returns all resources newest first.
func (s *ResourceService) List(ctx context.Context) ([]domain.Resource, error) {
	return s.resources.ListAll(ctx)
}

// generateFilename returns a collision-free opaque name in the format
// res-XXXXXXXXXXXXXXXX.pdf.
func generateFilename() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("res-%016X.pdf", time.Now().UnixNano())
	}
	return fmt.Sprintf("res-%X.pdf", b)
}
