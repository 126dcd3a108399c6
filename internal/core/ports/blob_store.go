package ports

import "context"

// BlobStore abstracts file storage for uploaded resources. Save must write
// the full buffer before returning so the database row referencing the blob
// is only committed after the file exists.
type BlobStore interface {
	Save(ctx context.Context, name string, data []byte) error
	Remove(ctx context.Context, name string) error
}
