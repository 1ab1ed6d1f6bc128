package storage

import (
	"context"
	"time"
)

// Default expiry duration for presigned URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

// SnapshotStorage defines the interface for off-device snapshot backup
// storage. It is only ever touched while the connectivity monitor
// reports the application online; everything else works without it.
type SnapshotStorage interface {
	// UploadSnapshot stores an export snapshot under the given object key.
	UploadSnapshot(ctx context.Context, objectKey string, data []byte) error

	// DownloadSnapshot fetches a previously uploaded snapshot.
	DownloadSnapshot(ctx context.Context, objectKey string) ([]byte, error)

	// DeleteSnapshot removes a snapshot from the storage provider.
	DeleteSnapshot(ctx context.Context, objectKey string) error

	// GeneratePresignedDownloadURL creates a temporary URL that allows GET
	// requests for sharing a snapshot directly from the storage provider.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)
}
