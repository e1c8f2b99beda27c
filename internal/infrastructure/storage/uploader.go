package storage

import "context"

// Uploader is the image hosting contract: raw image bytes plus a
// destination folder in, a public HTTPS URL plus an opaque id out.
// Re-uploading under the same derived key overwrites; callers must not
// rely on deduplication.
type Uploader interface {
	Upload(ctx context.Context, data []byte, folder string) (publicURL, publicID string, err error)
}
