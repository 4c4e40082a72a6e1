package ports

import (
	"context"
	"io"
)

// ObjectStorage stores project images and returns a public URL for the
// uploaded object.
type ObjectStorage interface {
	Upload(ctx context.Context, bucket, objectName, contentType string, reader io.Reader, size int64) (string, error)
}
