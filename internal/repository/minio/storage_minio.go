package minio

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/malkhatib/portfolio-api/internal/repository/ports"
)

func NewClient(endpoint, key, secret string, useSSL bool) (*minio.Client, error) {
	return minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(key, secret, ""),
		Secure: useSSL,
	})
}

// Storage implements ports.ObjectStorage on top of a MinIO bucket. Uploaded
// objects are addressed through publicBase when set, otherwise through the
// MinIO endpoint itself.
type Storage struct {
	client     *minio.Client
	publicBase string
	useSSL     bool
	endpoint   string
}

func NewStorage(client *minio.Client, endpoint, publicBase string, useSSL bool) *Storage {
	return &Storage{
		client:     client,
		publicBase: strings.TrimRight(strings.TrimSpace(publicBase), "/"),
		useSSL:     useSSL,
		endpoint:   strings.TrimSpace(endpoint),
	}
}

func (s *Storage) Upload(ctx context.Context, bucket, objectName, contentType string, reader io.Reader, size int64) (string, error) {
	_, err := s.client.PutObject(ctx, bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return s.objectURL(bucket, objectName), nil
}

func (s *Storage) objectURL(bucket, objectName string) string {
	if s.publicBase != "" {
		return fmt.Sprintf("%s/%s/%s", s.publicBase, bucket, objectName)
	}
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, bucket, objectName)
}

var _ ports.ObjectStorage = (*Storage)(nil)
