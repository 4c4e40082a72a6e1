package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/malkhatib/portfolio-api/internal/domain"
	"github.com/malkhatib/portfolio-api/internal/media"
	"github.com/malkhatib/portfolio-api/internal/repository/ports"
)

var (
	ErrProjectValidation  = errors.New("project validation failed")
	ErrProjectNotFound    = errors.New("project not found")
	ErrStoreUnavailable   = errors.New("database is not available")
	ErrStorageUnavailable = errors.New("object storage is not available")
)

type ProjectImageUpload struct {
	Reader      io.Reader
	Size        int64
	FileName    string
	ContentType string
}

// ProjectService owns the portfolio project lifecycle. Both repositories may
// be nil: projects then lists as empty and every mutation fails with
// ErrStoreUnavailable, matching the degraded mode of the rest of the system.
type ProjectService struct {
	projects ports.ProjectRepository
	storage  ports.ObjectStorage

	inspector     *media.Inspector
	bucket        string
	maxImageBytes int64
}

func NewProjectService(projects ports.ProjectRepository, storage ports.ObjectStorage, inspector *media.Inspector, bucket string, maxImageBytes int64) *ProjectService {
	if maxImageBytes <= 0 {
		maxImageBytes = 5 * 1024 * 1024
	}
	return &ProjectService{
		projects:      projects,
		storage:       storage,
		inspector:     inspector,
		bucket:        strings.TrimSpace(bucket),
		maxImageBytes: maxImageBytes,
	}
}

// List returns all projects newest first. With no store configured the
// public site still renders, just with an empty showcase.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	if s.projects == nil {
		return []domain.Project{}, nil
	}
	return s.projects.List(ctx)
}

func (s *ProjectService) Create(ctx context.Context, fields domain.ProjectFields) (*domain.Project, error) {
	if s.projects == nil {
		return nil, ErrStoreUnavailable
	}
	normalized, err := normalizeProjectFields(fields)
	if err != nil {
		return nil, err
	}
	return s.projects.Create(ctx, normalized)
}

func (s *ProjectService) Update(ctx context.Context, id int64, fields domain.ProjectFields) (*domain.Project, error) {
	if s.projects == nil {
		return nil, ErrStoreUnavailable
	}
	if id <= 0 {
		return nil, fmt.Errorf("%w: id is required", ErrProjectValidation)
	}
	normalized, err := normalizeProjectFields(fields)
	if err != nil {
		return nil, err
	}
	project, err := s.projects.Update(ctx, id, normalized)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	if s.projects == nil {
		return ErrStoreUnavailable
	}
	if id <= 0 {
		return fmt.Errorf("%w: id is required", ErrProjectValidation)
	}
	if err := s.projects.Delete(ctx, id); err != nil {
		if isNoRows(err) {
			return ErrProjectNotFound
		}
		return err
	}
	return nil
}

// UploadImage validates an admin-supplied image and stores it, returning the
// public URL to be saved on a project.
func (s *ProjectService) UploadImage(ctx context.Context, upload ProjectImageUpload) (string, error) {
	if s.storage == nil {
		return "", ErrStorageUnavailable
	}
	if upload.Size > s.maxImageBytes {
		return "", fmt.Errorf("%w: image exceeds %d bytes", ErrProjectValidation, s.maxImageBytes)
	}

	data, err := io.ReadAll(io.LimitReader(upload.Reader, s.maxImageBytes+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > s.maxImageBytes {
		return "", fmt.Errorf("%w: image exceeds %d bytes", ErrProjectValidation, s.maxImageBytes)
	}

	info, err := s.inspector.Inspect(data, upload.ContentType, upload.FileName)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProjectValidation, err)
	}

	objectName := fmt.Sprintf("projects/%s%s", uuid.NewString(), extensionFor(info.ContentType, upload.FileName))
	url, err := s.storage.Upload(ctx, s.bucket, objectName, info.ContentType, bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	return url, nil
}

func normalizeProjectFields(fields domain.ProjectFields) (domain.ProjectFields, error) {
	fields.Title = strings.TrimSpace(fields.Title)
	fields.Description = strings.TrimSpace(fields.Description)
	fields.Image = strings.TrimSpace(fields.Image)
	fields.Category = strings.TrimSpace(fields.Category)
	fields.GithubURL = strings.TrimSpace(fields.GithubURL)
	fields.LiveURL = strings.TrimSpace(fields.LiveURL)

	if fields.Title == "" || fields.Description == "" || fields.Image == "" || fields.Category == "" {
		return fields, fmt.Errorf("%w: missing required fields", ErrProjectValidation)
	}

	fields.SubImages = filterBlank(fields.SubImages)
	if fields.Technologies == nil {
		fields.Technologies = []string{}
	}
	return fields, nil
}

func filterBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func extensionFor(contentType, fileName string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	}
	if ext := filepath.Ext(fileName); ext != "" {
		return strings.ToLower(ext)
	}
	return ""
}
