package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"image"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/malkhatib/portfolio-api/internal/domain"
	"github.com/malkhatib/portfolio-api/internal/media"
)

type fakeProjectRepo struct {
	listResult []domain.Project
	listErr    error

	created   []domain.ProjectFields
	createErr error

	updatedID     int64
	updatedFields domain.ProjectFields
	updateErr     error

	deletedID int64
	deleteErr error
}

func (f *fakeProjectRepo) List(ctx context.Context) ([]domain.Project, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]domain.Project(nil), f.listResult...), nil
}

func (f *fakeProjectRepo) Create(ctx context.Context, fields domain.ProjectFields) (*domain.Project, error) {
	f.created = append(f.created, fields)
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &domain.Project{ID: int64(len(f.created)), Title: fields.Title, Category: fields.Category}, nil
}

func (f *fakeProjectRepo) Update(ctx context.Context, id int64, fields domain.ProjectFields) (*domain.Project, error) {
	f.updatedID = id
	f.updatedFields = fields
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &domain.Project{ID: id, Title: fields.Title}, nil
}

func (f *fakeProjectRepo) Delete(ctx context.Context, id int64) error {
	f.deletedID = id
	return f.deleteErr
}

type fakeObjectStorage struct {
	uploaded []struct {
		bucket      string
		objectName  string
		contentType string
		size        int64
	}
	err error
}

func (f *fakeObjectStorage) Upload(ctx context.Context, bucket, objectName, contentType string, reader io.Reader, size int64) (string, error) {
	f.uploaded = append(f.uploaded, struct {
		bucket      string
		objectName  string
		contentType string
		size        int64
	}{bucket: bucket, objectName: objectName, contentType: contentType, size: size})
	if f.err != nil {
		return "", f.err
	}
	return "https://storage/" + objectName, nil
}

func newProjectServiceForTests(repo *fakeProjectRepo, storage *fakeObjectStorage) *ProjectService {
	return NewProjectService(repo, storage, media.NewInspector(64), "uploads", 1<<20)
}

func validFields() domain.ProjectFields {
	return domain.ProjectFields{
		Title:       "متجر إلكتروني",
		Description: "متجر متكامل",
		Image:       "https://cdn.example.com/shop.png",
		Category:    "web",
	}
}

func TestProjectCreateMissingFields(t *testing.T) {
	repo := &fakeProjectRepo{}
	svc := newProjectServiceForTests(repo, nil)

	fields := validFields()
	fields.Title = "  "
	if _, err := svc.Create(context.Background(), fields); !errors.Is(err, ErrProjectValidation) {
		t.Fatalf("expected ErrProjectValidation, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatalf("expected no repo write, got %d", len(repo.created))
	}
}

func TestProjectCreateFiltersBlankSubImages(t *testing.T) {
	repo := &fakeProjectRepo{}
	svc := newProjectServiceForTests(repo, nil)

	fields := validFields()
	fields.SubImages = []string{"https://a.png", "  ", "", "https://b.png"}

	if _, err := svc.Create(context.Background(), fields); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	got := repo.created[0].SubImages
	if len(got) != 2 || got[0] != "https://a.png" || got[1] != "https://b.png" {
		t.Fatalf("expected blank sub-images filtered, got %v", got)
	}
}

func TestProjectListWithoutStore(t *testing.T) {
	svc := NewProjectService(nil, nil, media.NewInspector(64), "uploads", 1<<20)

	projects, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if projects == nil || len(projects) != 0 {
		t.Fatalf("expected an empty slice, got %v", projects)
	}
}

func TestProjectMutationsWithoutStore(t *testing.T) {
	svc := NewProjectService(nil, nil, media.NewInspector(64), "uploads", 1<<20)
	ctx := context.Background()

	if _, err := svc.Create(ctx, validFields()); !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("create: expected ErrStoreUnavailable, got %v", err)
	}
	if _, err := svc.Update(ctx, 1, validFields()); !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("update: expected ErrStoreUnavailable, got %v", err)
	}
	if err := svc.Delete(ctx, 1); !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("delete: expected ErrStoreUnavailable, got %v", err)
	}
}

func TestProjectUpdateNotFound(t *testing.T) {
	repo := &fakeProjectRepo{updateErr: sql.ErrNoRows}
	svc := newProjectServiceForTests(repo, nil)

	if _, err := svc.Update(context.Background(), 42, validFields()); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestProjectDeleteNotFound(t *testing.T) {
	repo := &fakeProjectRepo{deleteErr: sql.ErrNoRows}
	svc := newProjectServiceForTests(repo, nil)

	if err := svc.Delete(context.Background(), 42); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestUploadImageStoresAndReturnsURL(t *testing.T) {
	storage := &fakeObjectStorage{}
	svc := newProjectServiceForTests(&fakeProjectRepo{}, storage)

	data := pngBytes(t, 16, 16)
	url, err := svc.UploadImage(context.Background(), ProjectImageUpload{
		Reader:      bytes.NewReader(data),
		Size:        int64(len(data)),
		FileName:    "hero.png",
		ContentType: "image/png",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(storage.uploaded) != 1 {
		t.Fatalf("expected one upload, got %d", len(storage.uploaded))
	}
	up := storage.uploaded[0]
	if up.bucket != "uploads" || up.contentType != "image/png" {
		t.Fatalf("unexpected upload metadata: %+v", up)
	}
	if !strings.HasPrefix(up.objectName, "projects/") || !strings.HasSuffix(up.objectName, ".png") {
		t.Fatalf("unexpected object name %q", up.objectName)
	}
	if !strings.HasPrefix(url, "https://storage/projects/") {
		t.Fatalf("unexpected url %q", url)
	}
}

func TestUploadImageRejectsOversizedDimensions(t *testing.T) {
	storage := &fakeObjectStorage{}
	svc := newProjectServiceForTests(&fakeProjectRepo{}, storage)

	data := pngBytes(t, 128, 16) // inspector limit in tests is 64
	_, err := svc.UploadImage(context.Background(), ProjectImageUpload{
		Reader:      bytes.NewReader(data),
		Size:        int64(len(data)),
		FileName:    "wide.png",
		ContentType: "image/png",
	})
	if !errors.Is(err, ErrProjectValidation) {
		t.Fatalf("expected ErrProjectValidation, got %v", err)
	}
	if len(storage.uploaded) != 0 {
		t.Fatal("expected nothing to reach storage")
	}
}

func TestUploadImageWithoutStorage(t *testing.T) {
	svc := NewProjectService(&fakeProjectRepo{}, nil, media.NewInspector(64), "uploads", 1<<20)

	_, err := svc.UploadImage(context.Background(), ProjectImageUpload{
		Reader: bytes.NewReader([]byte("x")),
		Size:   1,
	})
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}
