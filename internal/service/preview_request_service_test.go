package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/malkhatib/portfolio-api/internal/domain"
)

type fakeRequestRepo struct {
	listResult []domain.PreviewRequest
	listErr    error

	created   []domain.PreviewRequest
	createErr error

	statusUpdates []struct {
		id     int64
		status domain.RequestStatus
	}
	updateErr error

	deletedID int64
	deleteErr error
}

func (f *fakeRequestRepo) List(ctx context.Context) ([]domain.PreviewRequest, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]domain.PreviewRequest(nil), f.listResult...), nil
}

func (f *fakeRequestRepo) Create(ctx context.Context, req domain.PreviewRequest) (*domain.PreviewRequest, error) {
	f.created = append(f.created, req)
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := req
	created.ID = int64(len(f.created))
	return &created, nil
}

func (f *fakeRequestRepo) UpdateStatus(ctx context.Context, id int64, status domain.RequestStatus) (*domain.PreviewRequest, error) {
	f.statusUpdates = append(f.statusUpdates, struct {
		id     int64
		status domain.RequestStatus
	}{id: id, status: status})
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &domain.PreviewRequest{ID: id, Status: status}, nil
}

func (f *fakeRequestRepo) Delete(ctx context.Context, id int64) error {
	f.deletedID = id
	return f.deleteErr
}

type fakeNotifier struct {
	notified []*domain.PreviewRequest
	err      error
}

func (f *fakeNotifier) NotifyPreviewRequest(ctx context.Context, req *domain.PreviewRequest) error {
	f.notified = append(f.notified, req)
	return f.err
}

func validRequest() domain.PreviewRequest {
	return domain.PreviewRequest{
		ProjectID:    3,
		ProjectTitle: "متجر إلكتروني",
		Name:         "محمد",
		Email:        "visitor@example.com",
		Phone:        "+9665xxxxxxx",
	}
}

func TestPreviewRequestCreateForcesPendingStatus(t *testing.T) {
	repo := &fakeRequestRepo{}
	svc := NewPreviewRequestService(repo, nil)

	req := validRequest()
	req.Status = domain.RequestContacted // client input must be ignored

	created, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.Status != domain.RequestPending {
		t.Fatalf("expected status pending, got %q", created.Status)
	}
	if repo.created[0].Status != domain.RequestPending {
		t.Fatalf("expected pending in the store, got %q", repo.created[0].Status)
	}
}

func TestPreviewRequestCreateMissingFields(t *testing.T) {
	repo := &fakeRequestRepo{}
	svc := NewPreviewRequestService(repo, nil)

	req := validRequest()
	req.Phone = "   "
	if _, err := svc.Create(context.Background(), req); !errors.Is(err, ErrRequestValidation) {
		t.Fatalf("expected ErrRequestValidation, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatal("expected no store write on validation failure")
	}
}

func TestPreviewRequestCreateNotifiesOwner(t *testing.T) {
	repo := &fakeRequestRepo{}
	notifier := &fakeNotifier{}
	svc := NewPreviewRequestService(repo, notifier)

	created, err := svc.Create(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(notifier.notified) != 1 || notifier.notified[0].ID != created.ID {
		t.Fatalf("expected one notification for the created request, got %v", notifier.notified)
	}
}

func TestPreviewRequestCreateSwallowsNotifyFailure(t *testing.T) {
	notifier := &fakeNotifier{err: errors.New("smtp: connection refused")}
	svc := NewPreviewRequestService(&fakeRequestRepo{}, notifier)

	if _, err := svc.Create(context.Background(), validRequest()); err != nil {
		t.Fatalf("expected notify failure to be swallowed, got %v", err)
	}
}

func TestPreviewRequestUpdateStatus(t *testing.T) {
	repo := &fakeRequestRepo{}
	svc := NewPreviewRequestService(repo, nil)

	updated, err := svc.UpdateStatus(context.Background(), 7, domain.RequestViewed)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.Status != domain.RequestViewed {
		t.Fatalf("expected viewed, got %q", updated.Status)
	}
}

func TestPreviewRequestUpdateStatusRejectsUnknownValue(t *testing.T) {
	repo := &fakeRequestRepo{}
	svc := NewPreviewRequestService(repo, nil)

	if _, err := svc.UpdateStatus(context.Background(), 7, "archived"); !errors.Is(err, ErrRequestValidation) {
		t.Fatalf("expected ErrRequestValidation, got %v", err)
	}
	if len(repo.statusUpdates) != 0 {
		t.Fatal("expected no store write for an unknown status")
	}
}

func TestPreviewRequestUpdateStatusNotFound(t *testing.T) {
	repo := &fakeRequestRepo{updateErr: sql.ErrNoRows}
	svc := NewPreviewRequestService(repo, nil)

	if _, err := svc.UpdateStatus(context.Background(), 42, domain.RequestViewed); !errors.Is(err, ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}
}

func TestPreviewRequestOperationsWithoutStore(t *testing.T) {
	svc := NewPreviewRequestService(nil, nil)
	ctx := context.Background()

	if _, err := svc.List(ctx); !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("list: expected ErrStoreUnavailable, got %v", err)
	}
	if _, err := svc.Create(ctx, validRequest()); !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("create: expected ErrStoreUnavailable, got %v", err)
	}
	if err := svc.Delete(ctx, 1); !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("delete: expected ErrStoreUnavailable, got %v", err)
	}
}
