package http

import (
	"context"
	"database/sql"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/malkhatib/portfolio-api/internal/domain"
	"github.com/malkhatib/portfolio-api/internal/service"
)

type memoryRequestRepo struct {
	requests []domain.PreviewRequest
	nextID   int64
}

func newMemoryRequestRepo() *memoryRequestRepo {
	return &memoryRequestRepo{nextID: 1}
}

func (m *memoryRequestRepo) List(ctx context.Context) ([]domain.PreviewRequest, error) {
	out := make([]domain.PreviewRequest, len(m.requests))
	copy(out, m.requests)
	return out, nil
}

func (m *memoryRequestRepo) Create(ctx context.Context, req domain.PreviewRequest) (*domain.PreviewRequest, error) {
	req.ID = m.nextID
	req.CreatedAt = time.Now()
	m.nextID++
	m.requests = append(m.requests, req)
	return &req, nil
}

func (m *memoryRequestRepo) UpdateStatus(ctx context.Context, id int64, status domain.RequestStatus) (*domain.PreviewRequest, error) {
	for i := range m.requests {
		if m.requests[i].ID == id {
			m.requests[i].Status = status
			return &m.requests[i], nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *memoryRequestRepo) Delete(ctx context.Context, id int64) error {
	for i := range m.requests {
		if m.requests[i].ID == id {
			m.requests = append(m.requests[:i], m.requests[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

func previewTestServer(t *testing.T, repo *memoryRequestRepo) (*echo.Echo, *http.Cookie) {
	t.Helper()
	e := echo.New()
	auth := service.NewAuthService(newMemorySessionRepo(), "admin", "admin123", 24*time.Hour)
	requests := service.NewPreviewRequestService(repo, nil)
	RegisterPreviewRequests(e, auth, requests)

	session, err := auth.Login(context.Background(), "admin", "admin123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	return e, &http.Cookie{Name: SessionCookieName, Value: session.Token}
}

func TestPreviewRequestCreateIsPublic(t *testing.T) {
	repo := newMemoryRequestRepo()
	e, _ := previewTestServer(t, repo)

	body := `{"projectId":3,"projectTitle":"متجر إلكتروني","name":"محمد","email":"visitor@example.com","phone":"+9665","status":"contacted"}`
	rec := doJSON(e, http.MethodPost, "/api/view-requests", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 without a session, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(repo.requests) != 1 {
		t.Fatalf("expected one stored request, got %d", len(repo.requests))
	}
	// Visitors never pick the status themselves.
	if repo.requests[0].Status != domain.RequestPending {
		t.Fatalf("expected pending status, got %s", repo.requests[0].Status)
	}
}

func TestPreviewRequestCreateMissingFields(t *testing.T) {
	e, _ := previewTestServer(t, newMemoryRequestRepo())

	rec := doJSON(e, http.MethodPost, "/api/view-requests", `{"projectId":3,"name":"محمد"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPreviewRequestListRequiresSession(t *testing.T) {
	e, cookie := previewTestServer(t, newMemoryRequestRepo())

	rec := doJSON(e, http.MethodGet, "/api/view-requests", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a session, got %d", rec.Code)
	}

	rec = doJSON(e, http.MethodGet, "/api/view-requests", "", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with a session, got %d", rec.Code)
	}
}

func TestPreviewRequestStatusUpdate(t *testing.T) {
	repo := newMemoryRequestRepo()
	if _, err := repo.Create(context.Background(), domain.PreviewRequest{
		ProjectID: 3, ProjectTitle: "متجر", Name: "محمد", Email: "v@example.com", Phone: "+9665", Status: domain.RequestPending,
	}); err != nil {
		t.Fatalf("seed request: %v", err)
	}
	e, cookie := previewTestServer(t, repo)

	rec := doJSON(e, http.MethodPut, "/api/view-requests", `{"id":1,"status":"viewed"}`, cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if repo.requests[0].Status != domain.RequestViewed {
		t.Fatalf("expected viewed, got %s", repo.requests[0].Status)
	}

	// Unknown status is a client error.
	rec = doJSON(e, http.MethodPut, "/api/view-requests", `{"id":1,"status":"archived"}`, cookie)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d", rec.Code)
	}
}

func TestPreviewRequestDelete(t *testing.T) {
	repo := newMemoryRequestRepo()
	if _, err := repo.Create(context.Background(), domain.PreviewRequest{
		ProjectID: 3, ProjectTitle: "متجر", Name: "محمد", Email: "v@example.com", Phone: "+9665", Status: domain.RequestPending,
	}); err != nil {
		t.Fatalf("seed request: %v", err)
	}
	e, cookie := previewTestServer(t, repo)

	rec := doJSON(e, http.MethodDelete, "/api/view-requests?id=1", "", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(repo.requests) != 0 {
		t.Fatal("expected request removed")
	}

	rec = doJSON(e, http.MethodDelete, "/api/view-requests?id=1", "", cookie)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing request, got %d", rec.Code)
	}
}
