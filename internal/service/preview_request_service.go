package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/malkhatib/portfolio-api/internal/domain"
	"github.com/malkhatib/portfolio-api/internal/repository/ports"
)

var (
	ErrRequestValidation = errors.New("preview request validation failed")
	ErrRequestNotFound   = errors.New("preview request not found")
)

// LeadNotifier tells the site owner about a new preview request. Delivery is
// best-effort; a failure never bounces the visitor's submission.
type LeadNotifier interface {
	NotifyPreviewRequest(ctx context.Context, req *domain.PreviewRequest) error
}

type PreviewRequestService struct {
	requests ports.PreviewRequestRepository
	notifier LeadNotifier
}

func NewPreviewRequestService(requests ports.PreviewRequestRepository, notifier LeadNotifier) *PreviewRequestService {
	return &PreviewRequestService{requests: requests, notifier: notifier}
}

func (s *PreviewRequestService) List(ctx context.Context) ([]domain.PreviewRequest, error) {
	if s.requests == nil {
		return nil, ErrStoreUnavailable
	}
	return s.requests.List(ctx)
}

// Create stores a visitor submission. Status is always forced to pending;
// clients do not get to pick it.
func (s *PreviewRequestService) Create(ctx context.Context, req domain.PreviewRequest) (*domain.PreviewRequest, error) {
	if s.requests == nil {
		return nil, ErrStoreUnavailable
	}

	req.ProjectTitle = strings.TrimSpace(req.ProjectTitle)
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Message = strings.TrimSpace(req.Message)

	if req.ProjectID <= 0 || req.ProjectTitle == "" || req.Name == "" || req.Email == "" || req.Phone == "" {
		return nil, fmt.Errorf("%w: missing required fields", ErrRequestValidation)
	}
	req.Status = domain.RequestPending

	created, err := s.requests.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyPreviewRequest(ctx, created); err != nil {
			log.Printf("preview-request: notify failed: %v", err)
		}
	}
	return created, nil
}

func (s *PreviewRequestService) UpdateStatus(ctx context.Context, id int64, status domain.RequestStatus) (*domain.PreviewRequest, error) {
	if s.requests == nil {
		return nil, ErrStoreUnavailable
	}
	if id <= 0 {
		return nil, fmt.Errorf("%w: id is required", ErrRequestValidation)
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrRequestValidation, status)
	}
	updated, err := s.requests.UpdateStatus(ctx, id, status)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *PreviewRequestService) Delete(ctx context.Context, id int64) error {
	if s.requests == nil {
		return ErrStoreUnavailable
	}
	if id <= 0 {
		return fmt.Errorf("%w: id is required", ErrRequestValidation)
	}
	if err := s.requests.Delete(ctx, id); err != nil {
		if isNoRows(err) {
			return ErrRequestNotFound
		}
		return err
	}
	return nil
}
