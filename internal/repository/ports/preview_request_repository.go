package ports

import (
	"context"

	"github.com/malkhatib/portfolio-api/internal/domain"
)

type PreviewRequestRepository interface {
	List(ctx context.Context) ([]domain.PreviewRequest, error)
	Create(ctx context.Context, req domain.PreviewRequest) (*domain.PreviewRequest, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RequestStatus) (*domain.PreviewRequest, error)
	Delete(ctx context.Context, id int64) error
}
