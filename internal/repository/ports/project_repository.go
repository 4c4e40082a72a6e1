package ports

import (
	"context"

	"github.com/malkhatib/portfolio-api/internal/domain"
)

type ProjectRepository interface {
	List(ctx context.Context) ([]domain.Project, error)
	Create(ctx context.Context, fields domain.ProjectFields) (*domain.Project, error)
	Update(ctx context.Context, id int64, fields domain.ProjectFields) (*domain.Project, error)
	Delete(ctx context.Context, id int64) error
}
