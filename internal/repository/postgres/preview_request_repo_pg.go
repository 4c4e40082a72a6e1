package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/malkhatib/portfolio-api/internal/domain"
	"github.com/malkhatib/portfolio-api/internal/repository/ports"
)

type PreviewRequestRepository struct {
	db *sqlx.DB
}

func NewPreviewRequestRepo(db *sqlx.DB) *PreviewRequestRepository {
	return &PreviewRequestRepository{db: db}
}

const requestColumns = `id, project_id, project_title, name, email, phone, message, status, created_at`

func (r *PreviewRequestRepository) List(ctx context.Context) ([]domain.PreviewRequest, error) {
	const query = `
		SELECT ` + requestColumns + `
		FROM view_requests
		ORDER BY created_at DESC
	`
	requests := make([]domain.PreviewRequest, 0)
	if err := r.db.SelectContext(ctx, &requests, query); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *PreviewRequestRepository) Create(ctx context.Context, req domain.PreviewRequest) (*domain.PreviewRequest, error) {
	const query = `
		INSERT INTO view_requests (
			project_id, project_title, name, email, phone, message, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + requestColumns + `
	`
	row := r.db.QueryRowxContext(ctx, query,
		req.ProjectID,
		req.ProjectTitle,
		req.Name,
		req.Email,
		req.Phone,
		req.Message,
		req.Status,
	)
	var created domain.PreviewRequest
	if err := row.StructScan(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *PreviewRequestRepository) UpdateStatus(ctx context.Context, id int64, status domain.RequestStatus) (*domain.PreviewRequest, error) {
	const query = `
		UPDATE view_requests
		SET status = $2
		WHERE id = $1
		RETURNING ` + requestColumns + `
	`
	var updated domain.PreviewRequest
	if err := r.db.GetContext(ctx, &updated, query, id, status); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *PreviewRequestRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM view_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

var _ ports.PreviewRequestRepository = (*PreviewRequestRepository)(nil)
