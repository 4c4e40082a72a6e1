package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/malkhatib/portfolio-api/internal/domain"
	"github.com/malkhatib/portfolio-api/internal/repository/ports"
)

type ProjectRepository struct {
	db *sqlx.DB
}

func NewProjectRepo(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `id, title, description, image, sub_images, technologies,
	       github_url, live_url, category, created_at`

func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	const query = `
		SELECT ` + projectColumns + `
		FROM projects
		ORDER BY created_at DESC
	`
	projects := make([]domain.Project, 0)
	if err := r.db.SelectContext(ctx, &projects, query); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepository) Create(ctx context.Context, fields domain.ProjectFields) (*domain.Project, error) {
	const query = `
		INSERT INTO projects (
			title, description, image, sub_images, technologies,
			github_url, live_url, category
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + projectColumns + `
	`
	row := r.db.QueryRowxContext(ctx, query,
		fields.Title,
		fields.Description,
		fields.Image,
		stringArray(fields.SubImages),
		stringArray(fields.Technologies),
		fields.GithubURL,
		fields.LiveURL,
		fields.Category,
	)
	var project domain.Project
	if err := row.StructScan(&project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) Update(ctx context.Context, id int64, fields domain.ProjectFields) (*domain.Project, error) {
	const query = `
		UPDATE projects
		SET title = $2,
		    description = $3,
		    image = $4,
		    sub_images = $5,
		    technologies = $6,
		    github_url = $7,
		    live_url = $8,
		    category = $9
		WHERE id = $1
		RETURNING ` + projectColumns + `
	`
	var project domain.Project
	err := r.db.GetContext(ctx, &project, query,
		id,
		fields.Title,
		fields.Description,
		fields.Image,
		stringArray(fields.SubImages),
		stringArray(fields.Technologies),
		fields.GithubURL,
		fields.LiveURL,
		fields.Category,
	)
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
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

func stringArray(values []string) pq.StringArray {
	if values == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(values)
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)
