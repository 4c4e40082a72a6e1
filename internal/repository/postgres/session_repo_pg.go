package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/malkhatib/portfolio-api/internal/domain"
	"github.com/malkhatib/portfolio-api/internal/repository/ports"
)

type SessionRepository struct {
	db *sqlx.DB
}

func NewSessionRepo(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) CreateSession(ctx context.Context, token string, createdAt, expiresAt time.Time) (*domain.Session, error) {
	const query = `
        INSERT INTO admin_sessions (session_token, created_at, expires_at)
        VALUES ($1, $2, $3)
        RETURNING session_token, created_at, expires_at
    `
	row := r.db.QueryRowxContext(ctx, query, token, createdAt, expiresAt)
	var session domain.Session
	if err := row.StructScan(&session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) FindActiveSession(ctx context.Context, token string) (*domain.Session, error) {
	// Expired rows are never deleted here; the expiry filter is the only
	// thing keeping them out of play.
	const query = `
        SELECT session_token, created_at, expires_at
        FROM admin_sessions
        WHERE session_token = $1 AND expires_at > NOW()
    `
	var session domain.Session
	if err := r.db.GetContext(ctx, &session, query, token); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) DeleteSession(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM admin_sessions WHERE session_token = $1`, token)
	return err
}

var _ ports.SessionRepository = (*SessionRepository)(nil)
