package ports

import (
	"context"
	"time"

	"github.com/malkhatib/portfolio-api/internal/domain"
)

type SessionRepository interface {
	CreateSession(ctx context.Context, token string, createdAt, expiresAt time.Time) (*domain.Session, error)
	// FindActiveSession returns the session only while expires_at is still in
	// the future; an expired row behaves exactly like a missing one.
	FindActiveSession(ctx context.Context, token string) (*domain.Session, error)
	DeleteSession(ctx context.Context, token string) error
}
