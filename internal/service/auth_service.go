package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"log"
	"time"

	"github.com/malkhatib/portfolio-api/internal/domain"
	"github.com/malkhatib/portfolio-api/internal/repository/ports"
	"github.com/malkhatib/portfolio-api/internal/util"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService issues, validates and revokes the single shared admin session.
// There is no user table: the admin identity is one configured credential
// pair. When sessions is nil the service runs in degraded mode and trusts
// cookie presence alone; see Check.
type AuthService struct {
	sessions ports.SessionRepository

	adminUsername string
	adminPassword string
	sessionTTL    time.Duration

	now func() time.Time
}

func NewAuthService(sessions ports.SessionRepository, adminUsername, adminPassword string, sessionTTL time.Duration) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &AuthService{
		sessions:      sessions,
		adminUsername: adminUsername,
		adminPassword: adminPassword,
		sessionTTL:    sessionTTL,
		now:           time.Now,
	}
}

// Login checks the credentials against the configured pair and mints a fresh
// session on success. A store write failure is logged but does not block
// issuance: the caller still gets a token and the session degrades to
// cookie-only trust. This mirrors the original behavior and is a known weak
// point, not a feature to lean on.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.adminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) == 1
	if !userOK || !passOK {
		return nil, ErrInvalidCredentials
	}

	now := s.now()
	session := &domain.Session{
		Token:     util.NewSessionToken(),
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}

	if s.sessions == nil {
		log.Println("auth: session store disabled, using cookie-based session")
		return session, nil
	}

	if _, err := s.sessions.CreateSession(ctx, session.Token, session.CreatedAt, session.ExpiresAt); err != nil {
		log.Printf("auth: persist session failed: %v", err)
	}
	return session, nil
}

// Check reports whether the given cookie token identifies a live session.
// Fail closed: not-found, expired and store errors are all "not
// authenticated". The one exception is the degraded mode without a session
// store, where any non-empty token passes.
func (s *AuthService) Check(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	if s.sessions == nil {
		return true
	}
	session, err := s.sessions.FindActiveSession(ctx, token)
	if err != nil || session == nil {
		return false
	}
	return true
}

// Logout deletes the session row best-effort and always succeeds: once the
// cookie is gone the client is logged out regardless of store state.
func (s *AuthService) Logout(ctx context.Context, token string) {
	if token == "" || s.sessions == nil {
		return
	}
	if err := s.sessions.DeleteSession(ctx, token); err != nil {
		log.Printf("auth: delete session failed: %v", err)
	}
}

// SessionTTL exposes the configured lifetime so the transport layer can set
// a matching cookie Max-Age.
func (s *AuthService) SessionTTL() time.Duration {
	return s.sessionTTL
}
