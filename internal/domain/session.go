package domain

import "time"

type Session struct {
	Token     string    `db:"session_token" json:"token"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
}

// Expired reports whether the session is past its expiry at the given
// instant. Expired rows stay in the store; validity is enforced at read time.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
