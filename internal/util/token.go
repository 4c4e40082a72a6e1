package util

import "github.com/google/uuid"

// NewSessionToken returns an opaque random session identifier. Uniqueness
// rests on UUIDv4 randomness alone; there is no collision retry on insert.
func NewSessionToken() string {
	return uuid.NewString()
}
