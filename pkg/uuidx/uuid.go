package uuidx

import "github.com/google/uuid"

// New returns a version 7 UUID. It panics if generation fails, which
// only happens when the system's entropy source is broken.
func New() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

// NewString returns a version 7 UUID rendered as a string. Client
// tokens and subscription ids are minted with it.
func NewString() string {
	return New().String()
}
