package id

import "github.com/google/uuid"

// Generator creates opaque identifiers.
type Generator interface {
	New() string
}

// UUID generates random (v4) UUID strings.
type UUID struct{}

func (UUID) New() string {
	return uuid.NewString()
}
