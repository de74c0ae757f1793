// Package identity provides id generators for new board entities.
package identity

import (
	"github.com/google/uuid"

	"github.com/example/gridboard/internal/ports/secondary"
)

// UUIDGenerator implements secondary.IDGenerator with random (v4) UUIDs.
type UUIDGenerator struct{}

// NewUUIDGenerator creates a new UUIDGenerator.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a fresh UUID string.
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// Ensure UUIDGenerator implements the interface
var _ secondary.IDGenerator = (*UUIDGenerator)(nil)
