package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/farkle/internal/common/uuid UUID

// UUID generates identifiers for finished matches
type UUID interface {
	NewUUID() string
}

// Generator implements UUID with random v4 identifiers
type Generator struct{}

func New() *Generator {
	return &Generator{}
}

// NewUUID returns a new random UUID string
func (g *Generator) NewUUID() string {
	return uuid.New().String()
}
