package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/dicepass/dicepass/internal/common/uuid UUID

// UUID generates unique identifiers, so they can be fixed in tests
type UUID interface {
	NewUUID() string
}

// DefaultUUID implements the UUID interface using the uuid package
type DefaultUUID struct{}

// New creates a new UUID generator
func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new random UUID
func (d *DefaultUUID) NewUUID() string {
	return uuid.New().String()
}
