package passphrase

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/dicepass/dicepass/internal/services/passphrase Service

// Service defines the interface for passphrase generation
type Service interface {
	// Generate rolls dice, resolves words and assembles a passphrase
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
}
