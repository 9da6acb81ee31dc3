package wordlist

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/dicepass/dicepass/internal/repositories/wordlist Repository

import (
	"context"
)

// Repository defines the interface for wordlist lookups
type Repository interface {
	// GetWord retrieves the entry mapped to a dice index
	GetWord(ctx context.Context, input *GetWordInput) (*GetWordOutput, error)

	// CountEntries returns the number of usable entries in the wordlist
	CountEntries(ctx context.Context, input *CountEntriesInput) (*CountEntriesOutput, error)
}
