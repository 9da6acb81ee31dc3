package passphrase

import (
	"context"
	"fmt"

	"github.com/dicepass/dicepass/internal/common/clock"
	"github.com/dicepass/dicepass/internal/common/uuid"
	"github.com/dicepass/dicepass/internal/dice"
	"github.com/dicepass/dicepass/internal/models"
	wordlistRepo "github.com/dicepass/dicepass/internal/repositories/wordlist"
)

// Generate builds the default generation stack, the embedded wordlist
// and a crypto/rand roller, and produces a passphrase of the given
// length. It is the one-call entry point for library users
func Generate(ctx context.Context, length int) (*models.Passphrase, error) {
	repo, err := wordlistRepo.NewEmbedded()
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded wordlist: %w", err)
	}

	svc, err := New(&Config{
		Length:        length,
		WordlistRepo:  repo,
		DiceRoller:    dice.New(),
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		return nil, err
	}

	output, err := svc.Generate(ctx, nil)
	if err != nil {
		return nil, err
	}

	return output.Passphrase, nil
}
