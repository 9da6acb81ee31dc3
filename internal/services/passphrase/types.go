package passphrase

import (
	"github.com/sirupsen/logrus"

	"github.com/dicepass/dicepass/internal/common/clock"
	"github.com/dicepass/dicepass/internal/common/uuid"
	"github.com/dicepass/dicepass/internal/dice"
	"github.com/dicepass/dicepass/internal/models"
	wordlistRepo "github.com/dicepass/dicepass/internal/repositories/wordlist"
)

const (
	// DefaultLength is the number of words generated when no length is
	// configured
	DefaultLength = 6

	// dicePerWord is the number of dice rolled per word; five six-sided
	// dice address the 7776 entries of a Diceware wordlist
	dicePerWord = 5

	// Die faces run from dieFaceLow up to but not including dieFaceHigh
	dieFaceLow  = 1
	dieFaceHigh = 7
)

// Config holds configuration for the passphrase service
type Config struct {
	// Length is the default number of words to generate
	Length int

	// Preset is the default formatting preset
	Preset models.Preset

	// Repository dependencies
	WordlistRepo wordlistRepo.Repository

	// Service dependencies
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Logger for diagnostics; a default logger is created when nil
	Logger *logrus.Logger
}

// GenerateInput contains per-call overrides for generating a passphrase
type GenerateInput struct {
	// Length overrides the configured number of words when positive
	Length int

	// Preset overrides the configured formatting preset when set
	Preset *models.Preset
}

// GenerateOutput contains the result of generating a passphrase
type GenerateOutput struct {
	// Passphrase is the generated passphrase
	Passphrase *models.Passphrase
}
