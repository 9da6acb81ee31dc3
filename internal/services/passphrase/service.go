package passphrase

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/dicepass/dicepass/internal/common/clock"
	"github.com/dicepass/dicepass/internal/common/uuid"
	"github.com/dicepass/dicepass/internal/dice"
	"github.com/dicepass/dicepass/internal/models"
	wordlistRepo "github.com/dicepass/dicepass/internal/repositories/wordlist"
)

// service implements the Service interface
type service struct {
	length int
	preset models.Preset

	wordlistRepo  wordlistRepo.Repository
	diceRoller    dice.Roller
	clock         clock.Clock
	uuidGenerator uuid.UUID
	logger        *logrus.Logger
}

// New creates a new passphrase service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.WordlistRepo == nil {
		return nil, ErrNilWordlistRepo
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	length := cfg.Length
	if length <= 0 {
		length = DefaultLength
	}

	preset := cfg.Preset
	if preset.Style == "" {
		preset = models.DefaultPreset()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.New()
	}

	return &service{
		length:        length,
		preset:        preset,
		wordlistRepo:  cfg.WordlistRepo,
		diceRoller:    cfg.DiceRoller,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        logger,
	}, nil
}

// Generate rolls dice, resolves each roll against the wordlist and
// assembles a passphrase. Rolls without a matching entry are skipped, so
// the result may hold fewer words than requested
func (s *service) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	length := s.length
	preset := s.preset

	if input != nil {
		if input.Length > 0 {
			length = input.Length
		}

		if input.Preset != nil {
			preset = *input.Preset
		}
	}

	rolls := s.diceRoller.Roll(length, dicePerWord, dieFaceLow, dieFaceHigh)

	words := make([]string, 0, length)
	for _, roll := range rolls {
		index := dice.ToIndex(roll)

		output, err := s.wordlistRepo.GetWord(ctx, &wordlistRepo.GetWordInput{
			Index: index,
		})
		if err != nil {
			if errors.Is(err, wordlistRepo.ErrWordNotFound) {
				s.logger.WithField("index", index).Debug("no word for rolled index, skipping")
				continue
			}

			return nil, fmt.Errorf("failed to look up word: %w", err)
		}

		words = append(words, output.Entry.Word)
	}

	countOutput, err := s.wordlistRepo.CountEntries(ctx, &wordlistRepo.CountEntriesInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to count wordlist entries: %w", err)
	}

	phrase := &models.Passphrase{
		ID:          s.uuidGenerator.NewUUID(),
		Words:       words,
		Preset:      preset,
		Entropy:     models.NewEntropy(countOutput.Count, length),
		GeneratedAt: s.clock.Now(),
	}

	// Words never reach the log, only counts and the generation id
	s.logger.WithFields(logrus.Fields{
		"passphrase_id": phrase.ID,
		"requested":     length,
		"resolved":      len(words),
		"possibilities": countOutput.Count,
	}).Debug("generated passphrase")

	return &GenerateOutput{
		Passphrase: phrase,
	}, nil
}
