package cli

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/dicepass/dicepass/internal/services/passphrase"
)

// ErrEmptyPassphrase is returned when generation resolved no words at
// all. Its text is shown to the user verbatim
var ErrEmptyPassphrase = errors.New("Couldn't generate a passphrase with given parameters.")

// Handler runs generation requests and renders the result to a terminal
type Handler struct {
	passphraseService passphrase.Service
	logger            *logrus.Logger
	out               io.Writer
}

// Config holds the configuration for the terminal handler
type Config struct {
	// Passphrase service
	PassphraseService passphrase.Service

	// Logger for diagnostics; a default logger is created when nil
	Logger *logrus.Logger

	// Out is where rendered output is written; defaults to stdout
	Out io.Writer
}

// RunInput contains parameters for one generation run
type RunInput struct {
	// ShowEntropy prints possibilities and entropy below the passphrase
	ShowEntropy bool
}

// New creates a new terminal handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.PassphraseService == nil {
		return nil, errors.New("passphrase service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.New()
	}

	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}

	return &Handler{
		passphraseService: cfg.PassphraseService,
		logger:            logger,
		out:               out,
	}, nil
}

// Run generates a passphrase and renders it. A generation that resolves
// no words returns ErrEmptyPassphrase
func (h *Handler) Run(ctx context.Context, input *RunInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	output, err := h.passphraseService.Generate(ctx, nil)
	if err != nil {
		return err
	}

	phrase := output.Passphrase
	if len(phrase.Words) == 0 {
		h.logger.WithField("passphrase_id", phrase.ID).Debug("generation resolved no words")
		return ErrEmptyPassphrase
	}

	h.renderPassphrase(phrase)

	if input.ShowEntropy {
		h.renderEntropy(phrase.Entropy)
	}

	return nil
}
