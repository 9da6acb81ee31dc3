package passphrase

import "errors"

var (
	// ErrNilConfig is returned when New is called without a config
	ErrNilConfig = errors.New("config cannot be nil")

	// ErrNilWordlistRepo is returned when the wordlist repository is missing
	ErrNilWordlistRepo = errors.New("wordlist repository cannot be nil")

	// ErrNilDiceRoller is returned when the dice roller is missing
	ErrNilDiceRoller = errors.New("dice roller cannot be nil")

	// ErrNilClock is returned when the clock is missing
	ErrNilClock = errors.New("clock cannot be nil")

	// ErrNilUUIDGenerator is returned when the UUID generator is missing
	ErrNilUUIDGenerator = errors.New("UUID generator cannot be nil")
)
