package wordlist

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/dicepass/dicepass/internal/models"
)

// ErrWordNotFound is returned when no entry matches a dice index
var ErrWordNotFound = errors.New("word not found")

// Config holds configuration for the in-memory wordlist repository
type Config struct {
	// Lines holds raw wordlist lines in "<index> <word>" form
	Lines []string
}

// memoryRepository implements the Repository interface using an index map
// built once at construction time
type memoryRepository struct {
	entries map[int]*models.WordEntry
	count   int
}

// NewMemory creates a new in-memory wordlist repository. Lines that do
// not parse as "<index> <word>" are dropped. When two lines share an
// index the first one wins lookups, but both count as entries
func NewMemory(cfg *Config) (*memoryRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	entries := make(map[int]*models.WordEntry)
	count := 0

	for _, line := range cfg.Lines {
		entry, ok := parseLine(line)
		if !ok {
			continue
		}

		count++

		if _, exists := entries[entry.Index]; exists {
			continue
		}

		entries[entry.Index] = entry
	}

	return &memoryRepository{
		entries: entries,
		count:   count,
	}, nil
}

// GetWord retrieves the entry mapped to a dice index
func (r *memoryRepository) GetWord(ctx context.Context, input *GetWordInput) (*GetWordOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	stored, ok := r.entries[input.Index]
	if !ok {
		return nil, ErrWordNotFound
	}

	entry := *stored

	return &GetWordOutput{
		Entry: &entry,
	}, nil
}

// CountEntries returns the number of usable entries in the wordlist
func (r *memoryRepository) CountEntries(ctx context.Context, input *CountEntriesInput) (*CountEntriesOutput, error) {
	return &CountEntriesOutput{
		Count: r.count,
	}, nil
}

// parseLine splits a raw line into its entry. The first token must be a
// non-negative decimal index and the second the word; extra tokens are
// ignored
func parseLine(line string) (*models.WordEntry, bool) {
	components := strings.Fields(line)
	if len(components) < 2 {
		return nil, false
	}

	index, err := strconv.Atoi(components[0])
	if err != nil || index < 0 {
		return nil, false
	}

	return &models.WordEntry{
		Index: index,
		Word:  components[1],
	}, true
}
