package models

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	delimDefault = " "
	delimPascal  = ""
	delimKebab   = "-"
	delimSnake   = "_"
)

// Passphrase represents a generated Diceware passphrase
type Passphrase struct {
	// ID is the unique identifier for the generation
	ID string

	// Words contains the resolved passphrase words in roll order
	Words []string

	// Preset is the formatting preset the passphrase carries
	Preset Preset

	// Entropy describes the strength of the passphrase
	Entropy Entropy

	// GeneratedAt is when the passphrase was generated
	GeneratedAt time.Time
}

// Format renders the passphrase using its own preset
func (p *Passphrase) Format() string {
	return p.FormatWith(p.Preset)
}

// FormatWith renders the passphrase using the given preset. The
// passphrase itself is never modified, so repeated calls always produce
// the same string
func (p *Passphrase) FormatWith(preset Preset) string {
	switch preset.Style {
	case PresetStylePascal:
		return p.formatUsing(delimPascal, true)
	case PresetStyleKebab:
		return p.formatUsing(delimKebab, false)
	case PresetStyleSnake:
		return p.formatUsing(delimSnake, false)
	case PresetStyleArbitrary:
		delimiter := delimDefault
		if preset.Delimiter != nil {
			delimiter = *preset.Delimiter
		}

		return p.formatUsing(delimiter, preset.Capitalize)
	default:
		return p.formatUsing(delimDefault, false)
	}
}

// formatUsing joins the words with a delimiter, optionally capitalizing
// each word
func (p *Passphrase) formatUsing(delimiter string, capitalize bool) string {
	words := p.Words
	if capitalize {
		caser := cases.Upper(language.English)

		words = lo.Map(p.Words, func(word string, _ int) string {
			return capitalizeWord(caser, word)
		})
	}

	return strings.Join(words, delimiter)
}

// capitalizeWord uppercases the leading rune of a word and leaves the
// rest untouched, so characters after an inner hyphen, apostrophe or
// digit keep their case
func capitalizeWord(caser cases.Caser, word string) string {
	_, size := utf8.DecodeRuneInString(word)
	if size == 0 {
		return word
	}

	return caser.String(word[:size]) + word[size:]
}
