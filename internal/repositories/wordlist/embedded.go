package wordlist

import (
	_ "embed"
	"strings"
)

// A wordlist in the EFF long-list format: 7776 entries, one per
// combination of five six-sided dice, indices 11111 through 66666.
//
//go:embed eff_long_wordlist.txt
var effLongWordlist string

// NewEmbedded creates a wordlist repository backed by the built-in
// wordlist, requiring no I/O at lookup time
func NewEmbedded() (*memoryRepository, error) {
	return NewMemory(&Config{
		Lines: strings.Split(strings.TrimRight(effLongWordlist, "\n"), "\n"),
	})
}
