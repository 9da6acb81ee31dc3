package models

// WordEntry represents a single parsed wordlist line
type WordEntry struct {
	// Index is the five-digit dice index that selects the word
	Index int

	// Word is the passphrase word mapped to the index
	Word string
}
