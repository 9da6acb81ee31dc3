package models

import "math"

// Entropy describes the strength of a generated passphrase
type Entropy struct {
	// Possibilities is the number of wordlist entries each word was
	// drawn from
	Possibilities int

	// Bits is the entropy of the whole passphrase in bits
	Bits float64
}

// NewEntropy calculates entropy for a wordlist size and phrase length
func NewEntropy(possibilities, phraseLength int) Entropy {
	return Entropy{
		Possibilities: possibilities,
		Bits:          CalcEntropy(possibilities, phraseLength),
	}
}

// CalcEntropy returns log2(possibilities) * phraseLength, the entropy in
// bits of a phrase whose words are drawn uniformly from a wordlist
func CalcEntropy(possibilities, phraseLength int) float64 {
	return math.Log2(float64(possibilities)) * float64(phraseLength)
}
