package dice

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/dicepass/dicepass/internal/dice Roller

// Roller provides dice rolling functionality
type Roller interface {
	// Roll performs runs independent rolls of dice dice each, with faces
	// drawn uniformly from the half-open range [low, high)
	Roll(runs, dice, low, high int) [][]int
}

// DefaultRoller implements the Roller interface using crypto/rand
type DefaultRoller struct{}

// New creates a new dice roller
func New() *DefaultRoller {
	return &DefaultRoller{}
}

// Roll performs runs independent rolls of dice dice each. An empty face
// range panics, as does a failing platform RNG
func (r *DefaultRoller) Roll(runs, dice, low, high int) [][]int {
	rolls := make([][]int, 0, runs)

	for i := 0; i < runs; i++ {
		faces := make([]int, 0, dice)
		for j := 0; j < dice; j++ {
			faces = append(faces, rollFace(low, high))
		}

		rolls = append(rolls, faces)
	}

	return rolls
}

// rollFace draws one face from [low, high). rand.Int rejects a span of
// zero or less, which turns a low >= high contract violation into a panic
func rollFace(low, high int) int {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(high-low)))
	if err != nil {
		panic(fmt.Sprintf("dice: failed to read random source: %v", err))
	}

	return low + int(n.Int64())
}

// ToIndex reduces a set of rolled faces to a single number, the index of
// a word in a Diceware wordlist. ToIndex([]int{5, 2, 3, 1, 6}) is 52316
func ToIndex(faces []int) int {
	index := 0
	for _, face := range faces {
		index = index*10 + face
	}

	return index
}
