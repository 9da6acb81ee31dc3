package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalcEntropy(t *testing.T) {
	// The EFF long list with six words is the canonical strength example
	assert.InDelta(t, 77.5489, CalcEntropy(7776, 6), 0.001)

	assert.InDelta(t, 12.9248, CalcEntropy(7776, 1), 0.001)
	assert.Equal(t, 0.0, CalcEntropy(7776, 0))
	assert.Equal(t, 0.0, CalcEntropy(1, 6))
}

func TestCalcEntropy_NoPossibilities(t *testing.T) {
	assert.True(t, math.IsInf(CalcEntropy(0, 6), -1))
}

func TestNewEntropy(t *testing.T) {
	entropy := NewEntropy(7776, 6)

	assert.Equal(t, 7776, entropy.Possibilities)
	assert.InDelta(t, 77.5489, entropy.Bits, 0.001)
}
