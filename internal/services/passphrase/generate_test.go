package passphrase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	phrase, err := Generate(context.Background(), 6)
	require.NoError(t, err)
	require.NotNil(t, phrase)

	// The embedded list covers every rollable index, so nothing is skipped
	assert.Len(t, phrase.Words, 6)
	for _, word := range phrase.Words {
		assert.NotEmpty(t, word)
	}

	assert.NotEmpty(t, phrase.ID)
	assert.False(t, phrase.GeneratedAt.IsZero())
	assert.Equal(t, 7776, phrase.Entropy.Possibilities)
	assert.InDelta(t, 77.5489, phrase.Entropy.Bits, 0.001)
}

func TestGenerate_ZeroLengthUsesDefault(t *testing.T) {
	phrase, err := Generate(context.Background(), 0)
	require.NoError(t, err)

	assert.Len(t, phrase.Words, DefaultLength)
}
