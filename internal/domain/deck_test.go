package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkeye/Poker/internal/domain"
)

func TestParseDeck(t *testing.T) {
	d, err := domain.ParseDeck("fibonacci")
	require.NoError(t, err)
	assert.Equal(t, domain.DeckFibonacci, d)

	d, err = domain.ParseDeck("ordinal")
	require.NoError(t, err)
	assert.Equal(t, domain.DeckOrdinal, d)

	_, err = domain.ParseDeck("tarot")
	assert.ErrorIs(t, err, domain.ErrUnknownDeck)
}

func TestDeckContains(t *testing.T) {
	for _, v := range []int{0, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89} {
		assert.True(t, domain.DeckFibonacci.Contains(v), "fibonacci should contain %d", v)
	}
	for _, v := range []int{4, 6, 7, 10, 100, -1} {
		assert.False(t, domain.DeckFibonacci.Contains(v), "fibonacci should not contain %d", v)
	}

	// 4 is illegal in fibonacci but legal in ordinal.
	assert.True(t, domain.DeckOrdinal.Contains(4))
	assert.True(t, domain.DeckOrdinal.Contains(0))
	assert.True(t, domain.DeckOrdinal.Contains(10))
	assert.False(t, domain.DeckOrdinal.Contains(11))
}

func TestDeckValuesReturnsCopy(t *testing.T) {
	vals := domain.DeckOrdinal.Values()
	vals[0] = 999
	assert.Equal(t, 0, domain.DeckOrdinal.Values()[0])
}
