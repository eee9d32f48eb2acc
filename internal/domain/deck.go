package domain

import (
	"errors"
	"fmt"
)

// Deck is the set of legal vote values for a room, fixed at creation
// for the room's entire lifetime.
type Deck string

const (
	DeckFibonacci Deck = "fibonacci"
	DeckOrdinal   Deck = "ordinal"
)

var ErrUnknownDeck = errors.New("unknown deck")

var deckValues = map[Deck][]int{
	DeckFibonacci: {0, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89},
	DeckOrdinal:   {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
}

// ParseDeck maps a wire string to a Deck.
func ParseDeck(s string) (Deck, error) {
	d := Deck(s)
	if _, ok := deckValues[d]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDeck, s)
	}
	return d, nil
}

// Values returns a copy of the deck's legal vote values.
func (d Deck) Values() []int {
	vals := deckValues[d]
	out := make([]int, len(vals))
	copy(out, vals)
	return out
}

func (d Deck) Contains(vote int) bool {
	for _, v := range deckValues[d] {
		if v == vote {
			return true
		}
	}
	return false
}

// InvalidVoteError carries the legal value set so a client can
// self-correct without a second round trip.
type InvalidVoteError struct {
	Vote int
	Deck Deck
}

func (e *InvalidVoteError) Error() string {
	return fmt.Sprintf("invalid vote %d: must be one of %v", e.Vote, deckValues[e.Deck])
}
