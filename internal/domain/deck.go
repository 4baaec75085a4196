package domain

import (
	"fmt"
	"math/rand"
)

// NewDeck returns the 52-card deck ordered by suit, then rank.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, s := range Suits() {
		for r := Ace; r <= King; r++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// ShuffleDeck returns a shuffled copy of the given deck.
func ShuffleDeck(deck []Card, rng *rand.Rand) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// validateDeck checks that cards holds each of the 52 identities exactly once.
func validateDeck(cards []Card) error {
	if len(cards) != DeckSize {
		return fmt.Errorf("%w: %d cards, want %d", ErrInvalidDeck, len(cards), DeckSize)
	}
	var seen [DeckSize]bool
	for _, c := range cards {
		if !c.Valid() {
			return fmt.Errorf("%w: invalid card %+v", ErrInvalidDeck, c)
		}
		if seen[c.index()] {
			return fmt.Errorf("%w: duplicate card %s", ErrInvalidDeck, c)
		}
		seen[c.index()] = true
	}
	return nil
}

// Deal lays out a shuffled deck Klondike-style: round k puts one card on every
// tableau column with index >= k, column tops are turned face up and the
// remaining 24 cards go face down to the stock in deck order. The returned
// table is built off to the side, so a failed deal leaves nothing behind.
func Deal(deck []Card) (*Table, error) {
	if err := validateDeck(deck); err != nil {
		return nil, err
	}

	t := NewTable()
	next := 0
	for round := 0; round < TableauCount; round++ {
		for col := round; col < TableauCount; col++ {
			t.put(deck[next], TableauSlot(col), false)
			next++
		}
	}

	for _, slot := range TableauSlots() {
		top := t.piles[slot][len(t.piles[slot])-1]
		t.loc[top.index()].faceUp = true
	}

	for _, c := range deck[next:] {
		t.put(c, StockSlot, false)
	}
	return t, nil
}
