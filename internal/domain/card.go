package domain

import (
	"fmt"
	"strings"
)

// Color is the colour of a suit.
type Color int

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Suit identifies one of the four French suits.
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

var suitNames = [...]string{"hearts", "diamonds", "clubs", "spades"}

// Suits returns the four suits in deck-building order.
func Suits() []Suit {
	return []Suit{Hearts, Diamonds, Clubs, Spades}
}

// Color derives the suit colour: hearts and diamonds are red.
func (s Suit) Color() Color {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

func (s Suit) Valid() bool { return s >= Hearts && s <= Spades }

func (s Suit) String() string {
	if !s.Valid() {
		return fmt.Sprintf("suit(%d)", int(s))
	}
	return suitNames[s]
}

// Rank is the ordinal value of a card, 1 (Ace) through 13 (King).
type Rank int

const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

func (r Rank) Valid() bool { return r >= Ace && r <= King }

func (r Rank) String() string {
	switch r {
	case Ace:
		return "Ace"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	}
	if r.Valid() {
		return fmt.Sprintf("%d", int(r))
	}
	return fmt.Sprintf("rank(%d)", int(r))
}

// Card is one of the 52 (suit, rank) identities. Position and orientation
// are owned by the Table, not by the card.
type Card struct {
	Suit Suit
	Rank Rank
}

// Valid reports whether the card is one of the 52 standard identities.
func (c Card) Valid() bool { return c.Suit.Valid() && c.Rank.Valid() }

// Color is the colour of the card's suit.
func (c Card) Color() Color { return c.Suit.Color() }

// ID is the stable string key used in save documents, e.g. "King_spades".
func (c Card) ID() string {
	return c.Rank.String() + "_" + c.Suit.String()
}

func (c Card) String() string { return c.ID() }

// index maps a valid card onto 0..51.
func (c Card) index() int {
	return int(c.Suit)*SuitSize + int(c.Rank) - 1
}

// ParseCardID inverts Card.ID.
func ParseCardID(id string) (Card, error) {
	rankName, suitName, ok := strings.Cut(id, "_")
	if !ok {
		return Card{}, fmt.Errorf("malformed card id %q", id)
	}

	card := Card{Suit: -1}
	for i, name := range suitNames {
		if name == suitName {
			card.Suit = Suit(i)
			break
		}
	}
	if !card.Suit.Valid() {
		return Card{}, fmt.Errorf("unknown suit in card id %q", id)
	}

	for r := Ace; r <= King; r++ {
		if r.String() == rankName {
			card.Rank = r
			return card, nil
		}
	}
	return Card{}, fmt.Errorf("unknown rank in card id %q", id)
}

// PlacedCard is a card together with its orientation at some position.
type PlacedCard struct {
	Card   Card
	FaceUp bool
}
