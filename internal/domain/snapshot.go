package domain

import "fmt"

// Snapshot is a detached record of every slot's pile and every card's
// orientation. The zero value is an empty table; snapshots are never mutated
// after construction.
type Snapshot struct {
	piles [NumSlots][]PlacedCard
}

// Snapshot captures the current table.
func (t *Table) Snapshot() Snapshot {
	var s Snapshot
	for i, pile := range t.piles {
		out := make([]PlacedCard, len(pile))
		for j, c := range pile {
			out[j] = PlacedCard{Card: c, FaceUp: t.loc[c.index()].faceUp}
		}
		s.piles[i] = out
	}
	return s
}

// NewSnapshot builds a snapshot from per-slot piles (indexed by SlotID) after
// checking that they hold each of the 52 identities exactly once.
func NewSnapshot(piles [NumSlots][]PlacedCard) (Snapshot, error) {
	var s Snapshot
	for i, pile := range piles {
		s.piles[i] = append(make([]PlacedCard, 0, len(pile)), pile...)
	}
	if err := s.Validate(); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}

// Pile returns a copy of the recorded pile for slot.
func (s Snapshot) Pile(slot SlotID) []PlacedCard {
	if !slot.Valid() {
		return nil
	}
	return append(make([]PlacedCard, 0, len(s.piles[slot])), s.piles[slot]...)
}

// Validate checks the 52-unique-identity property.
func (s Snapshot) Validate() error {
	var seen [DeckSize]bool
	total := 0
	for i, pile := range s.piles {
		for _, pc := range pile {
			if !pc.Card.Valid() {
				return fmt.Errorf("%w: invalid card %+v on %s", ErrCorruptSnapshot, pc.Card, SlotID(i))
			}
			if seen[pc.Card.index()] {
				return fmt.Errorf("%w: %s appears twice", ErrCorruptSnapshot, pc.Card)
			}
			seen[pc.Card.index()] = true
			total++
		}
	}
	if total != DeckSize {
		return fmt.Errorf("%w: %d cards, want %d", ErrCorruptSnapshot, total, DeckSize)
	}
	return nil
}

// Equal reports whether both snapshots assign every card to the same slot,
// position and orientation.
func (s Snapshot) Equal(other Snapshot) bool {
	for i := range s.piles {
		if len(s.piles[i]) != len(other.piles[i]) {
			return false
		}
		for j := range s.piles[i] {
			if s.piles[i][j] != other.piles[i][j] {
				return false
			}
		}
	}
	return true
}

// Restore builds a fresh table from a snapshot. The snapshot is validated
// first, so callers can swap the result in wholesale or keep their old table.
func Restore(s Snapshot) (*Table, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	t := NewTable()
	for i, pile := range s.piles {
		for _, pc := range pile {
			t.put(pc.Card, SlotID(i), pc.FaceUp)
		}
	}
	return t, nil
}
