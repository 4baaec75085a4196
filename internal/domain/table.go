package domain

import "fmt"

// location is the lookup-only record of where a card currently sits.
type location struct {
	slot   SlotID
	faceUp bool
	placed bool
}

// Table is the arena owning every slot's pile. Cards are plain values; the
// slot a card belongs to is looked up here and only changed by Table methods.
type Table struct {
	piles [NumSlots][]Card
	loc   [DeckSize]location
}

// NewTable returns a table with all 13 slots empty.
func NewTable() *Table {
	return &Table{}
}

// put appends c to slot. Only used while building a table from scratch.
func (t *Table) put(c Card, slot SlotID, faceUp bool) {
	t.piles[slot] = append(t.piles[slot], c)
	t.loc[c.index()] = location{slot: slot, faceUp: faceUp, placed: true}
}

// Pile returns a copy of the slot's pile, bottom to top.
func (t *Table) Pile(slot SlotID) []Card {
	if !slot.Valid() {
		return nil
	}
	return append([]Card(nil), t.piles[slot]...)
}

// Len is the number of cards in slot.
func (t *Table) Len(slot SlotID) int {
	if !slot.Valid() {
		return 0
	}
	return len(t.piles[slot])
}

// Top returns the top card of slot and its orientation.
func (t *Table) Top(slot SlotID) (PlacedCard, bool) {
	if !slot.Valid() || len(t.piles[slot]) == 0 {
		return PlacedCard{}, false
	}
	c := t.piles[slot][len(t.piles[slot])-1]
	return PlacedCard{Card: c, FaceUp: t.loc[c.index()].faceUp}, true
}

// SlotOf reports which slot holds c.
func (t *Table) SlotOf(c Card) (SlotID, bool) {
	if !c.Valid() || !t.loc[c.index()].placed {
		return 0, false
	}
	return t.loc[c.index()].slot, true
}

// IsFaceUp reports the orientation of c.
func (t *Table) IsFaceUp(c Card) bool {
	return c.Valid() && t.loc[c.index()].faceUp
}

// IsTop reports whether c is the top card of its slot.
func (t *Table) IsTop(c Card) bool {
	slot, ok := t.SlotOf(c)
	if !ok {
		return false
	}
	top, _ := t.Top(slot)
	return top.Card == c
}

// position is the index of c inside its slot's pile, or -1.
func (t *Table) position(c Card) int {
	slot, ok := t.SlotOf(c)
	if !ok {
		return -1
	}
	for i, pc := range t.piles[slot] {
		if pc == c {
			return i
		}
	}
	return -1
}

// Turn sets the orientation of c without moving it.
func (t *Table) Turn(c Card, faceUp bool) error {
	if _, ok := t.SlotOf(c); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCard, c)
	}
	t.loc[c.index()].faceUp = faceUp
	return nil
}

// DraggablePile resolves which cards travel together when c is picked up:
// on the tableau, c and everything stacked on it (c must be face up);
// anywhere else, c alone.
func (t *Table) DraggablePile(c Card) ([]Card, error) {
	slot, ok := t.SlotOf(c)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCard, c)
	}
	if slot.Kind() != KindTableau {
		return []Card{c}, nil
	}
	if !t.IsFaceUp(c) {
		return nil, fmt.Errorf("%w: %s", ErrNotFaceUp, c)
	}
	pos := t.position(c)
	return append([]Card(nil), t.piles[slot][pos:]...), nil
}

// Move relocates pile onto the tail of target, keeping order and orientation.
// pile must be the top run of one slot. Source and target piles are rebuilt
// before being swapped in, so a rejected move changes nothing.
func (t *Table) Move(pile []Card, target SlotID) error {
	if len(pile) == 0 {
		return fmt.Errorf("%w: empty pile", ErrBadPile)
	}
	if !target.Valid() {
		return fmt.Errorf("%w: unknown slot %d", ErrBadPile, int(target))
	}
	src, ok := t.SlotOf(pile[0])
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCard, pile[0])
	}
	if src == target {
		return fmt.Errorf("%w: source and target are both %s", ErrBadPile, src)
	}

	from := t.piles[src]
	start := len(from) - len(pile)
	if start < 0 {
		return fmt.Errorf("%w: %d cards requested from %s holding %d", ErrBadPile, len(pile), src, len(from))
	}
	for i, c := range pile {
		if from[start+i] != c {
			return fmt.Errorf("%w: %s is not at position %d of %s", ErrBadPile, c, start+i, src)
		}
	}

	newFrom := append([]Card(nil), from[:start]...)
	newTo := make([]Card, 0, len(t.piles[target])+len(pile))
	newTo = append(newTo, t.piles[target]...)
	newTo = append(newTo, pile...)

	t.piles[src] = newFrom
	t.piles[target] = newTo
	for _, c := range pile {
		t.loc[c.index()].slot = target
	}
	return nil
}

// FoundationTotal is the number of cards on all four foundations.
func (t *Table) FoundationTotal() int {
	n := 0
	for _, slot := range FoundationSlots() {
		n += len(t.piles[slot])
	}
	return n
}

// IsWon reports whether every card has reached the foundations.
func (t *Table) IsWon() bool {
	return t.FoundationTotal() == DeckSize
}

// Validate checks the structural invariants of the table.
func (t *Table) Validate() error {
	var seen [DeckSize]bool
	total := 0
	for s := range t.piles {
		slot := SlotID(s)
		for _, c := range t.piles[s] {
			if !c.Valid() {
				return fmt.Errorf("%w: invalid card %+v on %s", ErrBrokenInvariant, c, slot)
			}
			if seen[c.index()] {
				return fmt.Errorf("%w: %s appears twice", ErrBrokenInvariant, c)
			}
			seen[c.index()] = true
			if l := t.loc[c.index()]; !l.placed || l.slot != slot {
				return fmt.Errorf("%w: %s lookup disagrees with %s", ErrBrokenInvariant, c, slot)
			}
			total++
		}
	}
	if total != DeckSize {
		return fmt.Errorf("%w: %d cards on table", ErrBrokenInvariant, total)
	}

	for _, slot := range FoundationSlots() {
		for i, c := range t.piles[slot] {
			if c.Rank != Rank(i+1) || c.Suit != t.piles[slot][0].Suit {
				return fmt.Errorf("%w: %s out of sequence on %s", ErrBrokenInvariant, c, slot)
			}
		}
	}

	for _, slot := range TableauSlots() {
		pile := t.piles[slot]
		for i := len(pile) - 1; i > 0; i-- {
			upper, lower := pile[i], pile[i-1]
			if !t.IsFaceUp(upper) || !t.IsFaceUp(lower) {
				break
			}
			if upper.Color() == lower.Color() || lower.Rank-upper.Rank != 1 {
				return fmt.Errorf("%w: %s on %s breaks the run on %s", ErrBrokenInvariant, upper, lower, slot)
			}
		}
	}
	return nil
}
