package domain

import "fmt"

// entryRule decides whether card may land on a pile whose top is top (nil when empty).
type entryRule func(card Card, top *PlacedCard) bool

// entryRules is the per-variant validation table. Stock and waste have no
// entry rule: cards only reach them through draws and redeals.
var entryRules = map[SlotKind]entryRule{
	KindTableau:    CanEnterTableau,
	KindFoundation: CanEnterFoundation,
}

// CanEnterTableau checks the tableau building rule: a King on an empty column,
// otherwise alternate colour, one rank below a face-up top card.
func CanEnterTableau(card Card, top *PlacedCard) bool {
	if top == nil {
		return card.Rank == King
	}
	return top.FaceUp &&
		card.Color() != top.Card.Color() &&
		top.Card.Rank-card.Rank == 1
}

// CanEnterFoundation checks the foundation building rule: an Ace on an empty
// foundation, otherwise same suit, one rank above the top card.
func CanEnterFoundation(card Card, top *PlacedCard) bool {
	if top == nil {
		return card.Rank == Ace
	}
	return card.Suit == top.Card.Suit && card.Rank-top.Card.Rank == 1
}

// CanDrop validates dropping pile on target without touching the table.
// Only single cards may enter a foundation, and a pile may not be dropped back
// onto the slot it came from.
func (t *Table) CanDrop(pile []Card, target SlotID) error {
	if len(pile) == 0 {
		return fmt.Errorf("%w: empty pile", ErrBadPile)
	}
	if !target.Valid() {
		return fmt.Errorf("%w: unknown slot %d", ErrIllegalDrop, int(target))
	}
	rule, ok := entryRules[target.Kind()]
	if !ok {
		return fmt.Errorf("%w: %s accepts no drops", ErrIllegalDrop, target)
	}
	if target.Kind() == KindFoundation && len(pile) != 1 {
		return fmt.Errorf("%w: %d cards onto %s", ErrIllegalDrop, len(pile), target)
	}
	if src, ok := t.SlotOf(pile[0]); ok && src == target {
		return fmt.Errorf("%w: %s is already on %s", ErrIllegalDrop, pile[0], target)
	}

	var top *PlacedCard
	if pc, ok := t.Top(target); ok {
		top = &pc
	}
	if !rule(pile[0], top) {
		return fmt.Errorf("%w: %s onto %s", ErrIllegalDrop, pile[0], target)
	}
	return nil
}
