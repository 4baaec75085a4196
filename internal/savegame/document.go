// Package savegame defines the single-slot save document: a JSON object with
// stock, waste, foundation and tableau arrays of [card_id, face_up] pairs.
package savegame

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"klondike/internal/domain"
)

// ErrCorrupt marks a document that cannot describe a 52-card table.
var ErrCorrupt = errors.New("corrupt save document")

// Entry is one card in a pile, encoded as ["King_spades", true].
type Entry struct {
	ID     string
	FaceUp bool
}

func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{e.ID, e.FaceUp})
}

// UnmarshalJSON accepts the pair form and the legacy bare-string form, which
// carries no orientation and is read as face down.
func (e *Entry) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*e = Entry{ID: id}
		return nil
	}

	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("card entry must be [id, face_up] or id: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("card entry has %d elements, want 2", len(pair))
	}
	var out Entry
	if err := json.Unmarshal(pair[0], &out.ID); err != nil {
		return fmt.Errorf("card entry id: %w", err)
	}
	if err := json.Unmarshal(pair[1], &out.FaceUp); err != nil {
		return fmt.Errorf("card entry face_up: %w", err)
	}
	*e = out
	return nil
}

// Document is the persisted table. Array order is bottom to top.
type Document struct {
	Stock      []Entry   `json:"stock"`
	Waste      []Entry   `json:"waste"`
	Foundation [][]Entry `json:"foundation"`
	Tableau    [][]Entry `json:"tableau"`
}

// FromSnapshot converts a snapshot into a document. Empty piles are kept as
// empty arrays so the encoding is stable.
func FromSnapshot(s domain.Snapshot) Document {
	doc := Document{
		Stock:      entries(s.Pile(domain.StockSlot)),
		Waste:      entries(s.Pile(domain.WasteSlot)),
		Foundation: make([][]Entry, domain.FoundationCount),
		Tableau:    make([][]Entry, domain.TableauCount),
	}
	for i, slot := range domain.FoundationSlots() {
		doc.Foundation[i] = entries(s.Pile(slot))
	}
	for i, slot := range domain.TableauSlots() {
		doc.Tableau[i] = entries(s.Pile(slot))
	}
	return doc
}

func entries(pile []domain.PlacedCard) []Entry {
	out := make([]Entry, len(pile))
	for i, pc := range pile {
		out[i] = Entry{ID: pc.Card.ID(), FaceUp: pc.FaceUp}
	}
	return out
}

// Snapshot validates the document and converts it back into a snapshot.
func (d Document) Snapshot() (domain.Snapshot, error) {
	if len(d.Foundation) != domain.FoundationCount {
		return domain.Snapshot{}, fmt.Errorf("%w: %d foundation piles, want %d", ErrCorrupt, len(d.Foundation), domain.FoundationCount)
	}
	if len(d.Tableau) != domain.TableauCount {
		return domain.Snapshot{}, fmt.Errorf("%w: %d tableau piles, want %d", ErrCorrupt, len(d.Tableau), domain.TableauCount)
	}

	var piles [domain.NumSlots][]domain.PlacedCard
	fill := func(slot domain.SlotID, in []Entry) error {
		pile := make([]domain.PlacedCard, 0, len(in))
		for _, e := range in {
			c, err := domain.ParseCardID(e.ID)
			if err != nil {
				return fmt.Errorf("%w: %s: %v", ErrCorrupt, slot, err)
			}
			pile = append(pile, domain.PlacedCard{Card: c, FaceUp: e.FaceUp})
		}
		piles[slot] = pile
		return nil
	}

	if err := fill(domain.StockSlot, d.Stock); err != nil {
		return domain.Snapshot{}, err
	}
	if err := fill(domain.WasteSlot, d.Waste); err != nil {
		return domain.Snapshot{}, err
	}
	for i, slot := range domain.FoundationSlots() {
		if err := fill(slot, d.Foundation[i]); err != nil {
			return domain.Snapshot{}, err
		}
	}
	for i, slot := range domain.TableauSlots() {
		if err := fill(slot, d.Tableau[i]); err != nil {
			return domain.Snapshot{}, err
		}
	}

	snap, err := domain.NewSnapshot(piles)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return snap, nil
}

// Encode renders the document. The output is deterministic for a given document.
func Encode(d Document) ([]byte, error) {
	return json.Marshal(d)
}

// Decode parses and validates a saved document.
func Decode(data []byte) (domain.Snapshot, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return doc.Snapshot()
}
