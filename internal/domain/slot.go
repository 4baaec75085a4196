package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// SlotKind tags the four slot variants.
type SlotKind int

const (
	KindStock SlotKind = iota
	KindWaste
	KindFoundation
	KindTableau
)

var slotKindNames = [...]string{"stock", "waste", "foundation", "tableau"}

func (k SlotKind) String() string {
	if k < KindStock || k > KindTableau {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return slotKindNames[k]
}

// SlotID addresses one of the 13 slots on the table.
type SlotID int

const (
	StockSlot SlotID = 0
	WasteSlot SlotID = 1

	firstFoundation SlotID = 2
	firstTableau    SlotID = firstFoundation + FoundationCount
)

// FoundationSlot returns the id of foundation i (0..3).
func FoundationSlot(i int) SlotID { return firstFoundation + SlotID(i) }

// TableauSlot returns the id of tableau column i (0..6), left to right.
func TableauSlot(i int) SlotID { return firstTableau + SlotID(i) }

// FoundationSlots lists the foundations in their fixed order.
func FoundationSlots() []SlotID {
	out := make([]SlotID, FoundationCount)
	for i := range out {
		out[i] = FoundationSlot(i)
	}
	return out
}

// TableauSlots lists the tableau columns left to right.
func TableauSlots() []SlotID {
	out := make([]SlotID, TableauCount)
	for i := range out {
		out[i] = TableauSlot(i)
	}
	return out
}

func (s SlotID) Valid() bool { return s >= StockSlot && s < SlotID(NumSlots) }

// Kind returns the variant of the slot.
func (s SlotID) Kind() SlotKind {
	switch {
	case s == StockSlot:
		return KindStock
	case s == WasteSlot:
		return KindWaste
	case s < firstTableau:
		return KindFoundation
	default:
		return KindTableau
	}
}

// Index is the position of the slot within its kind (always 0 for stock and waste).
func (s SlotID) Index() int {
	switch s.Kind() {
	case KindFoundation:
		return int(s - firstFoundation)
	case KindTableau:
		return int(s - firstTableau)
	default:
		return 0
	}
}

// String renders "stock", "waste", "foundation:2" or "tableau:6".
func (s SlotID) String() string {
	if !s.Valid() {
		return fmt.Sprintf("slot(%d)", int(s))
	}
	switch s.Kind() {
	case KindFoundation, KindTableau:
		return s.Kind().String() + ":" + strconv.Itoa(s.Index())
	default:
		return s.Kind().String()
	}
}

// ParseSlotID inverts SlotID.String.
func ParseSlotID(v string) (SlotID, error) {
	switch v {
	case "stock":
		return StockSlot, nil
	case "waste":
		return WasteSlot, nil
	}

	kind, idx, ok := strings.Cut(v, ":")
	if !ok {
		return 0, fmt.Errorf("malformed slot %q", v)
	}
	i, err := strconv.Atoi(idx)
	if err != nil {
		return 0, fmt.Errorf("malformed slot index %q: %w", v, err)
	}

	switch {
	case kind == "foundation" && i >= 0 && i < FoundationCount:
		return FoundationSlot(i), nil
	case kind == "tableau" && i >= 0 && i < TableauCount:
		return TableauSlot(i), nil
	}
	return 0, fmt.Errorf("unknown slot %q", v)
}
