package domain

const (
	// DeckSize is the number of distinct cards in a Klondike game.
	DeckSize = 52
	// SuitSize is the number of ranks per suit (Ace..King).
	SuitSize = 13

	// FoundationCount is the number of foundation slots, one per suit.
	FoundationCount = 4
	// TableauCount is the number of tableau columns.
	TableauCount = 7
	// NumSlots counts every slot on the table: stock, waste, foundations and tableau.
	NumSlots = 2 + FoundationCount + TableauCount

	// DealtToTableau is the number of cards the triangular deal puts on the tableau (1+2+...+7).
	DealtToTableau = TableauCount * (TableauCount + 1) / 2
)
