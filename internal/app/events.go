package app

import "klondike/internal/domain"

// EventKind identifies emitted game events for Nakama dispatch.
type EventKind string

const (
	EventDealt     EventKind = "dealt"
	EventDrawn     EventKind = "drawn"
	EventRecycled  EventKind = "recycled"
	EventMoved     EventKind = "moved"
	EventRevealed  EventKind = "revealed"
	EventUndone    EventKind = "undone"
	EventRestarted EventKind = "restarted"
	EventSaved     EventKind = "saved"
	EventLoaded    EventKind = "loaded"
	EventGameWon   EventKind = "game_won"
)

// Event is an app event produced by a Game operation.
type Event struct {
	Kind    EventKind
	Payload any
}

type DealtPayload struct {
	GameID string
}

type DrawnPayload struct {
	Card domain.Card
}

type RecycledPayload struct {
	Cards           int
	PassesRemaining int
}

type MovedPayload struct {
	Cards  []domain.Card
	From   domain.SlotID
	To     domain.SlotID
	Points int
}

type RevealedPayload struct {
	Card   domain.Card
	Points int
}

type UndonePayload struct {
	Frames int // frames left in history
}

type GameWonPayload struct {
	Score         int
	Bonus         int
	TimeRemaining int
}
