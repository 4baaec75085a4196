package domain

import "errors"

var (
	ErrInvalidDeck     = errors.New("deck must hold 52 distinct cards")
	ErrUnknownCard     = errors.New("card is not on the table")
	ErrNotFaceUp       = errors.New("card is face down")
	ErrBadPile         = errors.New("pile is not the top run of a single slot")
	ErrIllegalDrop     = errors.New("target slot does not accept the pile")
	ErrCorruptSnapshot = errors.New("snapshot does not describe a 52-card table")
	ErrBrokenInvariant = errors.New("table invariant violated")
)
