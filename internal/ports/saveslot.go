package ports

import (
	"context"
	"errors"
)

// ErrNoSave is returned by ReadSave when the slot has never been written.
var ErrNoSave = errors.New("no saved game")

// SaveSlotPort stores the single saved game of one player.
type SaveSlotPort interface {
	// WriteSave replaces the slot contents with data.
	WriteSave(ctx context.Context, data []byte) error

	// ReadSave returns the slot contents, or ErrNoSave when it is empty.
	ReadSave(ctx context.Context) ([]byte, error)
}
