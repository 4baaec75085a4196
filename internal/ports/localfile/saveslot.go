// Package localfile keeps the save slot in a JSON file on local disk.
package localfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"klondike/internal/ports"
)

// FileName is the name of the save file inside a slot directory.
const FileName = "saved_game.json"

// SaveSlot stores one saved game at <dir>/saved_game.json. Writes go to a
// temporary file first and are renamed into place, so a crash never leaves a
// half-written save behind.
type SaveSlot struct {
	mu  *sync.Mutex
	dir string
}

// NewSaveSlot creates dir if needed and returns the slot inside it.
func NewSaveSlot(dir string) (*SaveSlot, error) {
	if dir == "" {
		return nil, errors.New("save directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create save directory: %w", err)
	}
	return &SaveSlot{mu: &sync.Mutex{}, dir: dir}, nil
}

// ForUser returns the slot of one user, kept in a subdirectory named after
// the user id.
func (s *SaveSlot) ForUser(userID string) (*SaveSlot, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		userID = "default"
	}
	if userID != filepath.Base(userID) || userID == "." || userID == ".." {
		return nil, fmt.Errorf("invalid user id %q", userID)
	}
	dir := filepath.Join(s.dir, userID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create save directory: %w", err)
	}
	return &SaveSlot{mu: s.mu, dir: dir}, nil
}

// Path is the location of the save file.
func (s *SaveSlot) Path() string {
	return filepath.Join(s.dir, FileName)
}

func (s *SaveSlot) WriteSave(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, FileName+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp save: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write save: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path()); err != nil {
		return fmt.Errorf("failed to replace save: %w", err)
	}
	return nil
}

func (s *SaveSlot) ReadSave(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ports.ErrNoSave
		}
		return nil, fmt.Errorf("failed to read save: %w", err)
	}
	return b, nil
}

var _ ports.SaveSlotPort = (*SaveSlot)(nil)
