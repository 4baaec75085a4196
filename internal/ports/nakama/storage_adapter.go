package nakama

import (
	"context"
	"fmt"

	"klondike/internal/ports"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

// storageModule is the part of runtime.NakamaModule the save slot uses.
type storageModule interface {
	StorageRead(ctx context.Context, reads []*runtime.StorageRead) ([]*api.StorageObject, error)
	StorageWrite(ctx context.Context, writes []*runtime.StorageWrite) ([]*api.StorageObjectAck, error)
}

// StorageSaveSlot keeps one user's saved game as a Nakama storage object the
// owner can read and write.
type StorageSaveSlot struct {
	nk     storageModule
	userID string
}

// NewStorageSaveSlot returns the save slot of userID.
func NewStorageSaveSlot(nk storageModule, userID string) (*StorageSaveSlot, error) {
	if nk == nil {
		return nil, fmt.Errorf("nakama module is required")
	}
	if userID == "" {
		return nil, fmt.Errorf("userID is required")
	}
	return &StorageSaveSlot{nk: nk, userID: userID}, nil
}

// WriteSave overwrites the slot unconditionally.
func (s *StorageSaveSlot) WriteSave(ctx context.Context, data []byte) error {
	writes := []*runtime.StorageWrite{
		{
			Collection:      saveCollection,
			Key:             saveKey,
			UserID:          s.userID,
			Value:           string(data),
			PermissionRead:  runtime.STORAGE_PERMISSION_OWNER_READ,
			PermissionWrite: runtime.STORAGE_PERMISSION_OWNER_WRITE,
		},
	}
	if _, err := s.nk.StorageWrite(ctx, writes); err != nil {
		return fmt.Errorf("failed to write save slot: %w", err)
	}
	return nil
}

func (s *StorageSaveSlot) ReadSave(ctx context.Context) ([]byte, error) {
	reads := []*runtime.StorageRead{
		{
			Collection: saveCollection,
			Key:        saveKey,
			UserID:     s.userID,
		},
	}
	objects, err := s.nk.StorageRead(ctx, reads)
	if err != nil {
		return nil, fmt.Errorf("failed to read save slot: %w", err)
	}
	for _, obj := range objects {
		if obj.GetKey() == saveKey && obj.GetUserId() == s.userID {
			return []byte(obj.GetValue()), nil
		}
	}
	return nil, ports.ErrNoSave
}

var _ ports.SaveSlotPort = (*StorageSaveSlot)(nil)
