package auth

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
)

// MarkerStore persists the minimal identity marker that lets a session
// resume across restarts.
type MarkerStore interface {
	Save(actor *Actor) error
	Load() (*Actor, error)
	Clear() error
}

// FileMarkerStore keeps the marker as a small JSON file, the register's
// stand-in for browser local storage.
type FileMarkerStore struct {
	path string
}

// NewFileMarkerStore creates a FileMarkerStore writing to the given
// path.
func NewFileMarkerStore(path string) *FileMarkerStore {
	return &FileMarkerStore{path: path}
}

// Save writes the marker, replacing any previous one.
func (f *FileMarkerStore) Save(actor *Actor) error {
	data, err := json.Marshal(actor)
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o600)
}

// Load returns the persisted marker, or nil without error when none
// has been written.
func (f *FileMarkerStore) Load() (*Actor, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var actor Actor
	if err := json.Unmarshal(data, &actor); err != nil {
		return nil, err
	}
	return &actor, nil
}

// Clear erases the marker. Clearing an absent marker is a no-op.
func (f *FileMarkerStore) Clear() error {
	err := os.Remove(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// MemoryMarkerStore is an in-memory MarkerStore for tests.
type MemoryMarkerStore struct {
	actor *Actor
}

// NewMemoryMarkerStore instantiates an empty MemoryMarkerStore.
func NewMemoryMarkerStore() *MemoryMarkerStore {
	return &MemoryMarkerStore{}
}

func (m *MemoryMarkerStore) Save(actor *Actor) error {
	copied := *actor
	m.actor = &copied
	return nil
}

func (m *MemoryMarkerStore) Load() (*Actor, error) {
	return m.actor, nil
}

func (m *MemoryMarkerStore) Clear() error {
	m.actor = nil
	return nil
}
