// Package localstore implements the durable local slot holding the persisted
// subset of the application store under a fixed namespace.
package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"streamtube/domain/model"
	"streamtube/domain/repository"
)

// FileStore keeps the snapshot as a JSON file <dir>/<namespace>.json.
// Saves go through a temp file and rename so a crash mid-write never leaves
// a truncated snapshot behind.
type FileStore struct {
	path string
}

func NewFileStore(dir, namespace string) (repository.ISnapshot, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("localstore: creating %s: %w", dir, err)
	}
	return &FileStore{path: filepath.Join(dir, namespace+".json")}, nil
}

func (s *FileStore) Load() (*model.PersistedState, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("localstore: reading snapshot: %w", err)
	}
	var state model.PersistedState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("localstore: decoding snapshot: %w", err)
	}
	return &state, nil
}

func (s *FileStore) Save(state *model.PersistedState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("localstore: encoding snapshot: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("localstore: writing snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("localstore: replacing snapshot: %w", err)
	}
	return nil
}
