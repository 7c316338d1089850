// Package store implements the local JSON-backed side of the dual
// persistence layer. The file is the canonical offline cache: the system must
// stay fully usable with the remote database offline, so every operation here
// must succeed without a network.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"canetrack/internal/apperror"
	"canetrack/internal/model"
)

// LocalStore persists the full record list as one JSON array on disk.
type LocalStore struct {
	path string
}

func NewLocalStore(path string) *LocalStore {
	return &LocalStore{path: path}
}

func (s *LocalStore) Path() string { return s.path }

// Load reads all records. A missing file is an empty store, not an error.
// Unparsable content surfaces as *apperror.CorruptStoreError — the caller
// warns and proceeds from empty; the file itself is never silently rewritten.
func (s *LocalStore) Load() ([]model.Harvest, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read local store: %w", err)
	}

	var harvests []model.Harvest
	if err := json.Unmarshal(data, &harvests); err != nil {
		return nil, &apperror.CorruptStoreError{Path: s.path, Err: err}
	}
	for i := range harvests {
		harvests[i].Recompute()
	}
	return harvests, nil
}

// Save overwrites the store with the given records. The write goes to a temp
// file in the same directory followed by a rename, so a crash mid-write never
// leaves a half-written store behind.
func (s *LocalStore) Save(harvests []model.Harvest) error {
	if harvests == nil {
		harvests = []model.Harvest{}
	}
	data, err := json.MarshalIndent(harvests, "", "  ")
	if err != nil {
		return fmt.Errorf("encode local store: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".harvests-*.json")
	if err != nil {
		return fmt.Errorf("create temp store: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp store: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace local store: %w", err)
	}
	return nil
}

// Append loads, inserts, and saves. Convenience over Load+Save.
func (s *LocalStore) Append(h model.Harvest) error {
	harvests, err := s.Load()
	if err != nil {
		return err
	}
	return s.Save(append(harvests, h))
}

// Delete removes the record with the given lot ID. Returns
// *apperror.NotFoundError when the lot is not in the file.
func (s *LocalStore) Delete(lotID string) error {
	harvests, err := s.Load()
	if err != nil {
		return err
	}
	kept := harvests[:0]
	found := false
	for _, h := range harvests {
		if h.LotID == lotID {
			found = true
			continue
		}
		kept = append(kept, h)
	}
	if !found {
		return &apperror.NotFoundError{LotID: lotID}
	}
	return s.Save(kept)
}
