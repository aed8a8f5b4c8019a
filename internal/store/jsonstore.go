/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// JSONProjectStore is a ProjectStore persisted to a JSON file. The file is
// an object mapping "<namespace>/<name>" to the project, e.g.:
//
//	{
//	  "user/myproj": {"name": "myproj", "namespace": "user", ...}
//	}
type JSONProjectStore struct {
	mu   sync.RWMutex
	file string
	data map[string]Project
	now  func() time.Time
}

var _ ProjectStore = (*JSONProjectStore)(nil)

// NewJSONProjectStore loads filename if it exists. Parent directories are
// created on the first Put. A file that exists but cannot be parsed is an
// error rather than silently discarded.
func NewJSONProjectStore(filename string) (*JSONProjectStore, error) {
	if filename == "" {
		return nil, ErrEmptyFilename
	}

	store := &JSONProjectStore{
		file: filename,
		data: make(map[string]Project),
		now:  time.Now,
	}
	if err := store.loadFromFile(); err != nil {
		return nil, err
	}
	return store, nil
}

// loadFromFile populates s.data from the JSON file if it exists.
func (s *JSONProjectStore) loadFromFile() error {
	info, err := os.Stat(s.file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %v", ErrPathIsDirectory, s.file)
	}

	f, err := os.Open(s.file)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()

	var raw map[string]Project
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("failed to parse %v: %w", s.file, err)
	}
	if raw == nil {
		raw = make(map[string]Project)
	}
	s.data = raw
	return nil
}

// persist writes the current map to disk atomically via a temporary file
// and rename. Callers hold s.mu.
func (s *JSONProjectStore) persist() error {
	encoded, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.file)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tmpPath := s.file + ".tmp"
	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	if _, err := f.Write(encoded); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmpPath, s.file)
}

// Put updates the in-memory map and then persists it. When persisting
// fails the update is rolled back so memory and disk agree.
func (s *JSONProjectStore) Put(p Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.data[p.Key()]
	if _, err := upsert(s.data, p, s.now()); err != nil {
		return err
	}
	if err := s.persist(); err != nil {
		if existed {
			s.data[p.Key()] = prev
		} else {
			delete(s.data, p.Key())
		}
		return fmt.Errorf("failed to save %v: %w", s.file, err)
	}
	return nil
}

func (s *JSONProjectStore) Get(namespace string, name string) (Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lookup(s.data, namespace, name)
}

func (s *JSONProjectStore) List() ([]Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return sorted(s.data), nil
}
