/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package store

import (
	"sync"
	"time"
)

// MemoryProjectStore is an in-memory ProjectStore guarded by a mutex.
type MemoryProjectStore struct {
	mu   sync.RWMutex
	data map[string]Project
	now  func() time.Time
}

var _ ProjectStore = (*MemoryProjectStore)(nil)

func NewMemoryProjectStore() *MemoryProjectStore {
	return &MemoryProjectStore{
		data: make(map[string]Project),
		now:  time.Now,
	}
}

func (s *MemoryProjectStore) Put(p Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := upsert(s.data, p, s.now())
	return err
}

func (s *MemoryProjectStore) Get(namespace string, name string) (Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lookup(s.data, namespace, name)
}

func (s *MemoryProjectStore) List() ([]Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return sorted(s.data), nil
}
