package out

import (
	"context"
	"maps"
	"slices"
	"sync"

	economyout "chorely/internal/modules/economy/port/out"
)

// MemoryStore keeps records in process. Used by tests and dry runs.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string][]byte
	writes  int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: map[string][]byte{}}
}

var _ economyout.KeyValueStore = (*MemoryStore)(nil)

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.records[key]
	return slices.Clone(v), ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = slices.Clone(value)
	s.writes++
	return nil
}

func (s *MemoryStore) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

func (s *MemoryStore) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Sorted(maps.Keys(s.records))
}
