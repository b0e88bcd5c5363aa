package out

import (
	"context"
	"sync"

	storeout "taskflows/internal/modules/store/port/out"
	apperrors "taskflows/internal/platform/errors"
)

type MemoryKeyValueStore struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func NewMemoryKeyValueStore() *MemoryKeyValueStore {
	return &MemoryKeyValueStore{entries: map[string][]byte{}}
}

func (s *MemoryKeyValueStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.entries[key]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return append([]byte(nil), value...), nil
}

func (s *MemoryKeyValueStore) Save(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = append([]byte(nil), value...)
	return nil
}

var _ storeout.KeyValueStore = (*MemoryKeyValueStore)(nil)
