package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/osse101/craftboard/internal/domain"
	"github.com/osse101/craftboard/internal/repository"
)

type memoryEntry struct {
	data      []byte
	updatedAt time.Time
}

// MemoryStore keeps saves in process memory. Payloads are copied on the way in and out.
type MemoryStore struct {
	mu    sync.RWMutex
	saves map[string]memoryEntry
	now   func() time.Time
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		saves: make(map[string]memoryEntry),
		now:   time.Now,
	}
}

// Load implements repository.Save
func (s *MemoryStore) Load(_ context.Context, saveID string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.saves[saveID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSaveNotFound, saveID)
	}
	return append([]byte(nil), entry.data...), nil
}

// Save implements repository.Save
func (s *MemoryStore) Save(_ context.Context, saveID string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.saves[saveID] = memoryEntry{
		data:      append([]byte(nil), data...),
		updatedAt: s.now(),
	}
	return nil
}

// Delete implements repository.Save
func (s *MemoryStore) Delete(_ context.Context, saveID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.saves, saveID)
	return nil
}

// List implements repository.Save
func (s *MemoryStore) List(_ context.Context) ([]repository.SaveInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	saves := make([]repository.SaveInfo, 0, len(s.saves))
	for id, entry := range s.saves {
		saves = append(saves, repository.SaveInfo{
			SaveID:    id,
			Size:      len(entry.data),
			UpdatedAt: entry.updatedAt,
		})
	}
	sort.Slice(saves, func(i, j int) bool { return saves[i].SaveID < saves[j].SaveID })
	return saves, nil
}

// Len returns the number of stored saves
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.saves)
}
