package repository

import (
	"context"
	"sync"

	"github.com/Kalpana12-cmd/amazon/internal/app/model"
)

// MemoryStorage implements CartStorage with in-memory storage. It is
// the default local backend and the backend used by tests.
type MemoryStorage struct {
	mu    sync.RWMutex
	slots map[string][]model.CartLineItem
}

// NewMemoryStorage creates a new in-memory cart storage
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		slots: make(map[string][]model.CartLineItem),
	}
}

func (s *MemoryStorage) Save(_ context.Context, key string, items []model.CartLineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]model.CartLineItem, len(items))
	copy(stored, items)
	s.slots[key] = stored
	return nil
}

func (s *MemoryStorage) Load(_ context.Context, key string) ([]model.CartLineItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, exists := s.slots[key]
	if !exists {
		return nil, ErrSlotEmpty
	}

	items := make([]model.CartLineItem, len(stored))
	copy(items, stored)
	return items, nil
}
