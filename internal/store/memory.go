package store

import (
	"context"
	"sync"
	"time"

	"github.com/totokartonio/wishlist/internal/model"
)

// MemoryStore keeps items in memory. It backs tests and the zero-config dev
// mode; contents are lost on restart.
type MemoryStore struct {
	mu    sync.Mutex
	items map[string]model.Item
	order []string // ids, newest first
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]model.Item)}
}

// CreateItem persists a new item.
func (s *MemoryStore) CreateItem(_ context.Context, fields model.NewItem) (*model.Item, error) {
	item := newRecord(fields)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[item.ID] = item
	s.order = append([]string{item.ID}, s.order...)
	return &item, nil
}

// ListItems returns all items, newest first.
func (s *MemoryStore) ListItems(_ context.Context) ([]model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []model.Item
	for _, id := range s.order {
		items = append(items, s.items[id])
	}
	return items, nil
}

// GetItem returns an item by ID.
func (s *MemoryStore) GetItem(_ context.Context, id string) (*model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &item, nil
}

// UpdateItem merges the patch onto the stored item.
func (s *MemoryStore) UpdateItem(_ context.Context, id string, patch model.ItemPatch) (*model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return nil, ErrNotFound
	}

	patch.Apply(&item)
	item.UpdatedAt = time.Now().UTC()
	s.items[id] = item
	return &item, nil
}

// DeleteItem removes an item by ID.
func (s *MemoryStore) DeleteItem(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return ErrNotFound
	}
	delete(s.items, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
