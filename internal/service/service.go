// Package service validates and applies wishlist operations on top of a store.
package service

import (
	"context"

	"github.com/totokartonio/wishlist/internal/model"
	"github.com/totokartonio/wishlist/internal/store"
)

// ItemService enforces field and business rules before touching the store.
type ItemService struct {
	store store.Store
}

// NewItemService creates a service over the given store.
func NewItemService(s store.Store) *ItemService {
	return &ItemService{store: s}
}

// List returns all items, newest first.
func (s *ItemService) List(ctx context.Context) ([]model.Item, error) {
	return s.store.ListItems(ctx)
}

// Get returns an item by ID.
func (s *ItemService) Get(ctx context.Context, id string) (*model.Item, error) {
	return s.store.GetItem(ctx, id)
}

// Create validates the creation fields and persists a new item. Status
// defaults to "want" and image to the placeholder when omitted.
func (s *ItemService) Create(ctx context.Context, fields model.NewItem) (*model.Item, error) {
	var missing []string
	if fields.Name == "" {
		missing = append(missing, "name")
	}
	if fields.Price == nil {
		missing = append(missing, "price")
	}
	if fields.Currency == "" {
		missing = append(missing, "currency")
	}
	if fields.Link == "" {
		missing = append(missing, "link")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Missing: missing}
	}

	if *fields.Price < 0 {
		return nil, ErrInvalidPrice
	}
	if !model.ValidCurrency(fields.Currency) {
		return nil, ErrInvalidCurrency
	}
	if fields.Status != "" && !model.ValidStatus(fields.Status) {
		return nil, ErrInvalidStatus
	}

	return s.store.CreateItem(ctx, fields)
}

// Update validates the fields present in the patch and merges them onto the
// stored item. Absent fields are left untouched.
func (s *ItemService) Update(ctx context.Context, id string, patch model.ItemPatch) (*model.Item, error) {
	if patch.Price != nil && *patch.Price < 0 {
		return nil, ErrInvalidPrice
	}
	if patch.Currency != nil && !model.ValidCurrency(*patch.Currency) {
		return nil, ErrInvalidCurrency
	}
	if patch.Status != nil && !model.ValidStatus(*patch.Status) {
		return nil, ErrInvalidStatus
	}

	return s.store.UpdateItem(ctx, id, patch)
}

// Delete removes an item by ID.
func (s *ItemService) Delete(ctx context.Context, id string) error {
	return s.store.DeleteItem(ctx, id)
}

// ChangeStatus updates only an item's status. Any status is reachable from
// any other.
func (s *ItemService) ChangeStatus(ctx context.Context, id, status string) (*model.Item, error) {
	if !model.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.store.UpdateItem(ctx, id, model.ItemPatch{Status: &status})
}
