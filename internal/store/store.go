package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/totokartonio/wishlist/internal/model"
)

// ErrNotFound is returned when an item does not exist in the store.
var ErrNotFound = errors.New("item not found")

// Store persists wishlist items. Implementations must assign IDs and
// timestamps on create and return ErrNotFound for unknown IDs.
type Store interface {
	// CreateItem persists a new item, assigning its ID and timestamps and
	// filling empty optional fields with defaults.
	CreateItem(ctx context.Context, fields model.NewItem) (*model.Item, error)
	// ListItems returns all items, newest first.
	ListItems(ctx context.Context) ([]model.Item, error)
	// GetItem returns an item by ID.
	GetItem(ctx context.Context, id string) (*model.Item, error)
	// UpdateItem merges the patch onto the stored item and returns the result.
	UpdateItem(ctx context.Context, id string, patch model.ItemPatch) (*model.Item, error)
	// DeleteItem removes an item by ID.
	DeleteItem(ctx context.Context, id string) error
}

// newRecord builds a full item record from creation fields, assigning a fresh
// ID and timestamps and defaulting empty optional fields.
func newRecord(fields model.NewItem) model.Item {
	item := model.Item{
		ID:       uuid.NewString(),
		Name:     fields.Name,
		Currency: fields.Currency,
		Link:     fields.Link,
		Image:    fields.Image,
		Status:   fields.Status,
	}
	if fields.Price != nil {
		item.Price = *fields.Price
	}
	if item.Currency == "" {
		item.Currency = model.CurrencyUSD
	}
	if item.Image == "" {
		item.Image = model.DefaultImage
	}
	if item.Status == "" {
		item.Status = model.StatusWant
	}

	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	return item
}
