package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/totokartonio/wishlist/internal/model"
)

const itemsListKey = "items"

// RedisStore persists items in Redis: one JSON blob per item plus a list of
// IDs kept in newest-first order.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func itemKey(id string) string {
	return fmt.Sprintf("item:%s", id)
}

// CreateItem persists a new item.
func (s *RedisStore) CreateItem(ctx context.Context, fields model.NewItem) (*model.Item, error) {
	item := newRecord(fields)
	data, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("encoding item: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, itemKey(item.ID), data, 0)
	pipe.LPush(ctx, itemsListKey, item.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}
	return &item, nil
}

// GetItem retrieves an item by ID.
func (s *RedisStore) GetItem(ctx context.Context, id string) (*model.Item, error) {
	data, err := s.client.Get(ctx, itemKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting item: %w", err)
	}

	var item model.Item
	if err := json.Unmarshal([]byte(data), &item); err != nil {
		return nil, fmt.Errorf("decoding item: %w", err)
	}
	return &item, nil
}

// ListItems returns all items, newest first.
func (s *RedisStore) ListItems(ctx context.Context) ([]model.Item, error) {
	ids, err := s.client.LRange(ctx, itemsListKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	pipe := s.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, itemKey(id))
	}
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}

	items := make([]model.Item, 0, len(ids))
	for _, cmd := range cmds {
		data, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("listing items: %w", err)
		}
		var item model.Item
		if err := json.Unmarshal([]byte(data), &item); err != nil {
			return nil, fmt.Errorf("decoding item: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}

// UpdateItem merges the patch onto the stored item.
func (s *RedisStore) UpdateItem(ctx context.Context, id string, patch model.ItemPatch) (*model.Item, error) {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(item)
	item.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("encoding item: %w", err)
	}
	if err := s.client.Set(ctx, itemKey(id), data, 0).Err(); err != nil {
		return nil, fmt.Errorf("updating item: %w", err)
	}
	return item, nil
}

// DeleteItem removes an item by ID.
func (s *RedisStore) DeleteItem(ctx context.Context, id string) error {
	// Existence check so a missing ID is reported as not found.
	if _, err := s.GetItem(ctx, id); err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, itemKey(id))
	pipe.LRem(ctx, itemsListKey, 0, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	return nil
}
