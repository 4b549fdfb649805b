package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/totokartonio/wishlist/internal/model"
)

// SQLiteStore persists items in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a SQLite-backed store over an open database.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// CreateItem persists a new item.
func (s *SQLiteStore) CreateItem(ctx context.Context, fields model.NewItem) (*model.Item, error) {
	item := newRecord(fields)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO items (id, name, price, currency, link, image, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Name, item.Price, item.Currency, item.Link, item.Image, item.Status,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}
	return s.GetItem(ctx, item.ID)
}

// GetItem returns an item by ID.
func (s *SQLiteStore) GetItem(ctx context.Context, id string) (*model.Item, error) {
	item := &model.Item{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, price, currency, link, image, status, created_at, updated_at
		 FROM items WHERE id = ?`, id,
	).Scan(&item.ID, &item.Name, &item.Price, &item.Currency, &item.Link, &item.Image,
		&item.Status, &item.CreatedAt, &item.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return item, nil
}

// ListItems returns all items, newest first.
func (s *SQLiteStore) ListItems(ctx context.Context) ([]model.Item, error) {
	// rowid breaks created_at ties from inserts within the same instant.
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, price, currency, link, image, status, created_at, updated_at
		 FROM items ORDER BY created_at DESC, rowid DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var item model.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Currency, &item.Link,
			&item.Image, &item.Status, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// UpdateItem merges the patch onto the stored item.
func (s *SQLiteStore) UpdateItem(ctx context.Context, id string, patch model.ItemPatch) (*model.Item, error) {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(item)
	item.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx,
		`UPDATE items SET name = ?, price = ?, currency = ?, link = ?, image = ?, status = ?, updated_at = ?
		 WHERE id = ?`,
		item.Name, item.Price, item.Currency, item.Link, item.Image, item.Status, item.UpdatedAt, id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating item: %w", err)
	}
	return item, nil
}

// DeleteItem removes an item by ID.
func (s *SQLiteStore) DeleteItem(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
