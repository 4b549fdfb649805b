package store

import (
	"context"
	"errors"
	"testing"

	"github.com/totokartonio/wishlist/internal/db"
	"github.com/totokartonio/wishlist/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	return NewSQLiteStore(db.NewTestDB(t))
}

func TestCreateAndGetItem(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	item, err := s.CreateItem(ctx, model.NewItem{
		Name:     "Sony headphones",
		Price:    ptr(100),
		Currency: model.CurrencyUSD,
		Link:     "https://amazon.de",
	})
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if item.ID == "" {
		t.Error("expected a generated id")
	}
	if item.Status != model.StatusWant {
		t.Errorf("expected status 'want', got %q", item.Status)
	}
	if item.Image != model.DefaultImage {
		t.Errorf("expected image %q, got %q", model.DefaultImage, item.Image)
	}

	got, err := s.GetItem(ctx, item.ID)
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if got.Name != item.Name || got.Price != item.Price || got.Currency != item.Currency || got.Link != item.Link {
		t.Errorf("round-trip mismatch: created %+v, got %+v", item, got)
	}
}

func TestGetItemNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetItem(context.Background(), "no-such-id")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListItemsNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, _ := s.CreateItem(ctx, model.NewItem{Name: "First", Price: ptr(1), Link: "https://a"})
	second, _ := s.CreateItem(ctx, model.NewItem{Name: "Second", Price: ptr(2), Link: "https://b"})
	third, _ := s.CreateItem(ctx, model.NewItem{Name: "Third", Price: ptr(3), Link: "https://c"})

	items, err := s.ListItems(ctx)
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].ID != third.ID || items[1].ID != second.ID || items[2].ID != first.ID {
		t.Errorf("expected newest-first order, got %q, %q, %q", items[0].Name, items[1].Name, items[2].Name)
	}
}

func TestUpdateItemPartial(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	item, _ := s.CreateItem(ctx, model.NewItem{
		Name:     "Keyboard",
		Price:    ptr(150),
		Currency: model.CurrencyUSD,
		Link:     "https://keychron.com",
	})

	status := model.StatusBought
	updated, err := s.UpdateItem(ctx, item.ID, model.ItemPatch{Status: &status})
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if updated.Status != model.StatusBought {
		t.Errorf("expected status 'bought', got %q", updated.Status)
	}
	if updated.Name != item.Name || updated.Price != item.Price || updated.Link != item.Link {
		t.Error("expected unpatched fields to be preserved")
	}
}

func TestUpdateItemNotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.CreateItem(ctx, model.NewItem{Name: "Existing", Price: ptr(1), Link: "https://a"})

	name := "Renamed"
	_, err := s.UpdateItem(ctx, "no-such-id", model.ItemPatch{Name: &name})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	items, _ := s.ListItems(ctx)
	if len(items) != 1 || items[0].Name != "Existing" {
		t.Error("expected store to be unchanged after failed update")
	}
}

func TestDeleteItem(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	item, _ := s.CreateItem(ctx, model.NewItem{Name: "Delete Me", Price: ptr(1), Link: "https://a"})

	if err := s.DeleteItem(ctx, item.ID); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}

	items, _ := s.ListItems(ctx)
	if len(items) != 0 {
		t.Errorf("expected 0 items after delete, got %d", len(items))
	}

	if err := s.DeleteItem(ctx, item.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for second delete, got %v", err)
	}
}

func TestSeed(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := Seed(ctx, s); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	items, _ := s.ListItems(ctx)
	if len(items) != 3 {
		t.Fatalf("expected 3 seeded items, got %d", len(items))
	}

	// Seeding again must not duplicate.
	if err := Seed(ctx, s); err != nil {
		t.Fatalf("second Seed: %v", err)
	}
	items, _ = s.ListItems(ctx)
	if len(items) != 3 {
		t.Errorf("expected seeding to be skipped on non-empty store, got %d items", len(items))
	}
}
