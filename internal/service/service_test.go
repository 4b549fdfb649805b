package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/totokartonio/wishlist/internal/model"
	"github.com/totokartonio/wishlist/internal/store"
)

func ptr[T any](v T) *T { return &v }

func newTestService() *ItemService {
	return NewItemService(store.NewMemoryStore())
}

func validFields() model.NewItem {
	return model.NewItem{
		Name:     "Sony headphones",
		Price:    ptr(100.0),
		Currency: model.CurrencyUSD,
		Link:     "https://amazon.de",
	}
}

func TestCreateDefaults(t *testing.T) {
	svc := newTestService()

	item, err := svc.Create(context.Background(), validFields())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if item.Status != model.StatusWant {
		t.Errorf("expected status 'want', got %q", item.Status)
	}
	if item.Image != model.DefaultImage {
		t.Errorf("expected image %q, got %q", model.DefaultImage, item.Image)
	}
	if item.ID == "" {
		t.Error("expected a generated id")
	}
	if item.Name != "Sony headphones" || item.Price != 100 || item.Currency != "USD" || item.Link != "https://amazon.de" {
		t.Errorf("expected required fields echoed back, got %+v", item)
	}
}

func TestCreateMissingFields(t *testing.T) {
	tests := []struct {
		name    string
		fields  model.NewItem
		missing []string
	}{
		{"all missing", model.NewItem{}, []string{"name", "price", "currency", "link"}},
		{"no name", model.NewItem{Price: ptr(1.0), Currency: "USD", Link: "https://a"}, []string{"name"}},
		{"no price", model.NewItem{Name: "A", Currency: "USD", Link: "https://a"}, []string{"price"}},
		{"no currency", model.NewItem{Name: "A", Price: ptr(1.0), Link: "https://a"}, []string{"currency"}},
		{"no link", model.NewItem{Name: "A", Price: ptr(1.0), Currency: "USD"}, []string{"link"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService()
			_, err := svc.Create(context.Background(), tt.fields)

			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if !reflect.DeepEqual(vErr.Missing, tt.missing) {
				t.Errorf("expected missing %v, got %v", tt.missing, vErr.Missing)
			}

			items, _ := svc.List(context.Background())
			if len(items) != 0 {
				t.Error("expected nothing persisted after failed validation")
			}
		})
	}
}

func TestCreateNegativePrice(t *testing.T) {
	svc := newTestService()

	fields := validFields()
	fields.Price = ptr(-5.0)

	_, err := svc.Create(context.Background(), fields)
	if !errors.Is(err, ErrInvalidPrice) {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}

	items, _ := svc.List(context.Background())
	if len(items) != 0 {
		t.Error("expected nothing persisted after invalid price")
	}
}

func TestCreateZeroPriceAllowed(t *testing.T) {
	svc := newTestService()

	fields := validFields()
	fields.Price = ptr(0.0)

	if _, err := svc.Create(context.Background(), fields); err != nil {
		t.Errorf("expected zero price to be accepted, got %v", err)
	}
}

func TestCreateInvalidEnums(t *testing.T) {
	svc := newTestService()

	fields := validFields()
	fields.Currency = "GBP"
	if _, err := svc.Create(context.Background(), fields); !errors.Is(err, ErrInvalidCurrency) {
		t.Errorf("expected ErrInvalidCurrency, got %v", err)
	}

	fields = validFields()
	fields.Status = "wanted"
	if _, err := svc.Create(context.Background(), fields); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestUpdatePartial(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	item, _ := svc.Create(ctx, validFields())

	updated, err := svc.Update(ctx, item.ID, model.ItemPatch{Price: ptr(80.0)})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Price != 80 {
		t.Errorf("expected price 80, got %v", updated.Price)
	}
	if updated.Name != item.Name || updated.Status != item.Status {
		t.Error("expected absent fields to be untouched")
	}
}

func TestUpdateNegativePrice(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	item, _ := svc.Create(ctx, validFields())

	_, err := svc.Update(ctx, item.ID, model.ItemPatch{Price: ptr(-1.0)})
	if !errors.Is(err, ErrInvalidPrice) {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}

	got, _ := svc.Get(ctx, item.ID)
	if got.Price != 100 {
		t.Errorf("expected price unchanged after failed update, got %v", got.Price)
	}
}

func TestUpdateNotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.Update(context.Background(), "no-such-id", model.ItemPatch{Name: ptr("X")})
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	item, _ := svc.Create(ctx, validFields())

	if err := svc.Delete(ctx, item.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	items, _ := svc.List(ctx)
	if len(items) != 0 {
		t.Errorf("expected deleted item gone from list, got %d items", len(items))
	}

	if err := svc.Delete(ctx, "no-such-id"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestChangeStatus(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	item, _ := svc.Create(ctx, validFields())

	// Any status is reachable from any other.
	for _, status := range []string{model.StatusBought, model.StatusReserved, model.StatusArchived, model.StatusWant} {
		updated, err := svc.ChangeStatus(ctx, item.ID, status)
		if err != nil {
			t.Fatalf("ChangeStatus(%q): %v", status, err)
		}
		if updated.Status != status {
			t.Errorf("expected status %q, got %q", status, updated.Status)
		}
		if updated.Name != item.Name || updated.Price != item.Price {
			t.Error("expected only status to change")
		}
	}

	if _, err := svc.ChangeStatus(ctx, item.ID, "lost"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}
