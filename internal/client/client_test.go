package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/totokartonio/wishlist/internal/api"
	"github.com/totokartonio/wishlist/internal/model"
	"github.com/totokartonio/wishlist/internal/service"
	"github.com/totokartonio/wishlist/internal/store"
)

func setupClient(t *testing.T) *Client {
	t.Helper()
	svc := service.NewItemService(store.NewMemoryStore())
	server := httptest.NewServer(api.NewRouter(svc))
	t.Cleanup(server.Close)
	return New(server.URL)
}

func TestClientFlow(t *testing.T) {
	c := setupClient(t)
	ctx := context.Background()

	status, err := c.Health(ctx)
	if err != nil || status != "ok" {
		t.Fatalf("Health: %q, %v", status, err)
	}

	f := &Form{Name: "Sony headphones", Price: "100", Currency: "USD", Link: "https://amazon.de"}
	if !f.Validate() {
		t.Fatalf("unexpected form error %q", f.Err())
	}

	created, err := c.Create(ctx, f.Fields())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Status != model.StatusWant {
		t.Errorf("expected status 'want', got %q", created.Status)
	}

	// The fetched list seeds the local state; mutations stay optimistic.
	items, err := c.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	state := NewState(items)

	updated, err := c.ChangeStatus(ctx, created.ID, model.StatusBought)
	if err != nil {
		t.Fatalf("ChangeStatus: %v", err)
	}
	state.ChangeStatus(updated.ID, updated.Status)
	if state.Items()[0].Status != model.StatusBought {
		t.Errorf("expected local status 'bought', got %q", state.Items()[0].Status)
	}

	if err := c.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	state.Delete(created.ID)
	if len(state.Items()) != 0 {
		t.Errorf("expected empty local list, got %d items", len(state.Items()))
	}
}

func TestClientErrors(t *testing.T) {
	c := setupClient(t)
	ctx := context.Background()

	_, err := c.Get(ctx, "no-such-id")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusNotFound || apiErr.Message != "Item not found" {
		t.Errorf("unexpected error %+v", apiErr)
	}

	_, err = c.Create(ctx, model.NewItem{Name: "Incomplete"})
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusBadRequest || len(apiErr.Required) != 3 {
		t.Errorf("unexpected error %+v", apiErr)
	}
}
