package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/totokartonio/wishlist/internal/model"
	"github.com/totokartonio/wishlist/internal/service"
	"github.com/totokartonio/wishlist/internal/store"
)

// ItemsHandler handles item CRUD endpoints.
type ItemsHandler struct {
	Service *service.ItemService
}

// List handles GET /api/items.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.List(r.Context())
	if err != nil {
		slog.Error("listing items", "error", err)
		jsonError(w, http.StatusInternalServerError, "Failed to fetch items")
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.Service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.serviceError(w, err, "fetch")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// Create handles POST /api/items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var fields model.NewItem
	if err := decodeJSON(r, &fields); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.Service.Create(r.Context(), fields)
	if err != nil {
		h.serviceError(w, err, "create")
		return
	}
	jsonResponse(w, http.StatusCreated, item)
}

// Update handles PUT and PATCH /api/items/{id}. Both apply the body as a
// partial update.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch model.ItemPatch
	if err := decodeJSON(r, &patch); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.Service.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		h.serviceError(w, err, "update")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// Delete handles DELETE /api/items/{id}.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.serviceError(w, err, "delete")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]bool{"success": true})
}

// serviceError maps a service outcome to a transport response. Expected
// validation and not-found outcomes become 4xx; anything else is logged and
// surfaced as a generic 500.
func (h *ItemsHandler) serviceError(w http.ResponseWriter, err error, verb string) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		jsonResponse(w, http.StatusBadRequest, map[string]any{
			"error":    "Missing required fields",
			"required": vErr.Missing,
		})
	case errors.Is(err, service.ErrInvalidPrice):
		jsonError(w, http.StatusBadRequest, "Price must be a positive number")
	case errors.Is(err, service.ErrInvalidStatus):
		jsonError(w, http.StatusBadRequest, "Invalid status")
	case errors.Is(err, service.ErrInvalidCurrency):
		jsonError(w, http.StatusBadRequest, "Invalid currency")
	case errors.Is(err, store.ErrNotFound):
		jsonError(w, http.StatusNotFound, "Item not found")
	default:
		slog.Error("item operation failed", "verb", verb, "error", err)
		jsonError(w, http.StatusInternalServerError, "Failed to "+verb+" item")
	}
}
