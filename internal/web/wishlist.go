package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/totokartonio/wishlist/internal/model"
	"github.com/totokartonio/wishlist/internal/service"
	"github.com/totokartonio/wishlist/internal/store"
)

// wishlistData is the data for the wishlist page.
type wishlistData struct {
	PageData
	Items []model.Item
	Draft map[string]string
}

// WishlistPage handles GET /.
func (s *Server) WishlistPage(w http.ResponseWriter, r *http.Request) {
	s.renderWishlist(w, r, "", nil)
}

func (s *Server) renderWishlist(w http.ResponseWriter, r *http.Request, formError string, draft map[string]string) {
	items, err := s.Service.List(r.Context())
	if err != nil {
		slog.Error("failed to list items", "error", err)
	}

	s.Templates.Render(w, "wishlist.html", &wishlistData{
		PageData: PageData{Title: "Wishlist", Error: formError},
		Items:    items,
		Draft:    draft,
	})
}

// ItemCreateSubmit handles POST /items.
func (s *Server) ItemCreateSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	draft := map[string]string{
		"name":     r.FormValue("name"),
		"price":    r.FormValue("price"),
		"currency": r.FormValue("currency"),
		"link":     r.FormValue("link"),
	}

	// Local validation mirrors the service: one generic message for the form.
	price, priceErr := strconv.ParseFloat(draft["price"], 64)
	if draft["name"] == "" || draft["price"] == "" || draft["currency"] == "" || draft["link"] == "" || priceErr != nil || price < 0 {
		s.renderWishlist(w, r, "Please fill in all fields", draft)
		return
	}

	_, err := s.Service.Create(r.Context(), model.NewItem{
		Name:     draft["name"],
		Price:    &price,
		Currency: draft["currency"],
		Link:     draft["link"],
	})
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) || errors.Is(err, service.ErrInvalidPrice) || errors.Is(err, service.ErrInvalidCurrency) {
			s.renderWishlist(w, r, "Please fill in all fields", draft)
			return
		}
		slog.Error("failed to create item", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ItemEditPage handles GET /items/{id}/edit.
func (s *Server) ItemEditPage(w http.ResponseWriter, r *http.Request) {
	item, err := s.Service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		slog.Error("failed to get item", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.Templates.Render(w, "item_edit.html", &struct {
		PageData
		Item *model.Item
	}{
		PageData: PageData{Title: "Edit Item"},
		Item:     item,
	})
}

// ItemUpdateSubmit handles POST /items/{id}.
func (s *Server) ItemUpdateSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	id := r.PathValue("id")
	name := r.FormValue("name")
	priceText := r.FormValue("price")
	currency := r.FormValue("currency")
	link := r.FormValue("link")

	price, priceErr := strconv.ParseFloat(priceText, 64)
	if name == "" || priceText == "" || currency == "" || link == "" || priceErr != nil || price < 0 {
		item, err := s.Service.Get(r.Context(), id)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		s.Templates.Render(w, "item_edit.html", &struct {
			PageData
			Item *model.Item
		}{
			PageData: PageData{Title: "Edit Item", Error: "Please fill in all fields"},
			Item:     item,
		})
		return
	}

	_, err := s.Service.Update(r.Context(), id, model.ItemPatch{
		Name:     &name,
		Price:    &price,
		Currency: &currency,
		Link:     &link,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		slog.Error("failed to update item", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ItemDeleteSubmit handles POST /items/{id}/delete.
func (s *Server) ItemDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	if err := s.Service.Delete(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		slog.Error("failed to delete item", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ItemStatusSubmit handles POST /items/{id}/status.
func (s *Server) ItemStatusSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	_, err := s.Service.ChangeStatus(r.Context(), r.PathValue("id"), r.FormValue("status"))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			http.NotFound(w, r)
		case errors.Is(err, service.ErrInvalidStatus):
			http.Error(w, "invalid status", http.StatusBadRequest)
		default:
			slog.Error("failed to change status", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
