package api

import (
	"net/http"

	"github.com/totokartonio/wishlist/internal/service"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(svc *service.ItemService) http.Handler {
	mux := http.NewServeMux()

	itemsHandler := &ItemsHandler{Service: svc}

	mux.HandleFunc("GET /health", Health)

	mux.HandleFunc("GET /api/items", itemsHandler.List)
	mux.HandleFunc("POST /api/items", itemsHandler.Create)
	mux.HandleFunc("GET /api/items/{id}", itemsHandler.Get)
	mux.HandleFunc("PUT /api/items/{id}", itemsHandler.Update)
	mux.HandleFunc("PATCH /api/items/{id}", itemsHandler.Update)
	mux.HandleFunc("DELETE /api/items/{id}", itemsHandler.Delete)

	// Unmatched routes get a JSON 404 with the requested path.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusNotFound, map[string]string{
			"error": "Not Found",
			"path":  r.URL.Path,
		})
	})

	return mux
}
