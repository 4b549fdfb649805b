package web

import (
	"net/http"

	"github.com/totokartonio/wishlist/internal/service"
	webembed "github.com/totokartonio/wishlist/web"
)

// NewRouter creates the web page router with all page routes registered.
func NewRouter(svc *service.ItemService) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		Service:   svc,
		Templates: templates,
	}

	mux := http.NewServeMux()

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	mux.HandleFunc("GET /{$}", s.WishlistPage)
	mux.HandleFunc("POST /items", s.ItemCreateSubmit)
	mux.HandleFunc("GET /items/{id}/edit", s.ItemEditPage)
	mux.HandleFunc("POST /items/{id}", s.ItemUpdateSubmit)
	mux.HandleFunc("POST /items/{id}/delete", s.ItemDeleteSubmit)
	mux.HandleFunc("POST /items/{id}/status", s.ItemStatusSubmit)

	return mux, nil
}
