package http

import "net/http"

// Handlers groups everything NewRouter mounts.
type Handlers struct {
	Books        *BookHandler
	Authors      *AuthorHandler
	Publications *PublicationHandler
	Links        *LinkHandler
	Health       *HealthHandler
}

// NewRouter registers the catalog routes. Paths are part of the public API.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", h.Books.List)
	mux.HandleFunc("GET /is/{isbn}", h.Books.GetByISBN)
	mux.HandleFunc("GET /c/{category}", h.Books.GetByCategory)
	mux.HandleFunc("GET /l/{language}", h.Books.ListByLanguage)
	mux.HandleFunc("POST /book/new", h.Books.Create)
	mux.HandleFunc("PUT /book/update/{isbn}", h.Books.UpdateTitle)
	mux.HandleFunc("DELETE /book/delete/{isbn}", h.Books.Delete)

	mux.HandleFunc("GET /author", h.Authors.List)
	mux.HandleFunc("GET /author/book/{isbn}", h.Authors.ListByBook)
	mux.HandleFunc("POST /author/new", h.Authors.Create)

	mux.HandleFunc("GET /publications", h.Publications.List)
	mux.HandleFunc("POST /publication/new", h.Publications.Create)

	mux.HandleFunc("PUT /book/author/update/{isbn}", h.Links.AddAuthor)
	mux.HandleFunc("PUT /publication/update/book/{isbn}", h.Links.AddPublication)
	mux.HandleFunc("DELETE /book/delete/author/{isbn}/{authorId}", h.Links.RemoveAuthor)

	if h.Health != nil {
		mux.HandleFunc("GET /healthz", h.Health.Live)
		mux.HandleFunc("GET /readyz", h.Health.Ready)
	}

	return mux
}
