// internal/app/features/lessons/routes.go
package lessons

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter mounted under /api/lessons.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Put("/{id}", h.Update)
	return r
}
