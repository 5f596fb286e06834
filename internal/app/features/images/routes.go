// internal/app/features/images/routes.go
package images

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter mounted under /images/lessons.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/{file}", h.Serve)
	return r
}
