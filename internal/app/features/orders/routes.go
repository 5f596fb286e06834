// internal/app/features/orders/routes.go
package orders

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter mounted under /api/orders.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Create)
	return r
}
