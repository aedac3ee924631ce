// internal/app/features/health/routes.go
package health

import "github.com/go-chi/chi/v5"

// Routes serves the probe under its mount point (e.g., "/health").
// HEAD is answered too so load balancers can probe without a body.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Serve)
	r.Head("/", h.Serve)
	return r
}
