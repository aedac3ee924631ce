// internal/app/features/dashboard/routes.go
package dashboard

import (
	"github.com/go-chi/chi/v5"
)

// Routes wires the dashboard screen under whatever mount point
// the top-level router chooses (e.g., "/admin/dashboard").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServePage)       // shell + loading panel
	r.Get("/panel", h.ServePanel) // one load cycle
	return r
}

// APIRoutes serves the JSON snapshot (e.g., mounted at "/api/dashboard").
func APIRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeJSON)
	return r
}
