// internal/app/features/logout/routes.go
package logout

import (
	"github.com/dalemusser/intelhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		// Only signed-in users reach logout; others land on the login screen.
		pr.Use(sm.RequireSignedIn)
		pr.Post("/", h.ServeLogout)
		pr.Get("/", h.ServeLogout)
	})

	return r
}
