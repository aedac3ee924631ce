// internal/app/features/sections/routes.go
package sections

import (
	"github.com/dalemusser/intelhub/internal/app/system/viewdata"
	"github.com/go-chi/chi/v5"
)

// Register adds a GET route for every sidebar screen except the dashboard,
// which has its own feature.
func Register(r chi.Router, h *Handler) {
	for _, s := range viewdata.Screens {
		if s.Path == viewdata.PathDashboard {
			continue
		}
		r.Get(s.Path, h.ServeScreen(s))
	}
}
