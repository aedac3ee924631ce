package home

import (
	"net/http"

	"github.com/dalemusser/intelhub/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// Handler serves the site root.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeRoot sends visitors to the dashboard, the console's landing screen.
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, viewdata.PathDashboard, http.StatusSeeOther)
}
