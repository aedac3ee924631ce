// internal/app/features/sections/handler.go
package sections

import (
	"net/http"

	"github.com/dalemusser/intelhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// pageData is the view model for a screen whose content has not been built.
type pageData struct {
	viewdata.ShellVM
	Icon    string
	Message string
}

// Handler serves the placeholder screens reachable from the sidebar.
type Handler struct {
	Sessions viewdata.Sessions
	Log      *zap.Logger

	Render func(w http.ResponseWriter, r *http.Request, name string, data any)
}

func NewHandler(sessions viewdata.Sessions, logger *zap.Logger) *Handler {
	return &Handler{
		Sessions: sessions,
		Log:      logger,
		Render: func(w http.ResponseWriter, r *http.Request, name string, data any) {
			templates.Render(w, r, name, data)
		},
	}
}

// ServeScreen renders the placeholder for s.
func (h *Handler) ServeScreen(s viewdata.Screen) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := pageData{
			ShellVM: viewdata.NewShellVM(r, h.Sessions, s.Label),
			Icon:    s.Icon,
			Message: s.Label + " is coming soon.",
		}
		// Highlight the sidebar entry even for /admin/users/ and the like.
		data.CurrentPath = s.Path
		data.Nav = viewdata.BuildNav(s.Path)

		h.Render(w, r, "section_placeholder", data)
	}
}
