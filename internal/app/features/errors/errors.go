// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/intelhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// pageData is the basic view model for error pages.
type pageData struct {
	viewdata.ShellVM
	Message string
	BackURL string
}

// Handler is the errors feature handler.
// No data source needed; it just renders templates.
type Handler struct {
	Sessions viewdata.Sessions

	Render func(w http.ResponseWriter, r *http.Request, name string, data any)
}

// NewHandler constructs an errors Handler.
func NewHandler(sessions viewdata.Sessions) *Handler {
	return &Handler{
		Sessions: sessions,
		Render: func(w http.ResponseWriter, r *http.Request, name string, data any) {
			templates.Render(w, r, name, data)
		},
	}
}

// NotFound renders a friendly "page not found" screen. Install it with
// chi's r.NotFound.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, "Page not found",
		"The page you were looking for does not exist.")
}

// MethodNotAllowed is installed with chi's r.MethodNotAllowed.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusMethodNotAllowed, "Not allowed",
		"That action is not available here.")
}

// CSRFFailure is the gorilla/csrf error handler.
func (h *Handler) CSRFFailure(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusForbidden, "Request expired",
		"Your form session expired. Go back, refresh the page and try again.")
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, title, msg string) {
	data := pageData{
		ShellVM: viewdata.NewShellVM(r, h.Sessions, title),
		Message: msg,
		BackURL: viewdata.PathDashboard,
	}
	w.WriteHeader(status)
	h.Render(w, r, "error_page", data)
}
