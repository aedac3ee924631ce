// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"github.com/dalemusser/intelhub/internal/app/system/auth"
	"go.uber.org/zap"
)

// Sessions is the part of the session holder logout needs.
type Sessions interface {
	CurrentUser(r *http.Request) (*auth.SessionUser, bool)
	ClearCurrentUser(w http.ResponseWriter, r *http.Request) error
}

type Handler struct {
	Log      *zap.Logger
	Sessions Sessions
}

func NewHandler(sessions Sessions, logger *zap.Logger) *Handler {
	return &Handler{
		Log:      logger,
		Sessions: sessions,
	}
}

// ServeLogout handles POST (and GET) /admin/logout. The session user is
// cleared first, then the browser is sent to the login screen.
func (h *Handler) ServeLogout(w http.ResponseWriter, r *http.Request) {
	if u, ok := h.Sessions.CurrentUser(r); ok {
		h.Log.Info("user signed out", zap.String("user_id", u.ID), zap.String("username", u.Username))
	}

	if err := h.Sessions.ClearCurrentUser(w, r); err != nil {
		// The redirect still happens; the next request re-reads the cookie.
		h.Log.Error("logout: clear session", zap.Error(err))
	}

	// HTMX: full client-side navigation instead of a partial swap.
	if r.Header.Get("HX-Request") != "" {
		w.Header().Set("HX-Redirect", auth.LoginPath)
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, auth.LoginPath, http.StatusSeeOther)
}
