// internal/app/features/theme/handler.go
package theme

import (
	"net/http"
	"time"

	"github.com/dalemusser/intelhub/internal/app/system/limits"
	"github.com/dalemusser/intelhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"go.uber.org/zap"
)

const cookieMaxAge = 365 * 24 * time.Hour

type Handler struct {
	Secure bool // mark the cookie Secure (production over HTTPS)
	Log    *zap.Logger
}

func NewHandler(secure bool, logger *zap.Logger) *Handler {
	return &Handler{Secure: secure, Log: logger}
}

// Next returns the theme that follows current.
func Next(current string) string {
	if current == "dark" {
		return "light"
	}
	return "dark"
}

// ServeToggle handles POST /admin/theme. It flips the theme cookie and
// returns the visitor to the screen they were on.
func (h *Handler) ServeToggle(w http.ResponseWriter, r *http.Request) {
	next := Next(viewdata.ThemeFromRequest(r))

	http.SetCookie(w, &http.Cookie{
		Name:     viewdata.ThemeCookie,
		Value:    next,
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		Secure:   h.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	h.Log.Debug("theme toggled", zap.String("theme", next))

	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Refresh", "true")
		w.WriteHeader(http.StatusNoContent)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxSmallFormSize)
	back := httpnav.ResolveBackURL(r, viewdata.PathDashboard)
	dest := urlutil.SafeReturn(r.PostFormValue("return"), "", back)
	http.Redirect(w, r, dest, http.StatusSeeOther)
}
