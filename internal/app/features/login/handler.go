// internal/app/features/login/handler.go
package login

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dalemusser/intelhub/internal/app/system/auth"
	"github.com/dalemusser/intelhub/internal/app/system/limits"
	"github.com/dalemusser/intelhub/internal/app/system/ratelimit"
	"github.com/dalemusser/intelhub/internal/app/system/timeouts"
	"github.com/dalemusser/intelhub/internal/app/system/viewdata"
	"github.com/dalemusser/intelhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"go.uber.org/zap"
)

var (
	// ErrUnknownUser means no user with that username exists.
	ErrUnknownUser = errors.New("unknown user")
	// ErrInactiveUser means the user exists but has been deactivated.
	ErrInactiveUser = errors.New("inactive user")
)

// Users is the lookup the login screen needs from the data source.
type Users interface {
	Users(ctx context.Context) ([]models.User, error)
}

// Sessions is the write side of the session holder.
type Sessions interface {
	viewdata.Sessions
	SetCurrentUser(w http.ResponseWriter, r *http.Request, u auth.SessionUser) error
}

type Handler struct {
	Users    Users
	Sessions Sessions
	Log      *zap.Logger

	// AllowPlaceholder lets the placeholder administrator sign in by
	// username even when the data source does not list it.
	AllowPlaceholder bool

	// Limiter throttles attempts; nil disables throttling.
	Limiter *ratelimit.LoginLimiter

	Render func(w http.ResponseWriter, r *http.Request, name string, data any)
}

func NewHandler(users Users, sessions Sessions, allowPlaceholder bool, logger *zap.Logger) *Handler {
	return &Handler{
		Users:            users,
		Sessions:         sessions,
		Log:              logger,
		AllowPlaceholder: allowPlaceholder,
		Render: func(w http.ResponseWriter, r *http.Request, name string, data any) {
			templates.Render(w, r, name, data)
		},
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| Template-data                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

type loginFormData struct {
	viewdata.ShellVM
	Error     string
	Username  string // what the user typed
	ReturnURL string
}

/*─────────────────────────────────────────────────────────────────────────────*
| Handlers                                                                    |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeLogin handles GET /admin/login.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	h.Render(w, r, "login", loginFormData{
		ShellVM:   viewdata.NewShellVM(r, h.Sessions, "Sign in"),
		ReturnURL: query.Get(r, "return"),
	})
}

// HandleLoginPost handles POST /admin/login.
func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxLoginFormSize)
	if err := r.ParseForm(); err != nil {
		h.renderFormWithError(w, r, "Invalid form submission.", "", "")
		return
	}

	username := strings.TrimSpace(r.PostFormValue("username"))
	returnURL := strings.TrimSpace(r.PostFormValue("return"))

	if username == "" {
		h.renderFormWithError(w, r, "Username is required.", "", returnURL)
		return
	}

	if ok, reason := h.Limiter.Check(r, username); !ok {
		h.Log.Warn("login throttled",
			zap.String("username", username),
			zap.String("ip", ratelimit.ClientIP(r)))
		w.WriteHeader(http.StatusTooManyRequests)
		h.renderFormWithError(w, r, reason, username, returnURL)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.lookup(ctx, username)
	switch {
	case errors.Is(err, ErrUnknownUser):
		h.Log.Info("login rejected: unknown user", zap.String("username", username))
		h.renderFormWithError(w, r, "Unknown user", username, returnURL)
		return
	case errors.Is(err, ErrInactiveUser):
		h.Log.Info("login rejected: inactive user", zap.String("username", username))
		h.renderFormWithError(w, r, "This account is inactive.", username, returnURL)
		return
	case err != nil:
		h.Log.Error("login lookup failed", zap.String("username", username), zap.Error(err))
		h.renderFormWithError(w, r, "Sign in is unavailable right now. Please try again.", username, returnURL)
		return
	}

	if err := h.Sessions.SetCurrentUser(w, r, u); err != nil {
		h.Log.Error("login: save session", zap.Error(err))
		h.renderFormWithError(w, r, "Sign in is unavailable right now. Please try again.", username, returnURL)
		return
	}

	h.Limiter.ResetUser(username)
	h.Log.Info("user signed in",
		zap.String("user_id", u.ID),
		zap.String("username", u.Username),
		zap.String("role", u.Role))

	dest := urlutil.SafeReturn(returnURL, "", viewdata.PathDashboard)
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

// lookup resolves username against the data source, then the placeholder.
// Usernames compare case-insensitively.
func (h *Handler) lookup(ctx context.Context, username string) (auth.SessionUser, error) {
	want := text.Fold(username)

	if h.Users != nil {
		users, err := h.Users.Users(ctx)
		if err != nil {
			return auth.SessionUser{}, fmt.Errorf("list users: %w", err)
		}
		for _, u := range users {
			if text.Fold(u.Username) != want {
				continue
			}
			if !u.IsActive {
				return auth.SessionUser{}, ErrInactiveUser
			}
			return auth.FromUser(u), nil
		}
	}

	if h.AllowPlaceholder {
		if p := auth.PlaceholderUser(); text.Fold(p.Username) == want {
			return p, nil
		}
	}
	return auth.SessionUser{}, ErrUnknownUser
}

func (h *Handler) renderFormWithError(w http.ResponseWriter, r *http.Request, msg, username, returnURL string) {
	h.Render(w, r, "login", loginFormData{
		ShellVM:   viewdata.NewShellVM(r, h.Sessions, "Sign in"),
		Error:     msg,
		Username:  username,
		ReturnURL: returnURL,
	})
}
