package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dalemusser/intelhub/internal/domain/models"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Session constants                                                           |
*─────────────────────────────────────────────────────────────────────────────*/

const (
	stateKey = "state" // "user" | "signed_out"

	stateUser      = "user"
	stateSignedOut = "signed_out"

	userIDKey        = "user_id"
	userUsernameKey  = "user_username"
	userFirstNameKey = "user_first_name"
	userLastNameKey  = "user_last_name"
	userRoleKey      = "user_role"
	userActiveKey    = "user_active"
	userCreditsKey   = "user_credits"
)

// LoginPath is where signed-out visitors are sent.
const LoginPath = "/admin/login"

/*─────────────────────────────────────────────────────────────────────────────*
| Current-User helper                                                        |
*─────────────────────────────────────────────────────────────────────────────*/

// SessionUser is what we cache in the session & inject into r.Context().
// At most one exists per browser session.
type SessionUser struct {
	ID        string
	Username  string
	FirstName string
	LastName  string
	Role      string
	IsActive  bool
	Credits   int64
}

// FromUser converts a data-source user into a session user.
func FromUser(u models.User) SessionUser {
	return SessionUser{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		Credits:   u.Credits,
	}
}

// DisplayName is the name shown in the console header.
func (u SessionUser) DisplayName() string {
	return models.DisplayName(u.FirstName, u.LastName, u.Username)
}

// Initials is the avatar text shown next to the display name.
func (u SessionUser) Initials() string {
	return models.Initials(u.FirstName, u.LastName, u.Username)
}

// PlaceholderUser is the record a fresh browser session starts with.
func PlaceholderUser() SessionUser {
	return SessionUser{
		ID:        "1",
		Username:  "admin",
		FirstName: "Admin",
		LastName:  "User",
		Role:      string(models.RoleAdmin),
		IsActive:  true,
		Credits:   1000,
	}
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the user & “found?” flag.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok && u != nil
}

// WithTestUser injects u into the request context the way LoadSessionUser does.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return withUser(r, u)
}

/*─────────────────────────────────────────────────────────────────────────────*
| SessionManager                                                              |
*─────────────────────────────────────────────────────────────────────────────*/

// SessionManager owns the cookie store that holds the session user. It is
// built once in bootstrap and handed to every feature that reads or writes
// the session.
type SessionManager struct {
	store           *sessions.CookieStore
	name            string
	seedPlaceholder bool
	log             *zap.Logger
}

// NewSessionManager builds a cookie-backed session manager. The `secure` flag
// controls whether cookies are marked Secure and which SameSite mode is used.
func NewSessionManager(sessionKey, name, domain string, maxAge time.Duration, secure bool, logger *zap.Logger) (*SessionManager, error) {
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if name == "" {
		return nil, fmt.Errorf("session name is empty")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	store.Options = opts
	store.MaxAge(opts.MaxAge)

	logger.Info("session store initialized",
		zap.String("name", name),
		zap.Bool("secure", secure),
		zap.String("domain", domain),
		zap.Duration("max_age", maxAge))

	return &SessionManager{
		store:           store,
		name:            name,
		seedPlaceholder: true,
		log:             logger,
	}, nil
}

// SetSeedPlaceholder controls whether a browser without a session cookie
// starts out signed in as PlaceholderUser.
func (sm *SessionManager) SetSeedPlaceholder(on bool) {
	sm.seedPlaceholder = on
}

// Name returns the session cookie name.
func (sm *SessionManager) Name() string { return sm.name }

// Store exposes the underlying cookie store.
func (sm *SessionManager) Store() *sessions.CookieStore { return sm.store }

// GetSession returns the session for r. On a decode failure the returned
// session is fresh and still usable; the error is reported for logging.
func (sm *SessionManager) GetSession(r *http.Request) (*sessions.Session, error) {
	return sm.store.Get(r, sm.name)
}

// CurrentUser returns the session user loaded for r, or (nil, false).
func (sm *SessionManager) CurrentUser(r *http.Request) (*SessionUser, bool) {
	return CurrentUser(r)
}

// IsAuthenticated reports whether r carries a session user.
func (sm *SessionManager) IsAuthenticated(r *http.Request) bool {
	_, ok := CurrentUser(r)
	return ok
}

// SetCurrentUser replaces the session user unconditionally (login).
func (sm *SessionManager) SetCurrentUser(w http.ResponseWriter, r *http.Request, u SessionUser) error {
	sess := sm.session(r)
	sess.Values[stateKey] = stateUser
	sess.Values[userIDKey] = u.ID
	sess.Values[userUsernameKey] = u.Username
	sess.Values[userFirstNameKey] = u.FirstName
	sess.Values[userLastNameKey] = u.LastName
	sess.Values[userRoleKey] = u.Role
	sess.Values[userActiveKey] = u.IsActive
	sess.Values[userCreditsKey] = u.Credits
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// ClearCurrentUser makes the session user absent (logout). The session
// cookie is kept with a signed-out marker so the placeholder is not
// re-seeded on the next request. Navigation is the caller's job.
func (sm *SessionManager) ClearCurrentUser(w http.ResponseWriter, r *http.Request) error {
	sess := sm.session(r)
	for k := range sess.Values {
		delete(sess.Values, k)
	}
	sess.Values[stateKey] = stateSignedOut
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// session returns the stored session or a fresh one when the cookie
// cannot be decoded.
func (sm *SessionManager) session(r *http.Request) *sessions.Session {
	sess, err := sm.store.Get(r, sm.name)
	if err != nil {
		sm.logDecodeErr(err)
		sess = sessions.NewSession(sm.store, sm.name)
		opts := *sm.store.Options
		sess.Options = &opts
		sess.IsNew = true
	}
	return sess
}

func (sm *SessionManager) logDecodeErr(err error) {
	var scErr securecookie.Error
	if errors.As(err, &scErr) && scErr.IsDecode() {
		sm.log.Debug("session cookie invalid, using fresh session", zap.Error(err))
		return
	}
	sm.log.Warn("session store error, using fresh session", zap.Error(err))
}

// LoadSessionUser injects the session user into context when one is
// present. A browser with no session at all gets PlaceholderUser when
// seeding is enabled.
func (sm *SessionManager) LoadSessionUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := sm.session(r)

		switch state, _ := sess.Values[stateKey].(string); {
		case state == stateUser:
			u := &SessionUser{
				ID:        getString(sess, userIDKey),
				Username:  getString(sess, userUsernameKey),
				FirstName: getString(sess, userFirstNameKey),
				LastName:  getString(sess, userLastNameKey),
				Role:      getString(sess, userRoleKey),
				IsActive:  getBool(sess, userActiveKey),
				Credits:   getInt64(sess, userCreditsKey),
			}
			r = withUser(r, u)
		case state == "" && sess.IsNew && sm.seedPlaceholder:
			u := PlaceholderUser()
			r = withUser(r, &u)
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSignedIn ensures there is a user in context (set by LoadSessionUser).
// If not signed in:
//   - HTMX: sends HX-Redirect to /admin/login?return=...
//   - HTML: 303 redirect to /admin/login?return=...
//   - API:  401 Unauthorized with a plain error body.
func (sm *SessionManager) RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); ok {
			next.ServeHTTP(w, r)
			return
		}

		dest := LoginPath + "?return=" + url.QueryEscape(currentURI(r))

		// HTMX: full-page client redirect (no partial swap)
		if r.Header.Get("HX-Request") == "true" {
			w.Header().Set("HX-Redirect", dest)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		if wantsHTML(r) {
			http.Redirect(w, r, dest, http.StatusSeeOther)
			return
		}

		http.Error(w, "unauthorized", http.StatusUnauthorized)
	})
}

// helpers

func withUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

// getString safely extracts a string from a session value.
func getString(s *sessions.Session, key string) string {
	if v, ok := s.Values[key].(string); ok {
		return v
	}
	return ""
}

func getBool(s *sessions.Session, key string) bool {
	v, _ := s.Values[key].(bool)
	return v
}

func getInt64(s *sessions.Session, key string) int64 {
	v, _ := s.Values[key].(int64)
	return v
}

func wantsHTML(r *http.Request) bool {
	if r.Header.Get("HX-Request") == "true" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

func currentURI(r *http.Request) string {
	u := *r.URL
	return u.RequestURI()
}
