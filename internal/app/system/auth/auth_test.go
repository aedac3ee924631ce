package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/intelhub/internal/app/system/auth"
	"go.uber.org/zap"
)

func newTestSessionManager(t *testing.T) *auth.SessionManager {
	t.Helper()
	sm, err := auth.NewSessionManager(
		"test-session-key-must-be-32-chars-long",
		"test-session",
		"",
		24*time.Hour,
		false,
		zap.NewNop(),
	)
	if err != nil {
		t.Fatalf("failed to create session manager: %v", err)
	}
	return sm
}

// loadUser runs LoadSessionUser for req and returns the user it injected.
func loadUser(sm *auth.SessionManager, req *http.Request) (*auth.SessionUser, bool) {
	var (
		got *auth.SessionUser
		ok  bool
	)
	h := sm.LoadSessionUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = sm.CurrentUser(r)
	}))
	h.ServeHTTP(httptest.NewRecorder(), req)
	return got, ok
}

func withCookies(req *http.Request, rec *httptest.ResponseRecorder) *http.Request {
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestNewSessionManager_EmptyKey(t *testing.T) {
	if _, err := auth.NewSessionManager("", "s", "", time.Hour, false, zap.NewNop()); err == nil {
		t.Fatal("expected error for empty session key")
	}
}

func TestLoadSessionUser_FreshSessionSeedsPlaceholder(t *testing.T) {
	sm := newTestSessionManager(t)

	u, ok := loadUser(sm, httptest.NewRequest("GET", "/admin/dashboard", nil))
	if !ok {
		t.Fatal("expected placeholder user on a fresh session")
	}
	want := auth.PlaceholderUser()
	if *u != want {
		t.Errorf("user: got %+v, want %+v", *u, want)
	}
	if u.DisplayName() != "Admin User" {
		t.Errorf("DisplayName: got %q, want %q", u.DisplayName(), "Admin User")
	}
}

func TestLoadSessionUser_SeedingDisabled(t *testing.T) {
	sm := newTestSessionManager(t)
	sm.SetSeedPlaceholder(false)

	if _, ok := loadUser(sm, httptest.NewRequest("GET", "/", nil)); ok {
		t.Error("expected no user when seeding is disabled")
	}
}

func TestSetCurrentUser_RoundTrip(t *testing.T) {
	sm := newTestSessionManager(t)

	officer := auth.SessionUser{
		ID:        "2",
		Username:  "officer2",
		FirstName: "Jane",
		LastName:  "Smith",
		Role:      "officer",
		IsActive:  true,
		Credits:   150,
	}

	rec := httptest.NewRecorder()
	if err := sm.SetCurrentUser(rec, httptest.NewRequest("POST", "/admin/login", nil), officer); err != nil {
		t.Fatalf("SetCurrentUser: %v", err)
	}

	req := withCookies(httptest.NewRequest("GET", "/admin/dashboard", nil), rec)
	u, ok := loadUser(sm, req)
	if !ok {
		t.Fatal("expected session user after login")
	}
	if *u != officer {
		t.Errorf("user: got %+v, want %+v", *u, officer)
	}
}

func TestClearCurrentUser_LogsOut(t *testing.T) {
	sm := newTestSessionManager(t)

	rec1 := httptest.NewRecorder()
	if err := sm.SetCurrentUser(rec1, httptest.NewRequest("POST", "/admin/login", nil), auth.PlaceholderUser()); err != nil {
		t.Fatalf("SetCurrentUser: %v", err)
	}

	rec2 := httptest.NewRecorder()
	logoutReq := withCookies(httptest.NewRequest("POST", "/admin/logout", nil), rec1)
	if err := sm.ClearCurrentUser(rec2, logoutReq); err != nil {
		t.Fatalf("ClearCurrentUser: %v", err)
	}

	var authed bool
	h := sm.LoadSessionUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authed = sm.IsAuthenticated(r)
	}))
	h.ServeHTTP(httptest.NewRecorder(), withCookies(httptest.NewRequest("GET", "/admin/dashboard", nil), rec2))

	if authed {
		t.Error("expected IsAuthenticated to be false after logout")
	}
}

func TestLoadSessionUser_GarbledCookieFallsBackToFresh(t *testing.T) {
	sm := newTestSessionManager(t)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: "test-session", Value: "not-a-valid-cookie"})

	if _, ok := loadUser(sm, req); !ok {
		t.Error("expected placeholder user when cookie cannot be decoded")
	}
}

func TestRequireSignedIn_NoUser_RedirectsToLogin(t *testing.T) {
	sm := newTestSessionManager(t)

	handler := sm.RequireSignedIn(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	location := rec.Header().Get("Location")
	if !strings.HasPrefix(location, auth.LoginPath) {
		t.Errorf("expected redirect to %s, got %q", auth.LoginPath, location)
	}
}

func TestRequireSignedIn_NoUser_API_Returns401(t *testing.T) {
	sm := newTestSessionManager(t)

	handler := sm.RequireSignedIn(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/api/data", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestRequireSignedIn_NoUser_HTMX_ReturnsHXRedirect(t *testing.T) {
	sm := newTestSessionManager(t)

	handler := sm.RequireSignedIn(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
	if hx := rec.Header().Get("HX-Redirect"); !strings.HasPrefix(hx, auth.LoginPath) {
		t.Errorf("expected HX-Redirect to %s, got %q", auth.LoginPath, hx)
	}
}

func TestRequireSignedIn_WithUser_Proceeds(t *testing.T) {
	sm := newTestSessionManager(t)

	called := false
	handler := sm.RequireSignedIn(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	u := auth.PlaceholderUser()
	req := auth.WithTestUser(httptest.NewRequest("GET", "/protected", nil), &u)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !called {
		t.Error("expected handler to be called")
	}
}

func TestCurrentUser_NoUser(t *testing.T) {
	user, ok := auth.CurrentUser(httptest.NewRequest("GET", "/", nil))
	if ok {
		t.Error("expected ok to be false when no user in context")
	}
	if user != nil {
		t.Error("expected user to be nil when no user in context")
	}
}
