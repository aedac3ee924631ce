package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/dalemusser/intelhub/internal/app/system/auth"
	"github.com/dalemusser/intelhub/internal/domain/models"
)

// AdminUser returns the placeholder administrator as a session user.
func AdminUser() auth.SessionUser {
	return auth.PlaceholderUser()
}

// OfficerUser returns an active officer session user.
func OfficerUser() auth.SessionUser {
	return auth.SessionUser{
		ID:        "2",
		Username:  "officer2",
		FirstName: "Jane",
		LastName:  "Smith",
		Role:      string(models.RoleOfficer),
		IsActive:  true,
		Credits:   150,
	}
}

// WithUser adds a user to the request context for testing handlers.
// This bypasses the session middleware and injects the user directly.
func WithUser(r *http.Request, user auth.SessionUser) *http.Request {
	return auth.WithTestUser(r, &user)
}

// NewRequest creates an HTTP request for testing.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// NewAuthenticatedRequest creates an HTTP request with a user in context.
func NewAuthenticatedRequest(method, target string, user auth.SessionUser) *http.Request {
	return WithUser(httptest.NewRequest(method, target, nil), user)
}

// NewHTMXRequest creates a request carrying the HX-Request header.
func NewHTMXRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("HX-Request", "true")
	return req
}

// ResponseRecorder wraps httptest.ResponseRecorder with helper methods.
type ResponseRecorder struct {
	*httptest.ResponseRecorder
}

// NewRecorder creates a new ResponseRecorder.
func NewRecorder() *ResponseRecorder {
	return &ResponseRecorder{httptest.NewRecorder()}
}

// AssertStatus checks the response status code.
func (r *ResponseRecorder) AssertStatus(t interface{ Errorf(string, ...any) }, expected int) {
	if r.Code != expected {
		t.Errorf("expected status %d, got %d", expected, r.Code)
	}
}

// AssertRedirect checks for a 303 to expectedLocation.
func (r *ResponseRecorder) AssertRedirect(t interface{ Errorf(string, ...any) }, expectedLocation string) {
	if r.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, r.Code)
	}
	if loc := r.Header().Get("Location"); loc != expectedLocation {
		t.Errorf("Location: got %q, want %q", loc, expectedLocation)
	}
}

// AssertContains checks that the body contains expected.
func (r *ResponseRecorder) AssertContains(t interface{ Errorf(string, ...any) }, expected string) {
	if !strings.Contains(r.Body.String(), expected) {
		t.Errorf("expected body to contain %q", expected)
	}
}
