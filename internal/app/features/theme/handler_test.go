package theme_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/dalemusser/intelhub/internal/app/features/theme"
	"go.uber.org/zap"
)

func themeCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == "theme" {
			return c
		}
	}
	return nil
}

func toggle(t *testing.T, current string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	h := theme.NewHandler(false, zap.NewNop())

	req := httptest.NewRequest("POST", "/admin/theme", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if current != "" {
		req.AddCookie(&http.Cookie{Name: "theme", Value: current})
	}
	rec := httptest.NewRecorder()
	h.ServeToggle(rec, req)
	return rec
}

func TestNext(t *testing.T) {
	tests := map[string]string{"": "dark", "light": "dark", "dark": "light", "bogus": "dark"}
	for in, want := range tests {
		if got := theme.Next(in); got != want {
			t.Errorf("Next(%q): got %q, want %q", in, got, want)
		}
	}
}

func TestServeToggle_LightToDark(t *testing.T) {
	rec := toggle(t, "", url.Values{"return": {"/admin/logs"}})

	c := themeCookie(rec)
	if c == nil || c.Value != "dark" {
		t.Fatalf("theme cookie: got %+v, want dark", c)
	}
	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/logs" {
		t.Errorf("Location: got %q, want %q", loc, "/admin/logs")
	}
}

func TestServeToggle_DarkToLight(t *testing.T) {
	rec := toggle(t, "dark", url.Values{"return": {"/admin/dashboard"}})

	if c := themeCookie(rec); c == nil || c.Value != "light" {
		t.Fatalf("theme cookie: got %+v, want light", c)
	}
}

func TestServeToggle_HTMXRefreshes(t *testing.T) {
	h := theme.NewHandler(false, zap.NewNop())
	req := httptest.NewRequest("POST", "/admin/theme", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	h.ServeToggle(rec, req)

	if rec.Header().Get("HX-Refresh") != "true" {
		t.Error("expected HX-Refresh header")
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}
}
