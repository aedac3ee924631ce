package home_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/intelhub/internal/app/features/home"
	"go.uber.org/zap"
)

func TestServeRoot_RedirectsToDashboard(t *testing.T) {
	handler := home.NewHandler(zap.NewNop())

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeRoot(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/dashboard" {
		t.Errorf("Location: got %q, want %q", loc, "/admin/dashboard")
	}
}
