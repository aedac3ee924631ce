package ratelimit

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestLimiter_AllowsBurstThenBlocks(t *testing.T) {
	l := New(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !l.Allow("k") {
			t.Fatalf("attempt %d: expected allow", i+1)
		}
	}
	if l.Allow("k") {
		t.Error("attempt 4: expected block")
	}
	if !l.Allow("other") {
		t.Error("other key should have its own bucket")
	}
}

func TestLimiter_RefillsOverTime(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := New(2, time.Minute)
	l.now = func() time.Time { return now }

	l.Allow("k")
	l.Allow("k")
	if l.Allow("k") {
		t.Fatal("expected block once the burst is spent")
	}

	now = now.Add(30 * time.Second) // one token per 30s
	if !l.Allow("k") {
		t.Error("expected a refilled token")
	}
}

func TestLimiter_Reset(t *testing.T) {
	l := New(1, time.Minute)
	l.Allow("k")
	l.Reset("k")
	if !l.Allow("k") {
		t.Error("expected allow after reset")
	}
}

func TestLimiter_SweepsIdleKeys(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := New(1, time.Minute)
	l.now = func() time.Time { return now }

	l.Allow("a")
	l.Allow("b")
	if got := l.Len(); got != 2 {
		t.Fatalf("Len: got %d, want 2", got)
	}

	now = now.Add(5 * time.Minute)
	l.Allow("c")
	if got := l.Len(); got != 1 {
		t.Errorf("Len after sweep: got %d, want 1", got)
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{name: "remote addr", remote: "10.0.0.1:5555", want: "10.0.0.1"},
		{name: "forwarded", headers: map[string]string{"X-Forwarded-For": "1.2.3.4, 10.0.0.1"}, remote: "10.0.0.1:1", want: "1.2.3.4"},
		{name: "real ip", headers: map[string]string{"X-Real-IP": " 5.6.7.8 "}, remote: "10.0.0.1:1", want: "5.6.7.8"},
		{name: "no port", remote: "10.0.0.9", want: "10.0.0.9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/admin/login", nil)
			r.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			if got := ClientIP(r); got != tt.want {
				t.Errorf("ClientIP: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoginLimiter_PerUser(t *testing.T) {
	ll := NewLoginLimiter(100, 2)
	r := httptest.NewRequest("POST", "/admin/login", nil)

	for i := 0; i < 2; i++ {
		if ok, _ := ll.Check(r, "Officer1"); !ok {
			t.Fatalf("attempt %d: expected allow", i+1)
		}
	}
	ok, msg := ll.Check(r, " officer1 ")
	if ok || msg == "" {
		t.Fatalf("expected block with message, got ok=%v msg=%q", ok, msg)
	}

	ll.ResetUser("officer1")
	if ok, _ := ll.Check(r, "officer1"); !ok {
		t.Error("expected allow after ResetUser")
	}
}

func TestLoginLimiter_Nil(t *testing.T) {
	var ll *LoginLimiter
	if ok, _ := ll.Check(httptest.NewRequest("POST", "/", nil), "x"); !ok {
		t.Error("nil limiter should allow")
	}
	ll.ResetUser("x")
}
