// internal/app/system/ratelimit/ratelimit.go
package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter hands out one token bucket per key. Idle buckets are swept lazily
// on Allow, so no background goroutine is needed. It is safe for concurrent
// use.
type Limiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	every     rate.Limit
	burst     int
	idle      time.Duration // a bucket unused this long is dropped
	lastSweep time.Time
	now       func() time.Time
}

type bucket struct {
	lim  *rate.Limiter
	seen time.Time
}

// New allows up to limit requests per window for each key, refilling
// continuously.
func New(limit int, window time.Duration) *Limiter {
	if limit < 1 {
		limit = 1
	}
	return &Limiter{
		buckets: make(map[string]*bucket),
		every:   rate.Every(window / time.Duration(limit)),
		burst:   limit,
		idle:    2 * window,
		now:     time.Now,
	}
}

// Allow reports whether a request for key may proceed now.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(l.every, l.burst)}
		l.buckets[key] = b
	}
	b.seen = now
	return b.lim.AllowN(now, 1)
}

// Reset forgets key, e.g. after a successful sign-in.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.buckets, key)
}

// Len returns the number of tracked keys.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// sweep drops idle buckets at most once per idle period. Caller holds mu.
func (l *Limiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.idle {
		return
	}
	l.lastSweep = now
	for k, b := range l.buckets {
		if now.Sub(b.seen) > l.idle {
			delete(l.buckets, k)
		}
	}
}

// ClientIP extracts the client IP from an HTTP request.
// It checks X-Forwarded-For and X-Real-IP headers first (for proxied requests),
// then falls back to RemoteAddr.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// LoginLimiter throttles sign-in attempts per client IP and per username.
type LoginLimiter struct {
	ip   *Limiter
	user *Limiter
}

// NewLoginLimiter allows ipLimit attempts per minute per IP and userLimit
// attempts per five minutes per username.
func NewLoginLimiter(ipLimit, userLimit int) *LoginLimiter {
	return &LoginLimiter{
		ip:   New(ipLimit, time.Minute),
		user: New(userLimit, 5*time.Minute),
	}
}

// Check reports whether a sign-in attempt may proceed. When it may not, the
// second value is the message to show.
func (ll *LoginLimiter) Check(r *http.Request, username string) (bool, string) {
	if ll == nil {
		return true, ""
	}
	if !ll.ip.Allow(ClientIP(r)) {
		return false, "Too many sign-in attempts. Please wait a minute before trying again."
	}
	if key := userKey(username); key != "" && !ll.user.Allow(key) {
		return false, "Too many sign-in attempts for this account. Please wait a few minutes."
	}
	return true, ""
}

// ResetUser clears the username bucket after a successful sign-in.
func (ll *LoginLimiter) ResetUser(username string) {
	if ll == nil {
		return
	}
	if key := userKey(username); key != "" {
		ll.user.Reset(key)
	}
}

func userKey(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
