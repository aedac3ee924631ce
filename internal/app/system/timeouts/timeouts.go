// Package timeouts provides centralized timeout values for handler operations.
//
// Timeouts can be configured at startup using Configure(). If not configured,
// sensible defaults are used.
//
//   - Ping: health checks and connectivity verification
//   - Short: single lookups such as resolving a username at login
//   - Dashboard: one full dashboard load cycle (all three data-source lookups)
package timeouts

import (
	"sync"
	"time"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultPing      = 2 * time.Second
	DefaultShort     = 5 * time.Second
	DefaultDashboard = 10 * time.Second
)

var mu sync.RWMutex

var (
	ping      = DefaultPing
	short     = DefaultShort
	dashboard = DefaultDashboard
)

// Ping returns the timeout for health checks.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Short returns the timeout for single lookups.
func Short() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return short
}

// Dashboard returns the budget for one dashboard load cycle.
func Dashboard() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return dashboard
}

// Config holds timeout configuration values.
// Zero values are ignored (defaults are kept).
type Config struct {
	Ping      time.Duration
	Short     time.Duration
	Dashboard time.Duration
}

// Configure sets custom timeout values. Zero values in the config are ignored,
// keeping the current (or default) values.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		ping = cfg.Ping
	}
	if cfg.Short > 0 {
		short = cfg.Short
	}
	if cfg.Dashboard > 0 {
		dashboard = cfg.Dashboard
	}
}

// Reset restores all timeouts to their default values.
// Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	short = DefaultShort
	dashboard = DefaultDashboard
}

// Current returns the current timeout configuration.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{Ping: ping, Short: short, Dashboard: dashboard}
}
