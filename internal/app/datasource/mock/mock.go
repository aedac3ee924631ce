// Package mock is a stand-in data source that serves fixed sample data after
// a simulated network delay.
package mock

import (
	"context"
	"time"

	"github.com/dalemusser/intelhub/internal/domain/models"
)

// Default simulated latencies per lookup.
const (
	DefaultUsersDelay          = 1000 * time.Millisecond
	DefaultActivityLogsDelay   = 800 * time.Millisecond
	DefaultManualRequestsDelay = 600 * time.Millisecond
)

// Delays configures the simulated latency of each lookup. Zero means no wait.
type Delays struct {
	Users          time.Duration
	ActivityLogs   time.Duration
	ManualRequests time.Duration
}

// DefaultDelays returns the stock latencies.
func DefaultDelays() Delays {
	return Delays{
		Users:          DefaultUsersDelay,
		ActivityLogs:   DefaultActivityLogsDelay,
		ManualRequests: DefaultManualRequestsDelay,
	}
}

// Scale returns the delays multiplied by percent/100. percent <= 0 disables
// all delays.
func (d Delays) Scale(percent int) Delays {
	if percent <= 0 {
		return Delays{}
	}
	f := func(v time.Duration) time.Duration { return v * time.Duration(percent) / 100 }
	return Delays{
		Users:          f(d.Users),
		ActivityLogs:   f(d.ActivityLogs),
		ManualRequests: f(d.ManualRequests),
	}
}

// Source serves fixed sequences. Timestamps are captured once in New so that
// repeated calls return identical data.
type Source struct {
	delays   Delays
	users    []models.User
	logs     []models.ActivityLog
	requests []models.ManualRequest
}

// New builds a mock source stamped with now.
func New(delays Delays, now time.Time) *Source {
	now = now.UTC()
	return &Source{
		delays: delays,
		users: []models.User{
			{ID: "1", Username: "officer1", FirstName: "John", LastName: "Doe", Role: models.RoleOfficer, IsActive: true, Credits: 100},
			{ID: "2", Username: "officer2", FirstName: "Jane", LastName: "Smith", Role: models.RoleOfficer, IsActive: true, Credits: 150},
			{ID: "3", Username: "officer3", FirstName: "Bob", LastName: "Johnson", Role: models.RoleOfficer, IsActive: false, Credits: 75},
			{ID: "4", Username: "admin1", FirstName: "Admin", LastName: "User", Role: models.RoleAdmin, IsActive: true, Credits: 500},
		},
		logs: []models.ActivityLog{
			{ID: "1", Username: "officer1", Command: "search", Query: "phone number lookup", CreditsUsed: 5, CreatedAt: now},
			{ID: "2", Username: "officer2", Command: "verify", Query: "identity verification", CreditsUsed: 3, CreatedAt: now},
			{ID: "3", Username: "officer1", Command: "lookup", Query: "address search", CreditsUsed: 2, CreatedAt: now},
		},
		requests: []models.ManualRequest{
			{ID: "1", Status: models.RequestPending, Type: "verification", CreatedAt: now},
			{ID: "2", Status: models.RequestCompleted, Type: "lookup", CreatedAt: now},
			{ID: "3", Status: models.RequestPending, Type: "search", CreatedAt: now},
		},
	}
}

func (s *Source) Users(ctx context.Context) ([]models.User, error) {
	if err := wait(ctx, s.delays.Users); err != nil {
		return nil, err
	}
	return append([]models.User(nil), s.users...), nil
}

func (s *Source) ActivityLogs(ctx context.Context) ([]models.ActivityLog, error) {
	if err := wait(ctx, s.delays.ActivityLogs); err != nil {
		return nil, err
	}
	return append([]models.ActivityLog(nil), s.logs...), nil
}

func (s *Source) ManualRequests(ctx context.Context) ([]models.ManualRequest, error) {
	if err := wait(ctx, s.delays.ManualRequests); err != nil {
		return nil, err
	}
	return append([]models.ManualRequest(nil), s.requests...), nil
}

// wait sleeps for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
