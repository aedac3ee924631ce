package dashboard_test

import (
	"context"
	"time"

	"github.com/dalemusser/intelhub/internal/domain/models"
)

// fakeSource returns fixed collections. A non-nil err field fails that
// lookup; a non-nil block channel holds the lookup until it is closed or the
// context ends.
type fakeSource struct {
	users    []models.User
	logs     []models.ActivityLog
	requests []models.ManualRequest

	usersErr    error
	logsErr     error
	requestsErr error

	block chan struct{}
}

func (f *fakeSource) hold(ctx context.Context) error {
	if f.block == nil {
		return nil
	}
	select {
	case <-f.block:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *fakeSource) Users(ctx context.Context) ([]models.User, error) {
	if err := f.hold(ctx); err != nil {
		return nil, err
	}
	if f.usersErr != nil {
		return nil, f.usersErr
	}
	return f.users, nil
}

func (f *fakeSource) ActivityLogs(ctx context.Context) ([]models.ActivityLog, error) {
	if err := f.hold(ctx); err != nil {
		return nil, err
	}
	if f.logsErr != nil {
		return nil, f.logsErr
	}
	return f.logs, nil
}

func (f *fakeSource) ManualRequests(ctx context.Context) ([]models.ManualRequest, error) {
	if err := f.hold(ctx); err != nil {
		return nil, err
	}
	if f.requestsErr != nil {
		return nil, f.requestsErr
	}
	return f.requests, nil
}

func sampleUsers() []models.User {
	return []models.User{
		{ID: "1", Username: "officer1", FirstName: "John", LastName: "Doe", Role: models.RoleOfficer, IsActive: true, Credits: 100},
		{ID: "2", Username: "officer2", FirstName: "Jane", LastName: "Smith", Role: models.RoleOfficer, IsActive: true, Credits: 150},
		{ID: "3", Username: "officer3", FirstName: "Bob", LastName: "Johnson", Role: models.RoleOfficer, IsActive: false, Credits: 75},
		{ID: "4", Username: "admin1", FirstName: "Admin", LastName: "User", Role: models.RoleAdmin, IsActive: true, Credits: 500},
	}
}

func sampleRequests() []models.ManualRequest {
	now := time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC)
	return []models.ManualRequest{
		{ID: "1", Status: models.RequestPending, Type: "verification", CreatedAt: now},
		{ID: "2", Status: models.RequestCompleted, Type: "lookup", CreatedAt: now},
		{ID: "3", Status: models.RequestPending, Type: "search", CreatedAt: now},
	}
}

func sampleLogs(n int) []models.ActivityLog {
	now := time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC)
	out := make([]models.ActivityLog, n)
	for i := range out {
		out[i] = models.ActivityLog{
			ID:          string(rune('a' + i)),
			Username:    "officer1",
			Command:     "search",
			Query:       "lookup",
			CreditsUsed: int64(i + 1),
			CreatedAt:   now,
		}
	}
	return out
}

func sampleSource() *fakeSource {
	return &fakeSource{
		users:    sampleUsers(),
		logs:     sampleLogs(3),
		requests: sampleRequests(),
	}
}
