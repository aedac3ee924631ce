package dashboard_test

import (
	"testing"

	"github.com/dalemusser/intelhub/internal/app/features/dashboard"
	"github.com/dalemusser/intelhub/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStats_SampleData(t *testing.T) {
	s := dashboard.ComputeStats(sampleUsers(), sampleRequests())

	assert.Equal(t, 3, s.TotalOfficers)
	assert.Equal(t, 2, s.ActiveOfficers)
	assert.Equal(t, int64(825), s.TotalCredits, "admins count toward total credits")
	assert.Equal(t, 2, s.PendingRequests)
}

func TestComputeStats_Empty(t *testing.T) {
	s := dashboard.ComputeStats(nil, nil)
	assert.Equal(t, models.DashboardStats{}, s)
}

func TestComputeStats_PendingIsExactMatch(t *testing.T) {
	requests := []models.ManualRequest{
		{ID: "1", Status: "Pending"},
		{ID: "2", Status: "pending "},
		{ID: "3", Status: models.RequestProcessing},
		{ID: "4", Status: models.RequestPending},
	}
	s := dashboard.ComputeStats(nil, requests)
	assert.Equal(t, 1, s.PendingRequests)
}

func TestComputeStats_InactiveAdminNotCounted(t *testing.T) {
	users := []models.User{
		{ID: "1", Role: models.RoleAdmin, IsActive: false, Credits: 10},
		{ID: "2", Role: models.RoleOfficer, IsActive: false, Credits: 5},
	}
	s := dashboard.ComputeStats(users, nil)
	assert.Equal(t, 1, s.TotalOfficers)
	assert.Equal(t, 0, s.ActiveOfficers)
	assert.Equal(t, int64(15), s.TotalCredits)
}

func TestRecentActivity_TruncatesInSourceOrder(t *testing.T) {
	logs := sampleLogs(15)

	got := dashboard.RecentActivity(logs, dashboard.RecentActivityLimit)
	require.Len(t, got, 10)
	for i := range got {
		assert.Equal(t, logs[i].ID, got[i].ID, "index %d", i)
	}
}

func TestRecentActivity_FewerThanLimit(t *testing.T) {
	logs := sampleLogs(3)
	got := dashboard.RecentActivity(logs, dashboard.RecentActivityLimit)
	assert.Equal(t, logs, got)
}

func TestRecentActivity_DoesNotAlias(t *testing.T) {
	logs := sampleLogs(2)
	got := dashboard.RecentActivity(logs, 10)
	got[0].Username = "changed"
	assert.Equal(t, "officer1", logs[0].Username)
}

func TestRecentActivity_EmptyIsNonNil(t *testing.T) {
	got := dashboard.RecentActivity(nil, 10)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
