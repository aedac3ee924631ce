// internal/app/features/dashboard/aggregate.go
package dashboard

import "github.com/dalemusser/intelhub/internal/domain/models"

// RecentActivityLimit is how many activity entries the dashboard shows.
const RecentActivityLimit = 10

// ComputeStats derives the summary cards from one fetch cycle.
// TotalCredits sums every user, admins included.
func ComputeStats(users []models.User, requests []models.ManualRequest) models.DashboardStats {
	var s models.DashboardStats
	for _, u := range users {
		s.TotalCredits += u.Credits
		if !u.IsOfficer() {
			continue
		}
		s.TotalOfficers++
		if u.IsActive {
			s.ActiveOfficers++
		}
	}
	for _, m := range requests {
		if m.IsPending() {
			s.PendingRequests++
		}
	}
	return s
}

// RecentActivity returns the first n entries of logs in source order.
// The result never aliases logs.
func RecentActivity(logs []models.ActivityLog, n int) []models.ActivityLog {
	if n > len(logs) {
		n = len(logs)
	}
	if n <= 0 {
		return []models.ActivityLog{}
	}
	out := make([]models.ActivityLog, n)
	copy(out, logs[:n])
	return out
}
