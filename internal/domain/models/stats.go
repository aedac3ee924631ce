// internal/domain/models/stats.go
package models

// DashboardStats is derived on every dashboard load and never stored.
//
// Invariant: ActiveOfficers <= TotalOfficers.
// TotalCredits sums every fetched user, admins included.
type DashboardStats struct {
	TotalOfficers   int   `json:"total_officers"`
	ActiveOfficers  int   `json:"active_officers"`
	TotalCredits    int64 `json:"total_credits"`
	PendingRequests int   `json:"pending_requests"`
}
