// internal/domain/models/manualrequest.go
package models

import "time"

// RequestStatus is the lifecycle status of a manual request.
// Comparisons are exact and case-sensitive.
type RequestStatus string

const (
	RequestPending    RequestStatus = "pending"
	RequestProcessing RequestStatus = "processing"
	RequestCompleted  RequestStatus = "completed"
	RequestFailed     RequestStatus = "failed"
)

// ManualRequest is a lookup that an operator has to fulfil by hand.
type ManualRequest struct {
	ID        string        `bson:"_id" json:"id"`
	Status    RequestStatus `bson:"status" json:"status"`
	Type      string        `bson:"type" json:"type"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
}

// IsPending reports whether the request counts toward the pending statistic.
func (m ManualRequest) IsPending() bool {
	return m.Status == RequestPending
}
