// internal/domain/models/activity.go
package models

import "time"

// ActivityLog is one command an officer ran against the platform.
// Entries are append-only upstream; the console only reads them.
type ActivityLog struct {
	ID          string    `bson:"_id" json:"id"`
	Username    string    `bson:"username" json:"username"`
	Command     string    `bson:"command" json:"command"`
	Query       string    `bson:"query" json:"query"`
	CreditsUsed int64     `bson:"credits_used" json:"credits_used"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
