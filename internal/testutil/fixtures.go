package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/intelhub/internal/app/datasource/mongostore"
	"github.com/dalemusser/intelhub/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a user and returns it.
func (f *Fixtures) CreateUser(ctx context.Context, id, username string, role models.Role, active bool, credits int64) models.User {
	f.t.Helper()

	u := models.User{
		ID:       id,
		Username: username,
		Role:     role,
		IsActive: active,
		Credits:  credits,
	}
	if _, err := f.db.Collection(mongostore.UsersCollection).InsertOne(ctx, u); err != nil {
		f.t.Fatalf("CreateUser(%s): %v", username, err)
	}
	return u
}

// CreateOfficer inserts an active officer.
func (f *Fixtures) CreateOfficer(ctx context.Context, id, username string, credits int64) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, id, username, models.RoleOfficer, true, credits)
}

// CreateActivityLog inserts an activity entry stamped at createdAt.
func (f *Fixtures) CreateActivityLog(ctx context.Context, username, command string, createdAt time.Time) models.ActivityLog {
	f.t.Helper()

	l := models.ActivityLog{
		ID:          uuid.NewString(),
		Username:    username,
		Command:     command,
		Query:       command + " query",
		CreditsUsed: 1,
		CreatedAt:   createdAt.UTC().Truncate(time.Millisecond),
	}
	if _, err := f.db.Collection(mongostore.ActivityLogsCollection).InsertOne(ctx, l); err != nil {
		f.t.Fatalf("CreateActivityLog: %v", err)
	}
	return l
}

// CreateManualRequest inserts a manual request stamped at createdAt.
func (f *Fixtures) CreateManualRequest(ctx context.Context, status models.RequestStatus, kind string, createdAt time.Time) models.ManualRequest {
	f.t.Helper()

	m := models.ManualRequest{
		ID:        uuid.NewString(),
		Status:    status,
		Type:      kind,
		CreatedAt: createdAt.UTC().Truncate(time.Millisecond),
	}
	if _, err := f.db.Collection(mongostore.ManualRequestsCollection).InsertOne(ctx, m); err != nil {
		f.t.Fatalf("CreateManualRequest: %v", err)
	}
	return m
}
