// Package mongostore reads the console's collections from MongoDB.
package mongostore

import (
	"context"
	"fmt"

	"github.com/dalemusser/intelhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	UsersCollection          = "users"
	ActivityLogsCollection   = "user_logs"
	ManualRequestsCollection = "manual_requests"
)

type Store struct {
	users    *mongo.Collection
	logs     *mongo.Collection
	requests *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		users:    db.Collection(UsersCollection),
		logs:     db.Collection(ActivityLogsCollection),
		requests: db.Collection(ManualRequestsCollection),
	}
}

// Users returns every user ordered by _id.
func (s *Store) Users(ctx context.Context) ([]models.User, error) {
	out := []models.User{}
	if err := findAll(ctx, s.users, bson.D{{Key: "_id", Value: 1}}, &out); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return out, nil
}

// ActivityLogs returns the activity log newest first. The dashboard treats
// this order as authoritative.
func (s *Store) ActivityLogs(ctx context.Context) ([]models.ActivityLog, error) {
	out := []models.ActivityLog{}
	sort := bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}
	if err := findAll(ctx, s.logs, sort, &out); err != nil {
		return nil, fmt.Errorf("list activity logs: %w", err)
	}
	return out, nil
}

// ManualRequests returns manual requests newest first.
func (s *Store) ManualRequests(ctx context.Context) ([]models.ManualRequest, error) {
	out := []models.ManualRequest{}
	sort := bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}
	if err := findAll(ctx, s.requests, sort, &out); err != nil {
		return nil, fmt.Errorf("list manual requests: %w", err)
	}
	return out, nil
}

func findAll(ctx context.Context, c *mongo.Collection, sort bson.D, out any) error {
	cur, err := c.Find(ctx, bson.M{}, options.Find().SetSort(sort))
	if err != nil {
		return err
	}
	defer cur.Close(ctx)
	return cur.All(ctx, out)
}

// EnsureIndexes creates the indexes backing the sort orders above.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	byCreated := mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}},
	}
	if _, err := db.Collection(ActivityLogsCollection).Indexes().CreateOne(ctx, byCreated); err != nil {
		return fmt.Errorf("index %s: %w", ActivityLogsCollection, err)
	}
	if _, err := db.Collection(ManualRequestsCollection).Indexes().CreateOne(ctx, byCreated); err != nil {
		return fmt.Errorf("index %s: %w", ManualRequestsCollection, err)
	}
	byStatus := mongo.IndexModel{Keys: bson.D{{Key: "status", Value: 1}}}
	if _, err := db.Collection(ManualRequestsCollection).Indexes().CreateOne(ctx, byStatus); err != nil {
		return fmt.Errorf("index %s status: %w", ManualRequestsCollection, err)
	}
	byUsername := mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Collection(UsersCollection).Indexes().CreateOne(ctx, byUsername); err != nil {
		return fmt.Errorf("index %s username: %w", UsersCollection, err)
	}
	return nil
}
