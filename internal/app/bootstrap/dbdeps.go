// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds back-end dependencies for the app. Both fields are nil when
// the mock data source is selected.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database
}
