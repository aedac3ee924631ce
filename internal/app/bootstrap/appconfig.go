// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// Data source selections for AppConfig.DataSource.
const (
	DataSourceMock  = "mock"
	DataSourceMongo = "mongo"
)

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers
// ports, TLS, logging and the environment name; everything here is
// specific to the admin console.
type AppConfig struct {
	// Data source selection
	DataSource         string // "mock" (in-memory sample data) or "mongo"
	MockLatencyPercent int    // scales the mock's simulated delays; 0 disables them

	// MongoDB connection configuration (only used when DataSource is "mongo")
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Session management configuration
	SessionKey          string        // Secret key for signing session cookies (must be strong in production)
	SessionName         string        // Cookie name for sessions (default: intelhub-session)
	SessionDomain       string        // Cookie domain (blank means current host)
	SessionMaxAge       time.Duration // Cookie lifetime
	SeedPlaceholderUser bool          // sign first-time visitors in as the placeholder administrator

	// Sign-in throttling
	LoginIPLimit   int // attempts per minute per client IP
	LoginUserLimit int // attempts per five minutes per username

	// Timeouts
	DashboardTimeout time.Duration // bounds one dashboard load cycle
	ShortTimeout     time.Duration // bounds single lookups such as login
	PingTimeout      time.Duration // bounds the health-check ping
}
