// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

const devSessionKey = "dev-only-change-me-please-0123456789ABCDEF"

// appConfigKeys defines the configuration keys for the admin console.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: data_source, mongo_uri, session_name, etc.
//   - Environment variables: INTELHUB_DATA_SOURCE, INTELHUB_MONGO_URI, etc.
//   - Command-line flags: --data_source, --mongo_uri, etc.
var appConfigKeys = []config.AppKey{
	{Name: "data_source", Default: DataSourceMock, Desc: "Data source: 'mock' (sample data) or 'mongo'"},
	{Name: "mock_latency_percent", Default: 100, Desc: "Percent of the mock source's simulated latency (0 disables it)"},

	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "intelhub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	{Name: "session_key", Default: devSessionKey, Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "intelhub-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
	{Name: "session_max_age", Default: "24h", Desc: "Session cookie lifetime (e.g., 24h, 30m)"},
	{Name: "seed_placeholder_user", Default: true, Desc: "Sign first-time visitors in as the placeholder administrator"},

	{Name: "login_ip_limit", Default: 10, Desc: "Sign-in attempts allowed per minute per client IP"},
	{Name: "login_user_limit", Default: 5, Desc: "Sign-in attempts allowed per five minutes per username"},

	{Name: "dashboard_timeout", Default: "10s", Desc: "Upper bound for one dashboard load"},
	{Name: "short_timeout", Default: "5s", Desc: "Upper bound for single lookups (login)"},
	{Name: "ping_timeout", Default: "2s", Desc: "Upper bound for the health-check database ping"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, INTELHUB_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "INTELHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		DataSource:         appValues.String("data_source"),
		MockLatencyPercent: appValues.Int("mock_latency_percent"),

		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		SessionKey:          appValues.String("session_key"),
		SessionName:         appValues.String("session_name"),
		SessionDomain:       appValues.String("session_domain"),
		SessionMaxAge:       appValues.Duration("session_max_age", 24*time.Hour),
		SeedPlaceholderUser: appValues.Bool("seed_placeholder_user"),

		LoginIPLimit:   appValues.Int("login_ip_limit"),
		LoginUserLimit: appValues.Int("login_user_limit"),

		DashboardTimeout: appValues.Duration("dashboard_timeout", 10*time.Second),
		ShortTimeout:     appValues.Duration("short_timeout", 5*time.Second),
		PingTimeout:      appValues.Duration("ping_timeout", 2*time.Second),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// The MongoDB URI is only checked when Mongo is the selected data source.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	switch appCfg.DataSource {
	case DataSourceMock:
		if appCfg.MockLatencyPercent < 0 {
			return fmt.Errorf("mock_latency_percent must be >= 0, got %d", appCfg.MockLatencyPercent)
		}
	case DataSourceMongo:
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			logger.Error("invalid MongoDB URI", zap.Error(err))
			return fmt.Errorf("invalid MongoDB URI: %w", err)
		}
		if appCfg.MongoDatabase == "" {
			return fmt.Errorf("mongo_database is required when data_source is %q", DataSourceMongo)
		}
	default:
		return fmt.Errorf("unknown data_source %q (want %q or %q)", appCfg.DataSource, DataSourceMock, DataSourceMongo)
	}

	if appCfg.SessionName == "" {
		return fmt.Errorf("session_name is required")
	}
	if coreCfg != nil && coreCfg.Env == "prod" && appCfg.SessionKey == devSessionKey {
		return fmt.Errorf("session_key must be changed from the development default in production")
	}
	if appCfg.LoginIPLimit < 1 || appCfg.LoginUserLimit < 1 {
		return fmt.Errorf("login_ip_limit and login_user_limit must be at least 1")
	}
	if appCfg.DashboardTimeout <= 0 {
		return fmt.Errorf("dashboard_timeout must be positive")
	}

	return nil
}
