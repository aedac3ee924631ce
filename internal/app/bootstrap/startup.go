// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/intelhub/internal/app/resources"
	"github.com/dalemusser/intelhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	timeouts.Configure(timeouts.Config{
		Ping:      appCfg.PingTimeout,
		Short:     appCfg.ShortTimeout,
		Dashboard: appCfg.DashboardTimeout,
	})
	resources.LoadSharedTemplates()

	logger.Info("admin console ready to build handler",
		zap.String("data_source", appCfg.DataSource),
		zap.Duration("dashboard_timeout", appCfg.DashboardTimeout))
	return nil
}
