// internal/app/bootstrap/routes.go
package bootstrap

import (
	"crypto/sha256"
	"net/http"
	"time"

	"github.com/dalemusser/intelhub/internal/app/datasource"
	"github.com/dalemusser/intelhub/internal/app/datasource/mock"
	"github.com/dalemusser/intelhub/internal/app/datasource/mongostore"
	dashboardfeature "github.com/dalemusser/intelhub/internal/app/features/dashboard"
	_ "github.com/dalemusser/intelhub/internal/app/features/dashboard/views"
	errorsfeature "github.com/dalemusser/intelhub/internal/app/features/errors"
	healthfeature "github.com/dalemusser/intelhub/internal/app/features/health"
	homefeature "github.com/dalemusser/intelhub/internal/app/features/home"
	loginfeature "github.com/dalemusser/intelhub/internal/app/features/login"
	_ "github.com/dalemusser/intelhub/internal/app/features/login/views"
	logoutfeature "github.com/dalemusser/intelhub/internal/app/features/logout"
	sectionsfeature "github.com/dalemusser/intelhub/internal/app/features/sections"
	_ "github.com/dalemusser/intelhub/internal/app/features/sections/views"
	themefeature "github.com/dalemusser/intelhub/internal/app/features/theme"
	"github.com/dalemusser/intelhub/internal/app/system/auth"
	"github.com/dalemusser/intelhub/internal/app/system/metrics"
	"github.com/dalemusser/intelhub/internal/app/system/ratelimit"
	"github.com/dalemusser/intelhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. It initializes the template engine,
// picks the data source, applies session and CSRF middleware, and mounts
// the console's feature routers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	return buildRouter(coreCfg, appCfg, deps, prometheus.DefaultRegisterer, prometheus.DefaultGatherer, logger)
}

// buildRouter wires everything below the template engine. Tests call it
// with a private registry.
func buildRouter(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, reg prometheus.Registerer, gatherer prometheus.Gatherer, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"

	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, appCfg.SessionMaxAge, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}
	sessionMgr.SetSeedPlaceholder(appCfg.SeedPlaceholderUser)

	m := metrics.New(reg)
	src := datasource.Instrument(newSource(appCfg, deps), m, logger)

	errorsHandler := errorsfeature.NewHandler(sessionMgr)

	r := chi.NewRouter()
	r.NotFound(errorsHandler.NotFound)
	r.MethodNotAllowed(errorsHandler.MethodNotAllowed)

	// Probes and assets sit outside session and CSRF handling.
	healthHandler := healthfeature.NewHandler(pinger(deps), appCfg.DataSource, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	r.Group(func(app chi.Router) {
		if !secure {
			// Local development runs over plain HTTP.
			app.Use(func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
					next.ServeHTTP(w, csrf.PlaintextHTTPRequest(req))
				})
			})
		}
		app.Use(csrf.Protect(csrfKey(appCfg.SessionKey),
			csrf.Secure(secure),
			csrf.Path("/"),
			csrf.CookieName(appCfg.SessionName+"-csrf"),
			csrf.ErrorHandler(http.HandlerFunc(errorsHandler.CSRFFailure)),
		))

		// Loads the SessionUser into context (seeding the placeholder for
		// first-time visitors when enabled).
		app.Use(sessionMgr.LoadSessionUser)

		homeHandler := homefeature.NewHandler(logger)
		app.Mount("/", homefeature.Routes(homeHandler))

		// Authentication
		loginHandler := loginfeature.NewHandler(src, sessionMgr, appCfg.SeedPlaceholderUser, logger)
		loginHandler.Limiter = ratelimit.NewLoginLimiter(appCfg.LoginIPLimit, appCfg.LoginUserLimit)
		app.Mount(auth.LoginPath, loginfeature.Routes(loginHandler))

		logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
		app.Mount("/admin/logout", logoutfeature.Routes(logoutHandler, sessionMgr))

		themeHandler := themefeature.NewHandler(secure, logger)
		app.Mount("/admin/theme", themefeature.Routes(themeHandler))

		// Dashboard
		agg := dashboardfeature.NewAggregator(src, m, timeouts.Dashboard(), logger)
		dashboardHandler := dashboardfeature.NewHandler(agg, sessionMgr, logger)
		app.Mount("/admin/dashboard", dashboardfeature.Routes(dashboardHandler))
		app.Mount("/api/dashboard", dashboardfeature.APIRoutes(dashboardHandler))

		// Remaining sidebar screens
		sectionsHandler := sectionsfeature.NewHandler(sessionMgr, logger)
		sectionsfeature.Register(app, sectionsHandler)
	})

	return r, nil
}

// newSource picks the data source named by appCfg.DataSource.
func newSource(appCfg AppConfig, deps DBDeps) datasource.Source {
	if appCfg.DataSource == DataSourceMongo && deps.MongoDatabase != nil {
		return mongostore.New(deps.MongoDatabase)
	}
	delays := mock.DefaultDelays().Scale(appCfg.MockLatencyPercent)
	return mock.New(delays, time.Now())
}

// pinger returns nil (not a typed nil) when there is no Mongo client.
func pinger(deps DBDeps) healthfeature.Pinger {
	if deps.MongoClient == nil {
		return nil
	}
	return deps.MongoClient
}

// csrfKey derives the 32-byte CSRF key from the session key.
func csrfKey(sessionKey string) []byte {
	sum := sha256.Sum256([]byte("csrf:" + sessionKey))
	return sum[:]
}
