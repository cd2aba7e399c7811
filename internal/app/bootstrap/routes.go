// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	errorsfeature "github.com/dalemusser/placementhub/internal/app/features/errors"
	healthfeature "github.com/dalemusser/placementhub/internal/app/features/health"
	internshipfeature "github.com/dalemusser/placementhub/internal/app/features/internship"
	spafeature "github.com/dalemusser/placementhub/internal/app/features/spa"
	applicationstore "github.com/dalemusser/placementhub/internal/app/store/applications"
	programstore "github.com/dalemusser/placementhub/internal/app/store/programs"
	"github.com/dalemusser/placementhub/internal/app/system/metrics"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// the Startup hook have completed.
//
// Layout:
//   - /health               liveness and database status
//   - /metrics              Prometheus metrics
//   - /uploads/*            stored CV files
//   - /api/internship/*     applications and programs API
//   - anything else         SPA bundle when frontend_dist is set, else JSON 404
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	if appCfg.TrustProxyHeaders {
		r.Use(middleware.RealIP)
	}
	r.Use(errLog.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "HEAD", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))

	r.MethodNotAllowed(errorsfeature.MethodNotAllowed)
	if appCfg.FrontendDist != "" {
		spa := spafeature.NewHandler(afero.NewBasePathFs(afero.NewOsFs(), appCfg.FrontendDist), logger)
		r.NotFound(spa.Serve)
		logger.Info("serving frontend bundle", zap.String("dist", appCfg.FrontendDist))
	} else {
		r.NotFound(errorsfeature.RouteNotFound)
	}

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	r.Handle("/metrics", metrics.Handler())

	// Uploaded CVs
	r.Handle("/uploads/*", http.StripPrefix("/uploads", deps.CVs.FileServer()))

	// Internship API
	internshipHandler := internshipfeature.NewHandler(
		applicationstore.New(deps.MongoDatabase),
		programstore.New(deps.MongoDatabase),
		deps.CVs,
		deps.Notifier,
		errLog,
		logger,
	)
	r.Mount("/api/internship", internshipfeature.Routes(internshipHandler, deps.ApplyLimiter))

	return r, nil
}
