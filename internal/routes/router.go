package routes

import (
	"context"
	"net/http"
	"time"

	"deployment-ops/quartermaster/internal/api"
	"deployment-ops/quartermaster/internal/db"
	"deployment-ops/quartermaster/internal/logging"
	"deployment-ops/quartermaster/internal/metrics"
	"deployment-ops/quartermaster/internal/middleware"
	"deployment-ops/quartermaster/internal/workers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func RegisterRoutes(upSince time.Time) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// Initialize metrics registry
	metricsReg := metrics.NewMetricsRegistry()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RateLimitMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:8081"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-API-Key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	logging.Info("Router initialized with metrics and logging middleware")
	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(db.DB, upSince))

	// Initialize dependencies using DI pattern
	deps, err := api.InitDependencies(metricsReg)
	if err != nil {
		panic("Failed to initialize dependencies: " + err.Error())
	}

	// Start the stats refresh worker for active deployments
	workers.InitWorkers(context.Background(), deps.Repo.Deployments, deps.Services.Stats)

	// Register API routes
	RegisterAPIRoutes(r, metricsReg, deps)

	return r
}
