package routes

import (
	"deployment-ops/quartermaster/internal/api"
	"deployment-ops/quartermaster/internal/metrics"
	"deployment-ops/quartermaster/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, metricsReg *metrics.MetricsRegistry, deps *api.Dependencies) {

	svcs := deps.Services

	// API v1 routes
	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.MetricsMiddleware(metricsReg))
		// global: all routes require an API key or a presigned dashboard token
		v1.Use(middleware.AuthMiddleware(deps.Repo.Keys, svcs.URLSigner))

		// Deployments
		v1.Post("/deployments", api.CreateDeploymentHandler(svcs.Deployments))
		v1.Get("/deployments", api.ListDeploymentsHandler(svcs.Deployments))
		v1.Get("/deployments/{deployment_id}", api.GetDeploymentHandler(svcs.Deployments))
		v1.Post("/deployments/{deployment_id}/complete", api.CompleteDeploymentHandler(svcs.Deployments))

		// Dashboard aggregates
		v1.Get("/deployments/{deployment_id}/stats", api.DeploymentStatsHandler(svcs.Stats))
		v1.Get("/deployments/{deployment_id}/flight-totals", api.FlightTotalsHandler(svcs.Flights))
		v1.Post("/deployments/{deployment_id}/dashboard-link", api.GenerateDashboardLinkHandler(svcs.URLSigner, svcs.Deployments))

		// Flight log
		v1.Post("/flights", api.LogFlightHandler(svcs.Flights))
		v1.Get("/flights", api.ListFlightsHandler(svcs.Flights))
		v1.Delete("/flights/{flight_id}", api.DeleteFlightHandler(svcs.Flights))

		// Equipment readiness log
		v1.Post("/equipment", api.LogEquipmentStatusHandler(svcs.Equipment))
		v1.Get("/equipment", api.ListEquipmentHandler(svcs.Equipment))
		v1.Get("/equipment/{category}/{serial_number}/history", api.EquipmentHistoryHandler(svcs.Equipment))

		// Inventory
		v1.Post("/inventory/kits", api.CreateKitHandler(svcs.Inventory))
		v1.Get("/deployments/{deployment_id}/inventory/kits", api.ListKitsHandler(svcs.Inventory))
		v1.Post("/inventory/shipments", api.CreateShipmentHandler(svcs.Inventory))
		v1.Get("/deployments/{deployment_id}/inventory/shipments", api.ListShipmentsHandler(svcs.Inventory))
		v1.Post("/inventory/shipments/{shipment_id}/status", api.UpdateShipmentStatusHandler(svcs.Inventory))
		v1.Post("/inventory/parts", api.LogPartUtilizationHandler(svcs.Inventory))
	})
}
