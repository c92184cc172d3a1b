package api

import (
	"os"

	"deployment-ops/quartermaster/internal/common"
	"deployment-ops/quartermaster/internal/db"
	"deployment-ops/quartermaster/internal/db/repositories"
	"deployment-ops/quartermaster/internal/logging"
	"deployment-ops/quartermaster/internal/metrics"
	"deployment-ops/quartermaster/internal/services"
)

type Repositories struct {
	Deployments *repositories.DeploymentRepository
	Flights     *repositories.FlightRepository
	Equipment   *repositories.EquipmentRepository
	Inventory   *repositories.InventoryRepository
	Keys        *repositories.KeysRepo
}

type Services struct {
	Cache       common.CacheInterface
	Stats       *services.StatsService
	Flights     *services.FlightsService
	Equipment   *services.EquipmentService
	Deployments *services.DeploymentService
	Inventory   *services.InventoryService
	URLSigner   *common.URLSignerService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
}

// InitDependencies wires repositories and services. Redis is preferred for
// caching when reachable; otherwise the in-memory cache takes over.
func InitDependencies(metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {

	repos := &Repositories{
		Deployments: repositories.NewDeploymentRepository(db.PgDB),
		Flights:     repositories.NewFlightRepository(db.DB, db.PgDB),
		Equipment:   repositories.NewEquipmentRepository(db.PgDB),
		Inventory:   repositories.NewInventoryRepository(db.PgDB),
		Keys:        repositories.NewApiKeysRepo(db.DB),
	}

	redisClient := common.NewRedisClient()

	var cache common.CacheInterface
	if redisCache, err := common.NewRedisCacheService(redisClient); err == nil {
		cache = redisCache
		logging.Info("Using Redis cache")
	} else {
		cache = common.NewCacheService(300, 600)
		logging.Warn("Redis unavailable, using in-memory cache", "error", err.Error())
	}

	secret := os.Getenv("DASHBOARD_LINK_SECRET")
	if secret == "" {
		secret = "quartermaster-dev-secret"
		logging.Warn("DASHBOARD_LINK_SECRET not set, using development default")
	}

	svcs := &Services{
		Cache:       cache,
		Stats:       services.NewStatsService(repos.Flights, repos.Equipment, repos.Deployments, cache, metricsReg),
		Flights:     services.NewFlightsService(repos.Flights, cache),
		Equipment:   services.NewEquipmentService(repos.Equipment, cache),
		Deployments: services.NewDeploymentService(repos.Deployments),
		Inventory:   services.NewInventoryService(repos.Inventory),
		URLSigner:   common.NewURLSignerService([]byte(secret), cache),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Metrics:  metricsReg,
	}, nil
}
