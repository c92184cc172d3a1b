package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"deployment-ops/quartermaster/internal/common"
	"deployment-ops/quartermaster/internal/constants"
	"deployment-ops/quartermaster/internal/db/repositories"
	"deployment-ops/quartermaster/internal/metrics"
	"deployment-ops/quartermaster/internal/models/dtos"
	gormModels "deployment-ops/quartermaster/internal/models/gorm"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Prometheus collectors register against the default registry, so one shared
// instance serves every test in this package.
var testMetrics = metrics.NewMetricsRegistry()

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Auto migrate
	if err := db.AutoMigrate(
		&gormModels.Deployment{},
		&gormModels.FlightRecord{},
		&gormModels.EquipmentStatusRecord{},
	); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func setupStatsService(t *testing.T, db *gorm.DB) (*StatsService, *common.CacheService) {
	cache := common.NewCacheService(300, 600)

	svc := NewStatsService(
		repositories.NewFlightRepository(nil, db),
		repositories.NewEquipmentRepository(db),
		repositories.NewDeploymentRepository(db),
		cache,
		testMetrics,
	)
	return svc, cache
}

func seedDeployment(t *testing.T, db *gorm.DB, start time.Time) *gormModels.Deployment {
	deployment := &gormModels.Deployment{
		ID:        uuid.New().String(),
		Name:      "Task Force South",
		Location:  "FOB Echo",
		Status:    constants.DeploymentStatusActive,
		StartDate: &start,
	}
	if err := db.Create(deployment).Error; err != nil {
		t.Fatalf("Failed to seed deployment: %v", err)
	}
	return deployment
}

func seedFlight(t *testing.T, db *gorm.DB, deploymentID string, date time.Time, status, party string) {
	flight := &gormModels.FlightRecord{
		ID:               uuid.New().String(),
		DeploymentID:     &deploymentID,
		Date:             date,
		Status:           status,
		ResponsibleParty: party,
		Hours:            1.5,
	}
	if err := db.Create(flight).Error; err != nil {
		t.Fatalf("Failed to seed flight: %v", err)
	}
}

func seedEquipment(t *testing.T, db *gorm.DB, deploymentID string, date time.Time, category, serial, status string) {
	record := &gormModels.EquipmentStatusRecord{
		ID:           uuid.New().String(),
		DeploymentID: &deploymentID,
		Date:         date,
		Category:     category,
		Equipment:    "V-BAT",
		SerialNumber: serial,
		Status:       status,
	}
	if err := db.Create(record).Error; err != nil {
		t.Fatalf("Failed to seed equipment record: %v", err)
	}
}

func TestStatsService_GetDeploymentStats(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := setupStatsService(t, db)

	start := time.Now().AddDate(0, 0, -3)
	deployment := seedDeployment(t, db, start)

	day := func(offset int) time.Time { return start.AddDate(0, 0, offset) }

	seedFlight(t, db, deployment.ID, day(0), "Complete", "")
	seedFlight(t, db, deployment.ID, day(1), "Delay", "")
	seedFlight(t, db, deployment.ID, day(1), "CNX", "Shield AI")
	seedFlight(t, db, deployment.ID, day(2), "Alert", "")
	seedFlight(t, db, deployment.ID, day(2), "CNX", "Weather")

	seedEquipment(t, db, deployment.ID, day(0), "Aircraft", "A1", "FMC")
	seedEquipment(t, db, deployment.ID, day(0), "Payloads", "P1", "FMC")

	summary, err := svc.GetDeploymentStats(context.Background(), deployment.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Weather CNX is excluded: denominator 4, MRR numerator 2.
	if summary.MissionReliability != 50 {
		t.Errorf("Expected MRR 50, got %v", summary.MissionReliability)
	}
	if summary.TaskingRating != 75 {
		t.Errorf("Expected tasking 75, got %v", summary.TaskingRating)
	}
	if summary.ByStatus["CNX — Shield AI"] != 1 {
		t.Errorf("Expected operator CNX split in breakdown, got %v", summary.ByStatus)
	}
	if summary.AvailabilityRating != 100 {
		t.Errorf("Expected availability 100 with capable aircraft and payload, got %v", summary.AvailabilityRating)
	}
	if summary.FlightCount != 5 {
		t.Errorf("Expected 5 flights, got %d", summary.FlightCount)
	}
	if summary.Totals.Hours != 7.5 {
		t.Errorf("Expected 7.5 summed hours, got %v", summary.Totals.Hours)
	}
}

func TestStatsService_CachesSummary(t *testing.T) {
	db := setupTestDB(t)
	svc, cache := setupStatsService(t, db)

	start := time.Now().AddDate(0, 0, -1)
	deployment := seedDeployment(t, db, start)
	seedFlight(t, db, deployment.ID, start, "Complete", "")

	first, err := svc.GetDeploymentStats(context.Background(), deployment.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, found := cache.Get(string(constants.CachePrefixDeploymentStats) + deployment.ID); !found {
		t.Fatal("Expected summary to be cached after first computation")
	}

	// New records must not show up until the cache entry is invalidated.
	seedFlight(t, db, deployment.ID, start, "CNX", "Shield AI")

	second, err := svc.GetDeploymentStats(context.Background(), deployment.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if second.FlightCount != first.FlightCount {
		t.Errorf("Expected cached summary, got a recompute: %d vs %d", second.FlightCount, first.FlightCount)
	}

	cache.Delete(string(constants.CachePrefixDeploymentStats) + deployment.ID)

	third, err := svc.GetDeploymentStats(context.Background(), deployment.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if third.FlightCount != 2 {
		t.Errorf("Expected recompute after invalidation, got %d flights", third.FlightCount)
	}
}

func TestStatsService_ReadsRedisShapedCacheEntries(t *testing.T) {
	db := setupTestDB(t)
	svc, cache := setupStatsService(t, db)

	stored := &dtos.MetricsSummary{
		MissionReliability: 87.5,
		TaskingRating:      90,
		ByStatus:           map[string]int{"Complete": 7},
		FlightCount:        8,
	}

	// The Redis cache round-trips values through JSON, so a hit comes back
	// as generic maps rather than the stored pointer.
	data, err := json.Marshal(stored)
	if err != nil {
		t.Fatalf("Failed to marshal summary: %v", err)
	}
	var generic interface{}
	if err := json.Unmarshal(data, &generic); err != nil {
		t.Fatalf("Failed to unmarshal summary: %v", err)
	}

	deploymentID := uuid.New().String()
	cache.Set(string(constants.CachePrefixDeploymentStats)+deploymentID, generic, time.Minute)

	// The deployment does not exist, so a recompute would fail; success
	// proves the cached document was served.
	summary, err := svc.GetDeploymentStats(context.Background(), deploymentID)
	if err != nil {
		t.Fatalf("Expected cached summary, got %v", err)
	}
	if summary.MissionReliability != 87.5 {
		t.Errorf("Expected MRR 87.5 from cache, got %v", summary.MissionReliability)
	}
	if summary.FlightCount != 8 {
		t.Errorf("Expected 8 flights from cache, got %d", summary.FlightCount)
	}
	if summary.ByStatus["Complete"] != 7 {
		t.Errorf("Expected breakdown to survive the round trip, got %v", summary.ByStatus)
	}
}

func TestStatsService_DeploymentNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := setupStatsService(t, db)

	_, err := svc.GetDeploymentStats(context.Background(), uuid.New().String())
	if err == nil {
		t.Fatal("Expected error for missing deployment")
	}

	var statsErr *StatsError
	if !errors.As(err, &statsErr) {
		t.Fatalf("Expected StatsError, got %T", err)
	}
	if statsErr.Code != constants.ErrCodeDeploymentNotFound {
		t.Errorf("Expected code %s, got %s", constants.ErrCodeDeploymentNotFound, statsErr.Code)
	}
}

func TestStatsService_UndefinedAvailabilityFlagged(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := setupStatsService(t, db)

	// No start date and no equipment history.
	deployment := &gormModels.Deployment{
		ID:     uuid.New().String(),
		Name:   "Unscheduled",
		Status: constants.DeploymentStatusActive,
	}
	if err := db.Create(deployment).Error; err != nil {
		t.Fatalf("Failed to seed deployment: %v", err)
	}

	summary, err := svc.GetDeploymentStats(context.Background(), deployment.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !summary.Availability.Undefined {
		t.Error("Expected availability to be flagged undefined")
	}
	if summary.AvailabilityRating != 0 {
		t.Errorf("Expected availability rating 0, got %v", summary.AvailabilityRating)
	}
	if summary.MissionReliability != 100 {
		t.Errorf("Expected MRR 100 for empty flight set, got %v", summary.MissionReliability)
	}
}

func TestFlightsService_ResolvesPartyFromReason(t *testing.T) {
	db := setupTestDB(t)
	cache := common.NewCacheService(300, 600)
	svc := NewFlightsService(repositories.NewFlightRepository(nil, db), cache)

	start := time.Now().AddDate(0, 0, -1)
	deployment := seedDeployment(t, db, start)

	flight, err := svc.LogFlight(context.Background(), &dtos.CreateFlightRequest{
		DeploymentID:   deployment.ID,
		Date:           start,
		Status:         "CNX",
		ReasonForDelay: "GCS Failure",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if flight.ResponsibleParty != "Shield AI" {
		t.Errorf("Expected party resolved from reason table, got %q", flight.ResponsibleParty)
	}
}
