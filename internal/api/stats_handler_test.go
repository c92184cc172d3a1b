package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"deployment-ops/quartermaster/internal/common"
	"deployment-ops/quartermaster/internal/constants"
	"deployment-ops/quartermaster/internal/db/repositories"
	"deployment-ops/quartermaster/internal/metrics"
	"deployment-ops/quartermaster/internal/models/dtos"
	gormModels "deployment-ops/quartermaster/internal/models/gorm"
	"deployment-ops/quartermaster/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testMetrics = metrics.NewMetricsRegistry()

func setupStatsRouter(t *testing.T) (*chi.Mux, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&gormModels.Deployment{},
		&gormModels.FlightRecord{},
		&gormModels.EquipmentStatusRecord{},
	); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	cache := common.NewCacheService(300, 600)
	statsSvc := services.NewStatsService(
		repositories.NewFlightRepository(nil, db),
		repositories.NewEquipmentRepository(db),
		repositories.NewDeploymentRepository(db),
		cache,
		testMetrics,
	)

	r := chi.NewRouter()
	r.Get("/api/v1/deployments/{deployment_id}/stats", DeploymentStatsHandler(statsSvc))
	return r, db
}

func TestDeploymentStatsHandler_Success(t *testing.T) {
	router, db := setupStatsRouter(t)

	start := time.Now().AddDate(0, 0, -1)
	deployment := &gormModels.Deployment{
		ID:        uuid.New().String(),
		Name:      "Task Force North",
		Status:    constants.DeploymentStatusActive,
		StartDate: &start,
	}
	if err := db.Create(deployment).Error; err != nil {
		t.Fatalf("Failed to seed deployment: %v", err)
	}

	deploymentID := deployment.ID
	flight := &gormModels.FlightRecord{
		ID:           uuid.New().String(),
		DeploymentID: &deploymentID,
		Date:         start,
		Status:       "Complete",
	}
	if err := db.Create(flight).Error; err != nil {
		t.Fatalf("Failed to seed flight: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/deployments/"+deployment.ID+"/stats", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dtos.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Status != string(constants.APIStatusOk) {
		t.Errorf("Expected ok status, got %s", resp.Status)
	}

	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("Expected data object, got %T", resp.Data)
	}
	if mrr, _ := data["mission_reliability"].(float64); mrr != 100 {
		t.Errorf("Expected MRR 100, got %v", data["mission_reliability"])
	}
}

func TestDeploymentStatsHandler_NotFound(t *testing.T) {
	router, _ := setupStatsRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/deployments/"+uuid.New().String()+"/stats", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
}
