package services

import (
	"context"
	"fmt"

	"deployment-ops/quartermaster/internal/common"
	"deployment-ops/quartermaster/internal/constants"
	"deployment-ops/quartermaster/internal/db/repositories"
	"deployment-ops/quartermaster/internal/models/dtos"
	gormModels "deployment-ops/quartermaster/internal/models/gorm"
	"deployment-ops/quartermaster/internal/stats"

	"github.com/google/uuid"
)

// EquipmentService owns the daily equipment readiness log
type EquipmentService struct {
	equipmentRepo *repositories.EquipmentRepository
	cache         common.CacheInterface
}

func NewEquipmentService(equipmentRepo *repositories.EquipmentRepository, cache common.CacheInterface) *EquipmentService {
	return &EquipmentService{
		equipmentRepo: equipmentRepo,
		cache:         cache,
	}
}

// LogStatus persists one equipment status snapshot. The capability code is
// validated through the same normalization the metrics engine uses, so a
// record that parses as unknown here is rejected rather than silently
// contributing nothing to availability later.
func (s *EquipmentService) LogStatus(ctx context.Context, req *dtos.CreateEquipmentStatusRequest) (*gormModels.EquipmentStatusRecord, error) {
	if req.Category == "" || req.SerialNumber == "" {
		return nil, fmt.Errorf("%s: category and serial_number are required", constants.GetErrorMessage(constants.ErrCodeInvalidPayload))
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%s: date is required", constants.GetErrorMessage(constants.ErrCodeInvalidPayload))
	}
	if stats.ParseEquipmentStatus(req.Status) == stats.EquipmentStatusUnknown {
		return nil, fmt.Errorf("%s: unknown equipment status %q", constants.GetErrorMessage(constants.ErrCodeInvalidPayload), req.Status)
	}

	record := &gormModels.EquipmentStatusRecord{
		ID:           uuid.New().String(),
		Date:         req.Date,
		Category:     req.Category,
		Equipment:    req.Equipment,
		SerialNumber: req.SerialNumber,
		Status:       req.Status,
		Notes:        req.Notes,
	}
	if req.DeploymentID != "" {
		record.DeploymentID = &req.DeploymentID
	}

	if err := s.equipmentRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	if req.DeploymentID != "" {
		s.cache.Delete(string(constants.CachePrefixDeploymentStats) + req.DeploymentID)
	}
	return record, nil
}

// GetRecords lists equipment status records, scoped to a deployment when one
// is given. Records come back date ascending, the order the reconstruction
// engine expects.
func (s *EquipmentService) GetRecords(ctx context.Context, deploymentID string) ([]gormModels.EquipmentStatusRecord, error) {
	if deploymentID == "" {
		return s.equipmentRepo.GetAll(ctx)
	}
	return s.equipmentRepo.GetByDeployment(ctx, deploymentID)
}

// GetHistory returns the status history for one item
func (s *EquipmentService) GetHistory(ctx context.Context, category, serialNumber string) ([]gormModels.EquipmentStatusRecord, error) {
	return s.equipmentRepo.GetBySerial(ctx, category, serialNumber)
}
