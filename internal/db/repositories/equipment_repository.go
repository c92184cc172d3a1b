package repositories

import (
	"context"
	"fmt"

	gormModels "deployment-ops/quartermaster/internal/models/gorm"

	"gorm.io/gorm"
)

// EquipmentRepository handles equipment status log operations using GORM
type EquipmentRepository struct {
	db *gorm.DB
}

// NewEquipmentRepository creates a new GORM-based equipment repository
func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

// Create inserts a new equipment status snapshot
func (r *EquipmentRepository) Create(ctx context.Context, record *gormModels.EquipmentStatusRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create equipment status record: %w", err)
	}
	return nil
}

// GetByDeployment retrieves equipment status records for a deployment.
// Records come back sorted ascending by date then creation time, so same-day
// updates replay in the order they were filed. The reconstruction engine
// depends on that ordering for its last-record-wins rule.
func (r *EquipmentRepository) GetByDeployment(ctx context.Context, deploymentID string) ([]gormModels.EquipmentStatusRecord, error) {
	var records []gormModels.EquipmentStatusRecord

	err := r.db.WithContext(ctx).
		Where("deployment_id = ?", deploymentID).
		Order("date ASC").
		Order("created_at ASC").
		Find(&records).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch equipment records: %w", err)
	}

	return records, nil
}

// GetAll retrieves every equipment status record, date ascending
func (r *EquipmentRepository) GetAll(ctx context.Context) ([]gormModels.EquipmentStatusRecord, error) {
	var records []gormModels.EquipmentStatusRecord

	err := r.db.WithContext(ctx).
		Order("date ASC").
		Order("created_at ASC").
		Find(&records).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch equipment records: %w", err)
	}

	return records, nil
}

// GetBySerial retrieves the status history for one item
func (r *EquipmentRepository) GetBySerial(ctx context.Context, category, serialNumber string) ([]gormModels.EquipmentStatusRecord, error) {
	var records []gormModels.EquipmentStatusRecord

	err := r.db.WithContext(ctx).
		Where("category = ? AND serial_number = ?", category, serialNumber).
		Order("date ASC").
		Find(&records).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch equipment history: %w", err)
	}

	return records, nil
}
