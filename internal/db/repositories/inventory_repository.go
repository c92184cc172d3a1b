package repositories

import (
	"context"
	"fmt"

	gormModels "deployment-ops/quartermaster/internal/models/gorm"

	"gorm.io/gorm"
)

// InventoryRepository handles kits, shipments, and part utilization using GORM
type InventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new GORM-based inventory repository
func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// CreateKit inserts a new inventory kit
func (r *InventoryRepository) CreateKit(ctx context.Context, kit *gormModels.InventoryKit) error {
	if err := r.db.WithContext(ctx).Create(kit).Error; err != nil {
		return fmt.Errorf("failed to create inventory kit: %w", err)
	}
	return nil
}

// GetKitsByDeployment retrieves kits for a deployment with their parts
func (r *InventoryRepository) GetKitsByDeployment(ctx context.Context, deploymentID string) ([]gormModels.InventoryKit, error) {
	var kits []gormModels.InventoryKit

	err := r.db.WithContext(ctx).
		Preload("Parts").
		Where("deployment_id = ?", deploymentID).
		Find(&kits).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch inventory kits: %w", err)
	}

	return kits, nil
}

// CreateShipment inserts a new shipment
func (r *InventoryRepository) CreateShipment(ctx context.Context, shipment *gormModels.Shipment) error {
	if err := r.db.WithContext(ctx).Create(shipment).Error; err != nil {
		return fmt.Errorf("failed to create shipment: %w", err)
	}
	return nil
}

// GetShipmentsByDeployment retrieves shipments for a deployment
func (r *InventoryRepository) GetShipmentsByDeployment(ctx context.Context, deploymentID string) ([]gormModels.Shipment, error) {
	var shipments []gormModels.Shipment

	err := r.db.WithContext(ctx).
		Where("deployment_id = ?", deploymentID).
		Order("created_at DESC").
		Find(&shipments).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch shipments: %w", err)
	}

	return shipments, nil
}

// UpdateShipmentStatus updates a shipment's tracking status
func (r *InventoryRepository) UpdateShipmentStatus(ctx context.Context, shipmentID, status string) error {
	result := r.db.WithContext(ctx).
		Model(&gormModels.Shipment{}).
		Where("id = ?", shipmentID).
		Update("status", status)

	if result.Error != nil {
		return fmt.Errorf("failed to update shipment status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("shipment not found with ID: %s", shipmentID)
	}
	return nil
}

// CreatePartUtilization logs part hours against a kit
func (r *InventoryRepository) CreatePartUtilization(ctx context.Context, part *gormModels.PartUtilization) error {
	if err := r.db.WithContext(ctx).Create(part).Error; err != nil {
		return fmt.Errorf("failed to create part utilization: %w", err)
	}
	return nil
}
