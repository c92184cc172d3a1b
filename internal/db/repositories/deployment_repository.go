package repositories

import (
	"context"
	"fmt"

	gormModels "deployment-ops/quartermaster/internal/models/gorm"

	"gorm.io/gorm"
)

// DeploymentRepository handles deployment table operations using GORM
type DeploymentRepository struct {
	db *gorm.DB
}

// NewDeploymentRepository creates a new GORM-based deployment repository
func NewDeploymentRepository(db *gorm.DB) *DeploymentRepository {
	return &DeploymentRepository{db: db}
}

// GetByID retrieves a deployment by its ID
func (r *DeploymentRepository) GetByID(ctx context.Context, deploymentID string) (*gormModels.Deployment, error) {
	var deployment gormModels.Deployment

	err := r.db.WithContext(ctx).
		Where("id = ?", deploymentID).
		First(&deployment).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch deployment: %w", err)
	}

	return &deployment, nil
}

// GetByStatus retrieves all deployments with the given status
func (r *DeploymentRepository) GetByStatus(ctx context.Context, status string) ([]gormModels.Deployment, error) {
	var deployments []gormModels.Deployment

	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("start_date ASC").
		Find(&deployments).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch deployments: %w", err)
	}

	return deployments, nil
}

// GetAll retrieves all deployments
func (r *DeploymentRepository) GetAll(ctx context.Context) ([]gormModels.Deployment, error) {
	var deployments []gormModels.Deployment

	err := r.db.WithContext(ctx).
		Order("start_date ASC").
		Find(&deployments).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch deployments: %w", err)
	}

	return deployments, nil
}

// Create inserts a new deployment
func (r *DeploymentRepository) Create(ctx context.Context, deployment *gormModels.Deployment) error {
	if err := r.db.WithContext(ctx).Create(deployment).Error; err != nil {
		return fmt.Errorf("failed to create deployment: %w", err)
	}
	return nil
}

// UpdateStatus transitions a deployment's lifecycle status
func (r *DeploymentRepository) UpdateStatus(ctx context.Context, deploymentID, status string) error {
	result := r.db.WithContext(ctx).
		Model(&gormModels.Deployment{}).
		Where("id = ?", deploymentID).
		Update("status", status)

	if result.Error != nil {
		return fmt.Errorf("failed to update deployment status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("deployment not found with ID: %s", deploymentID)
	}

	return nil
}
