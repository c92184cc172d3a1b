package services

import (
	"context"
	"fmt"
	"time"

	"deployment-ops/quartermaster/internal/constants"
	"deployment-ops/quartermaster/internal/db/repositories"
	"deployment-ops/quartermaster/internal/models/dtos"
	gormModels "deployment-ops/quartermaster/internal/models/gorm"

	"github.com/google/uuid"
)

// DeploymentService owns deployment lifecycle operations
type DeploymentService struct {
	deploymentRepo *repositories.DeploymentRepository
}

func NewDeploymentService(deploymentRepo *repositories.DeploymentRepository) *DeploymentService {
	return &DeploymentService{deploymentRepo: deploymentRepo}
}

// CreateDeployment opens a new deployment
func (s *DeploymentService) CreateDeployment(ctx context.Context, req *dtos.CreateDeploymentRequest) (*gormModels.Deployment, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%s: name is required", constants.GetErrorMessage(constants.ErrCodeInvalidPayload))
	}

	deployment := &gormModels.Deployment{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Location:  req.Location,
		Status:    constants.DeploymentStatusActive,
		StartDate: req.StartDate,
	}

	if err := s.deploymentRepo.Create(ctx, deployment); err != nil {
		return nil, err
	}

	return deployment, nil
}

// GetDeployment fetches one deployment
func (s *DeploymentService) GetDeployment(ctx context.Context, deploymentID string) (*gormModels.Deployment, error) {
	return s.deploymentRepo.GetByID(ctx, deploymentID)
}

// ListDeployments lists deployments, optionally filtered by status
func (s *DeploymentService) ListDeployments(ctx context.Context, status string) ([]gormModels.Deployment, error) {
	if status == "" {
		return s.deploymentRepo.GetAll(ctx)
	}
	return s.deploymentRepo.GetByStatus(ctx, status)
}

// CompleteDeployment closes out a deployment
func (s *DeploymentService) CompleteDeployment(ctx context.Context, deploymentID string) error {
	return s.deploymentRepo.UpdateStatus(ctx, deploymentID, constants.DeploymentStatusComplete)
}

// ToResponse maps a deployment entity to its read shape
func ToResponse(d *gormModels.Deployment) dtos.DeploymentResponse {
	resp := dtos.DeploymentResponse{
		ID:       d.ID,
		Name:     d.Name,
		Location: d.Location,
		Status:   d.Status,
	}
	if d.StartDate != nil {
		resp.StartDate = d.StartDate.Format(time.RFC3339)
	}
	if d.EndDate != nil {
		resp.EndDate = d.EndDate.Format(time.RFC3339)
	}
	return resp
}
