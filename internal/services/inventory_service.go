package services

import (
	"context"
	"fmt"

	"deployment-ops/quartermaster/internal/constants"
	"deployment-ops/quartermaster/internal/db/repositories"
	"deployment-ops/quartermaster/internal/models/dtos"
	gormModels "deployment-ops/quartermaster/internal/models/gorm"

	"github.com/google/uuid"
)

// InventoryService owns kits, shipments, and part utilization
type InventoryService struct {
	inventoryRepo *repositories.InventoryRepository
}

func NewInventoryService(inventoryRepo *repositories.InventoryRepository) *InventoryService {
	return &InventoryService{inventoryRepo: inventoryRepo}
}

// CreateKit registers an inventory kit
func (s *InventoryService) CreateKit(ctx context.Context, req *dtos.CreateInventoryKitRequest) (*gormModels.InventoryKit, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%s: name is required", constants.GetErrorMessage(constants.ErrCodeInvalidPayload))
	}

	kit := &gormModels.InventoryKit{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Location:  req.Location,
		Quantity:  req.Quantity,
		Condition: req.Condition,
	}
	if req.DeploymentID != "" {
		kit.DeploymentID = &req.DeploymentID
	}

	if err := s.inventoryRepo.CreateKit(ctx, kit); err != nil {
		return nil, err
	}
	return kit, nil
}

// GetKits lists kits for a deployment
func (s *InventoryService) GetKits(ctx context.Context, deploymentID string) ([]gormModels.InventoryKit, error) {
	return s.inventoryRepo.GetKitsByDeployment(ctx, deploymentID)
}

// CreateShipment registers a shipment
func (s *InventoryService) CreateShipment(ctx context.Context, req *dtos.CreateShipmentRequest) (*gormModels.Shipment, error) {
	if req.TrackingNumber == "" {
		return nil, fmt.Errorf("%s: tracking_number is required", constants.GetErrorMessage(constants.ErrCodeInvalidPayload))
	}

	shipment := &gormModels.Shipment{
		ID:             uuid.New().String(),
		TrackingNumber: req.TrackingNumber,
		Carrier:        req.Carrier,
		Origin:         req.Origin,
		Destination:    req.Destination,
		Status:         req.Status,
		ETA:            req.ETA,
	}
	if req.DeploymentID != "" {
		shipment.DeploymentID = &req.DeploymentID
	}

	if err := s.inventoryRepo.CreateShipment(ctx, shipment); err != nil {
		return nil, err
	}
	return shipment, nil
}

// GetShipments lists shipments for a deployment
func (s *InventoryService) GetShipments(ctx context.Context, deploymentID string) ([]gormModels.Shipment, error) {
	return s.inventoryRepo.GetShipmentsByDeployment(ctx, deploymentID)
}

// UpdateShipmentStatus updates a shipment's tracking status
func (s *InventoryService) UpdateShipmentStatus(ctx context.Context, shipmentID, status string) error {
	return s.inventoryRepo.UpdateShipmentStatus(ctx, shipmentID, status)
}

// LogPartUtilization records part hours against a kit
func (s *InventoryService) LogPartUtilization(ctx context.Context, req *dtos.CreatePartUtilizationRequest) (*gormModels.PartUtilization, error) {
	if req.PartNumber == "" {
		return nil, fmt.Errorf("%s: part_number is required", constants.GetErrorMessage(constants.ErrCodeInvalidPayload))
	}

	part := &gormModels.PartUtilization{
		ID:         uuid.New().String(),
		PartNumber: req.PartNumber,
		Serial:     req.Serial,
		HoursUsed:  req.HoursUsed,
	}
	if req.KitID != "" {
		part.KitID = &req.KitID
	}

	if err := s.inventoryRepo.CreatePartUtilization(ctx, part); err != nil {
		return nil, err
	}
	return part, nil
}
