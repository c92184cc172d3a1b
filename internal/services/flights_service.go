package services

import (
	"context"
	"fmt"

	"deployment-ops/quartermaster/internal/common"
	"deployment-ops/quartermaster/internal/constants"
	"deployment-ops/quartermaster/internal/db/repositories"
	"deployment-ops/quartermaster/internal/models/dtos"
	gormModels "deployment-ops/quartermaster/internal/models/gorm"

	"github.com/google/uuid"
)

// FlightsService owns flight record CRUD and fault-attribution resolution
type FlightsService struct {
	flightRepo *repositories.FlightRepository
	cache      common.CacheInterface
}

func NewFlightsService(flightRepo *repositories.FlightRepository, cache common.CacheInterface) *FlightsService {
	return &FlightsService{
		flightRepo: flightRepo,
		cache:      cache,
	}
}

// LogFlight persists a flight record from the flight log form. The
// responsible party, when not supplied, is resolved from the delay reason at
// write time so the stored record carries its attribution.
func (s *FlightsService) LogFlight(ctx context.Context, req *dtos.CreateFlightRequest) (*gormModels.FlightRecord, error) {
	if req.Status == "" {
		return nil, fmt.Errorf("%s: status is required", constants.GetErrorMessage(constants.ErrCodeInvalidPayload))
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%s: date is required", constants.GetErrorMessage(constants.ErrCodeInvalidPayload))
	}

	party := req.ResponsibleParty
	if party == "" && req.ReasonForDelay != "" {
		party = constants.ReasonToParty(req.ReasonForDelay)
	}

	flight := &gormModels.FlightRecord{
		ID:               uuid.New().String(),
		Date:             req.Date,
		Status:           req.Status,
		ResponsibleParty: party,
		ReasonForDelay:   req.ReasonForDelay,
		Hours:            req.Hours,
		TOIs:             req.TOIs,
		Contraband:       req.Contraband,
		Detainees:        req.Detainees,
	}
	if req.DeploymentID != "" {
		flight.DeploymentID = &req.DeploymentID
	}

	if err := s.flightRepo.Create(ctx, flight); err != nil {
		return nil, err
	}

	s.invalidateStats(req.DeploymentID)
	return flight, nil
}

// GetFlights lists flight records, scoped to a deployment when one is given
func (s *FlightsService) GetFlights(ctx context.Context, deploymentID string) ([]gormModels.FlightRecord, error) {
	if deploymentID == "" {
		return s.flightRepo.GetAll(ctx)
	}
	return s.flightRepo.GetByDeployment(ctx, deploymentID)
}

// DeleteFlight removes a flight record
func (s *FlightsService) DeleteFlight(ctx context.Context, flightID, deploymentID string) error {
	if err := s.flightRepo.Delete(ctx, flightID); err != nil {
		return err
	}
	s.invalidateStats(deploymentID)
	return nil
}

// GetTotals returns the in-database numeric aggregation for a deployment
func (s *FlightsService) GetTotals(ctx context.Context, deploymentID string) (map[string]interface{}, error) {
	hours, tois, contraband, detainees, err := s.flightRepo.SumTotals(ctx, deploymentID)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"hours":      hours,
		"tois":       tois,
		"contraband": contraband,
		"detainees":  detainees,
	}, nil
}

// invalidateStats drops the cached summary so the next dashboard load
// recomputes against current records.
func (s *FlightsService) invalidateStats(deploymentID string) {
	if deploymentID != "" {
		s.cache.Delete(string(constants.CachePrefixDeploymentStats) + deploymentID)
	}
}
