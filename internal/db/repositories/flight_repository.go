package repositories

import (
	"context"
	"fmt"

	"deployment-ops/quartermaster/internal/constants"
	gormModels "deployment-ops/quartermaster/internal/models/gorm"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

// FlightRepository mixes GORM for writes with raw sqlx reads for the hot
// aggregation paths.
type FlightRepository struct {
	db     *sqlx.DB
	gormDB *gorm.DB
}

// NewFlightRepository creates a flight repository over both connections
func NewFlightRepository(db *sqlx.DB, gormDB *gorm.DB) *FlightRepository {
	return &FlightRepository{db: db, gormDB: gormDB}
}

// Create inserts a new flight record
func (r *FlightRepository) Create(ctx context.Context, flight *gormModels.FlightRecord) error {
	if err := r.gormDB.WithContext(ctx).Create(flight).Error; err != nil {
		return fmt.Errorf("failed to create flight record: %w", err)
	}
	return nil
}

// Delete removes a flight record by ID
func (r *FlightRepository) Delete(ctx context.Context, flightID string) error {
	result := r.gormDB.WithContext(ctx).
		Where("id = ?", flightID).
		Delete(&gormModels.FlightRecord{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete flight record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("flight record not found with ID: %s", flightID)
	}
	return nil
}

// GetByDeployment retrieves all flight records for a deployment, date
// ascending, via GORM
func (r *FlightRepository) GetByDeployment(ctx context.Context, deploymentID string) ([]gormModels.FlightRecord, error) {
	var flights []gormModels.FlightRecord

	err := r.gormDB.WithContext(ctx).
		Where("deployment_id = ?", deploymentID).
		Order("date ASC").
		Find(&flights).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch flight records: %w", err)
	}

	return flights, nil
}

// GetAll retrieves every flight record, date ascending, via GORM
func (r *FlightRepository) GetAll(ctx context.Context) ([]gormModels.FlightRecord, error) {
	var flights []gormModels.FlightRecord

	err := r.gormDB.WithContext(ctx).
		Order("date ASC").
		Find(&flights).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch flight records: %w", err)
	}

	return flights, nil
}

// SumTotals aggregates the numeric fields for a deployment in-database.
// Raw SQL path: the dashboard hits this on every load.
func (r *FlightRepository) SumTotals(ctx context.Context, deploymentID string) (hours float64, tois, contraband, detainees int, err error) {
	row := struct {
		Hours      float64 `db:"hours"`
		TOIs       int     `db:"tois"`
		Contraband int     `db:"contraband"`
		Detainees  int     `db:"detainees"`
	}{}

	if err = r.db.GetContext(ctx, &row, constants.GetFlightTotalsByDeployment, deploymentID); err != nil {
		err = fmt.Errorf("failed to sum flight totals: %w", err)
		return
	}

	return row.Hours, row.TOIs, row.Contraband, row.Detainees, nil
}
