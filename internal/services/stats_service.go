package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"deployment-ops/quartermaster/internal/common"
	"deployment-ops/quartermaster/internal/constants"
	"deployment-ops/quartermaster/internal/db/repositories"
	"deployment-ops/quartermaster/internal/logging"
	"deployment-ops/quartermaster/internal/metrics"
	"deployment-ops/quartermaster/internal/models/dtos"
	gormModels "deployment-ops/quartermaster/internal/models/gorm"
	"deployment-ops/quartermaster/internal/stats"

	"golang.org/x/sync/errgroup"
)

const statsCacheTTL = 5 * time.Minute

// StatsService composes the metrics engine output for dashboard views. The
// engine itself is pure; this service owns loading records, caching, and
// instrumentation around it.
type StatsService struct {
	flightRepo     *repositories.FlightRepository
	equipmentRepo  *repositories.EquipmentRepository
	deploymentRepo *repositories.DeploymentRepository
	cache          common.CacheInterface
	metricsReg     *metrics.MetricsRegistry

	calculator    *stats.ReliabilityCalculator
	reconstructor *stats.Reconstructor
	reasonLookup  stats.ReasonLookup
}

// NewStatsService builds a stats service. Operator party and the
// availability window cap come from the environment (OPERATOR_PARTY,
// AVAILABILITY_MAX_WINDOW_DAYS) with sane defaults.
func NewStatsService(
	flightRepo *repositories.FlightRepository,
	equipmentRepo *repositories.EquipmentRepository,
	deploymentRepo *repositories.DeploymentRepository,
	cache common.CacheInterface,
	metricsReg *metrics.MetricsRegistry,
) *StatsService {
	operatorParty := os.Getenv("OPERATOR_PARTY")
	if operatorParty == "" {
		operatorParty = constants.DefaultOperatorParty
	}

	maxWindowDays := stats.DefaultMaxWindowDays
	if raw := os.Getenv("AVAILABILITY_MAX_WINDOW_DAYS"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			maxWindowDays = v
		} else {
			logging.Warn("Ignoring invalid AVAILABILITY_MAX_WINDOW_DAYS", "value", raw)
		}
	}

	return &StatsService{
		flightRepo:     flightRepo,
		equipmentRepo:  equipmentRepo,
		deploymentRepo: deploymentRepo,
		cache:          cache,
		metricsReg:     metricsReg,
		calculator:     stats.NewReliabilityCalculator(operatorParty),
		reconstructor:  stats.NewReconstructor(maxWindowDays),
		reasonLookup:   constants.ReasonToParty,
	}
}

// GetDeploymentStats returns the composed metrics summary for one deployment,
// recomputing from raw records on cache miss.
func (s *StatsService) GetDeploymentStats(ctx context.Context, deploymentID string) (*dtos.MetricsSummary, error) {
	cacheKey := string(constants.CachePrefixDeploymentStats) + deploymentID
	if cached, found := s.cache.Get(cacheKey); found {
		if summary := summaryFromCache(cached); summary != nil {
			s.metricsReg.CacheHitsTotal.WithLabelValues("deployment_stats").Inc()
			return summary, nil
		}
	}
	s.metricsReg.CacheMissesTotal.WithLabelValues("deployment_stats").Inc()

	deployment, err := s.deploymentRepo.GetByID(ctx, deploymentID)
	if err != nil {
		return nil, &StatsError{
			Code:    constants.ErrCodeRecordsUnavailable,
			Message: constants.GetErrorMessage(constants.ErrCodeRecordsUnavailable),
			Err:     err,
		}
	}
	if deployment == nil {
		return nil, &StatsError{
			Code:    constants.ErrCodeDeploymentNotFound,
			Message: constants.GetErrorMessage(constants.ErrCodeDeploymentNotFound),
		}
	}

	summary, err := s.computeSummary(ctx, deployment)
	if err != nil {
		return nil, err
	}

	s.cache.Set(cacheKey, summary, statsCacheTTL)
	return summary, nil
}

// RefreshDeploymentStats recomputes and re-caches the summary, bypassing the
// cached value. Used by the background refresh worker.
func (s *StatsService) RefreshDeploymentStats(ctx context.Context, deployment *gormModels.Deployment) (*dtos.MetricsSummary, error) {
	summary, err := s.computeSummary(ctx, deployment)
	if err != nil {
		return nil, err
	}

	s.cache.Set(string(constants.CachePrefixDeploymentStats)+deployment.ID, summary, statsCacheTTL)
	return summary, nil
}

// computeSummary loads both record sets and runs the two engine computations
// concurrently. Each branch is independent; the only shared state is the
// result slots written before Wait returns.
func (s *StatsService) computeSummary(ctx context.Context, deployment *gormModels.Deployment) (*dtos.MetricsSummary, error) {
	var (
		flightMetrics stats.FlightMetrics
		totals        stats.FlightTotals
		flightCount   int
		availability  stats.AvailabilityResult
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		flights, err := s.flightRepo.GetByDeployment(gctx, deployment.ID)
		if err != nil {
			return fmt.Errorf("loading flights: %w", err)
		}

		flightCount = len(flights)
		inputs := make([]stats.FlightInput, 0, len(flights))
		totalsInputs := make([]stats.FlightTotalsInput, 0, len(flights))
		for _, f := range flights {
			inputs = append(inputs, stats.FlightInput{
				Status:           f.Status,
				ResponsibleParty: f.ResponsibleParty,
				ReasonForDelay:   f.ReasonForDelay,
			})
			totalsInputs = append(totalsInputs, stats.FlightTotalsInput{
				Hours:      f.Hours,
				TOIs:       f.TOIs,
				Contraband: f.Contraband,
				Detainees:  f.Detainees,
			})
		}

		flightMetrics = s.calculator.ComputeFlightMetrics(inputs, s.reasonLookup)
		totals = stats.SumFlightTotals(totalsInputs)

		s.metricsReg.StatsComputationsTotal.WithLabelValues("flight_reliability").Inc()
		s.metricsReg.RecordsProcessedTotal.WithLabelValues("flight").Add(float64(len(flights)))
		return nil
	})

	g.Go(func() error {
		records, err := s.equipmentRepo.GetByDeployment(gctx, deployment.ID)
		if err != nil {
			return fmt.Errorf("loading equipment records: %w", err)
		}

		inputs := make([]stats.EquipmentInput, 0, len(records))
		for _, rec := range records {
			inputs = append(inputs, stats.EquipmentInput{
				Category:     rec.Category,
				Equipment:    rec.Equipment,
				SerialNumber: rec.SerialNumber,
				Status:       rec.Status,
				Date:         rec.Date,
			})
		}

		walkStart := time.Now()
		availability = s.reconstructor.ComputeAvailability(inputs, deployment.StartDate)
		s.metricsReg.AvailabilityWalkDuration.Observe(time.Since(walkStart).Seconds())

		s.metricsReg.StatsComputationsTotal.WithLabelValues("availability").Inc()
		s.metricsReg.RecordsProcessedTotal.WithLabelValues("equipment").Add(float64(len(records)))
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, &StatsError{
			Code:    constants.ErrCodeRecordsUnavailable,
			Message: constants.GetErrorMessage(constants.ErrCodeRecordsUnavailable),
			Err:     err,
		}
	}

	if availability.Truncated {
		s.metricsReg.AvailabilityTruncations.Inc()
		logging.Warn("Availability walk hit the window cap; start date is suspect",
			"deployment_id", deployment.ID,
			"start_date", deployment.StartDate,
			"total_days", availability.TotalDays,
		)
	}
	if availability.Undefined {
		logging.Warn("Availability undefined: no start date and no equipment history",
			"deployment_id", deployment.ID,
		)
	}

	return &dtos.MetricsSummary{
		MissionReliability: flightMetrics.MissionReliability,
		TaskingRating:      flightMetrics.TaskingRating,
		FlightsTo95MRR:     flightMetrics.FlightsTo95MRR,
		ByStatus:           flightMetrics.ByStatus,
		AvailabilityRating: availability.Rating,
		Availability: dtos.AvailabilityDetail{
			TotalDays:     availability.TotalDays,
			AvailableDays: availability.AvailableDays,
			Undefined:     availability.Undefined,
			Truncated:     availability.Truncated,
		},
		Totals:      totals,
		FlightCount: flightCount,
	}, nil
}

// summaryFromCache recovers a MetricsSummary from a cache hit. The in-memory
// cache hands back the stored pointer; Redis hands back the JSON document
// decoded into generic maps, which needs one more decode into the typed
// shape. Anything else is treated as a miss.
func summaryFromCache(cached interface{}) *dtos.MetricsSummary {
	switch v := cached.(type) {
	case *dtos.MetricsSummary:
		return v
	case map[string]interface{}:
		data, err := json.Marshal(v)
		if err != nil {
			return nil
		}
		var summary dtos.MetricsSummary
		if err := json.Unmarshal(data, &summary); err != nil {
			return nil
		}
		return &summary
	default:
		return nil
	}
}

// StatsError represents a stats-specific error
type StatsError struct {
	Code    string
	Message string
	Err     error
}

func (e *StatsError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *StatsError) Unwrap() error {
	return e.Err
}
