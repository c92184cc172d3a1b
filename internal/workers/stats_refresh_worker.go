package workers

import (
	"context"
	"time"

	"deployment-ops/quartermaster/internal/constants"
	"deployment-ops/quartermaster/internal/db/repositories"
	"deployment-ops/quartermaster/internal/logging"
	"deployment-ops/quartermaster/internal/services"

	"golang.org/x/sync/errgroup"
)

// StatsRefreshWorker keeps the cached metrics summaries warm for every
// active deployment so dashboard loads rarely pay the recompute cost.
type StatsRefreshWorker struct {
	deploymentRepo *repositories.DeploymentRepository
	statsSvc       *services.StatsService
	interval       time.Duration
}

func NewStatsRefreshWorker(
	deploymentRepo *repositories.DeploymentRepository,
	statsSvc *services.StatsService,
	interval time.Duration,
) *StatsRefreshWorker {
	return &StatsRefreshWorker{
		deploymentRepo: deploymentRepo,
		statsSvc:       statsSvc,
		interval:       interval,
	}
}

// Start runs the refresh loop until the context is cancelled.
func (w *StatsRefreshWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			logging.Info("Stats refresh worker stopping")
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

// refresh recomputes summaries for all active deployments, fanning out with
// a bounded errgroup. A failure on one deployment does not stop the others;
// errors are logged per deployment and the group error is only the first one.
func (w *StatsRefreshWorker) refresh(ctx context.Context) {
	deployments, err := w.deploymentRepo.GetByStatus(ctx, constants.DeploymentStatusActive)
	if err != nil {
		logging.Error("Stats refresh: failed to list active deployments", "error", err.Error())
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for i := range deployments {
		deployment := deployments[i]
		g.Go(func() error {
			if _, err := w.statsSvc.RefreshDeploymentStats(gctx, &deployment); err != nil {
				logging.Warn("Stats refresh failed for deployment",
					"deployment_id", deployment.ID,
					"error", err.Error(),
				)
			}
			return nil
		})
	}

	_ = g.Wait()

	logging.Debug("Stats refresh cycle complete", "deployments", len(deployments))
}
