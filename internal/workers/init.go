package workers

import (
	"context"
	"time"

	"deployment-ops/quartermaster/internal/db/repositories"
	"deployment-ops/quartermaster/internal/services"
)

type WorkersContainer struct {
	StatsRefresh *StatsRefreshWorker
}

func InitWorkers(
	ctx context.Context,
	deploymentRepo *repositories.DeploymentRepository,
	statsSvc *services.StatsService,
) *WorkersContainer {
	refresher := NewStatsRefreshWorker(deploymentRepo, statsSvc, 10*time.Minute)

	go refresher.Start(ctx)

	return &WorkersContainer{
		StatsRefresh: refresher,
	}
}
