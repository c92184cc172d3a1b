package api

import (
	"errors"
	"net/http"
	"time"

	"deployment-ops/quartermaster/internal/common"
	"deployment-ops/quartermaster/internal/constants"
	"deployment-ops/quartermaster/internal/middleware"
	"deployment-ops/quartermaster/internal/services"

	"github.com/go-chi/chi/v5"
)

// DeploymentStatsHandler handles GET /api/v1/deployments/{deployment_id}/stats
//
// Returns the composed MetricsSummary for one deployment: mission
// reliability, tasking rating, the 95% MRR projection, status breakdown,
// availability rating, and flight totals.
func DeploymentStatsHandler(statsSvc *services.StatsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		deploymentID := chi.URLParam(r, "deployment_id")
		if deploymentID == "" {
			common.RespondError(w, initTime, nil, "Missing deployment_id", http.StatusBadRequest)
			return
		}

		// Dashboard tokens are scoped to one deployment.
		if scoped := middleware.AuthorizedDeployment(r.Context()); scoped != "" && scoped != deploymentID {
			common.RespondError(w, initTime, nil, "Token not valid for this deployment", http.StatusForbidden)
			return
		}

		summary, err := statsSvc.GetDeploymentStats(r.Context(), deploymentID)
		if err != nil {
			var statsErr *services.StatsError
			if errors.As(err, &statsErr) && statsErr.Code == constants.ErrCodeDeploymentNotFound {
				common.RespondError(w, initTime, err, statsErr.Message, http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, "Failed to compute deployment stats")
			return
		}

		common.RespondSuccess(w, initTime, "Deployment stats computed", summary)
	}
}

// GenerateDashboardLinkHandler handles POST /api/v1/deployments/{deployment_id}/dashboard-link
//
// Mints a single-use, read-only presigned token for sharing a deployment's
// stats dashboard.
func GenerateDashboardLinkHandler(signer *common.URLSignerService, deploySvc *services.DeploymentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		deploymentID := chi.URLParam(r, "deployment_id")
		if deploymentID == "" {
			common.RespondError(w, initTime, nil, "Missing deployment_id", http.StatusBadRequest)
			return
		}

		deployment, err := deploySvc.GetDeployment(r.Context(), deploymentID)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to load deployment")
			return
		}
		if deployment == nil {
			common.RespondError(w, initTime, nil, "Deployment not found", http.StatusNotFound)
			return
		}

		token, err := signer.GeneratePresignedURL(deploymentID, 15*time.Minute)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to generate dashboard link")
			return
		}

		common.RespondSuccess(w, initTime, "Dashboard link generated", map[string]string{
			"token": token,
		})
	}
}
