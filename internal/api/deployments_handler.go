package api

import (
	"encoding/json"
	"net/http"
	"time"

	"deployment-ops/quartermaster/internal/common"
	"deployment-ops/quartermaster/internal/models/dtos"
	"deployment-ops/quartermaster/internal/services"

	"github.com/go-chi/chi/v5"
)

// CreateDeploymentHandler handles POST /api/v1/deployments
func CreateDeploymentHandler(deploySvc *services.DeploymentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreateDeploymentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		deployment, err := deploySvc.CreateDeployment(r.Context(), &req)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to create deployment", http.StatusBadRequest)
			return
		}

		common.RespondSuccess(w, initTime, "Deployment created", services.ToResponse(deployment), http.StatusCreated)
	}
}

// ListDeploymentsHandler handles GET /api/v1/deployments
func ListDeploymentsHandler(deploySvc *services.DeploymentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		status := r.URL.Query().Get("status")

		deployments, err := deploySvc.ListDeployments(r.Context(), status)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list deployments")
			return
		}

		resp := make([]dtos.DeploymentResponse, 0, len(deployments))
		for i := range deployments {
			resp = append(resp, services.ToResponse(&deployments[i]))
		}

		common.RespondSuccess(w, initTime, "Deployments listed", resp)
	}
}

// GetDeploymentHandler handles GET /api/v1/deployments/{deployment_id}
func GetDeploymentHandler(deploySvc *services.DeploymentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		deploymentID := chi.URLParam(r, "deployment_id")
		deployment, err := deploySvc.GetDeployment(r.Context(), deploymentID)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch deployment")
			return
		}
		if deployment == nil {
			common.RespondError(w, initTime, nil, "Deployment not found", http.StatusNotFound)
			return
		}

		common.RespondSuccess(w, initTime, "Deployment fetched", services.ToResponse(deployment))
	}
}

// CompleteDeploymentHandler handles POST /api/v1/deployments/{deployment_id}/complete
func CompleteDeploymentHandler(deploySvc *services.DeploymentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		deploymentID := chi.URLParam(r, "deployment_id")
		if deploymentID == "" {
			common.RespondError(w, initTime, nil, "Missing deployment_id", http.StatusBadRequest)
			return
		}

		if err := deploySvc.CompleteDeployment(r.Context(), deploymentID); err != nil {
			common.RespondError(w, initTime, err, "Failed to complete deployment")
			return
		}

		common.RespondSuccess(w, initTime, "Deployment completed", nil)
	}
}
