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

// CreateKitHandler handles POST /api/v1/inventory/kits
func CreateKitHandler(invSvc *services.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreateInventoryKitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		kit, err := invSvc.CreateKit(r.Context(), &req)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to create kit", http.StatusBadRequest)
			return
		}

		common.RespondSuccess(w, initTime, "Kit created", kit, http.StatusCreated)
	}
}

// ListKitsHandler handles GET /api/v1/deployments/{deployment_id}/inventory/kits
func ListKitsHandler(invSvc *services.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		deploymentID := chi.URLParam(r, "deployment_id")
		if deploymentID == "" {
			common.RespondError(w, initTime, nil, "Missing deployment_id", http.StatusBadRequest)
			return
		}

		kits, err := invSvc.GetKits(r.Context(), deploymentID)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list kits")
			return
		}

		common.RespondSuccess(w, initTime, "Kits listed", kits)
	}
}

// CreateShipmentHandler handles POST /api/v1/inventory/shipments
func CreateShipmentHandler(invSvc *services.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreateShipmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		shipment, err := invSvc.CreateShipment(r.Context(), &req)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to create shipment", http.StatusBadRequest)
			return
		}

		common.RespondSuccess(w, initTime, "Shipment created", shipment, http.StatusCreated)
	}
}

// ListShipmentsHandler handles GET /api/v1/deployments/{deployment_id}/inventory/shipments
func ListShipmentsHandler(invSvc *services.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		deploymentID := chi.URLParam(r, "deployment_id")
		if deploymentID == "" {
			common.RespondError(w, initTime, nil, "Missing deployment_id", http.StatusBadRequest)
			return
		}

		shipments, err := invSvc.GetShipments(r.Context(), deploymentID)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list shipments")
			return
		}

		common.RespondSuccess(w, initTime, "Shipments listed", shipments)
	}
}

// UpdateShipmentStatusHandler handles POST /api/v1/inventory/shipments/{shipment_id}/status
func UpdateShipmentStatusHandler(invSvc *services.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		shipmentID := chi.URLParam(r, "shipment_id")
		if shipmentID == "" {
			common.RespondError(w, initTime, nil, "Missing shipment_id", http.StatusBadRequest)
			return
		}

		var req struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		if err := invSvc.UpdateShipmentStatus(r.Context(), shipmentID, req.Status); err != nil {
			common.RespondError(w, initTime, err, "Failed to update shipment status")
			return
		}

		common.RespondSuccess(w, initTime, "Shipment status updated", nil)
	}
}

// LogPartUtilizationHandler handles POST /api/v1/inventory/parts
func LogPartUtilizationHandler(invSvc *services.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreatePartUtilizationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		part, err := invSvc.LogPartUtilization(r.Context(), &req)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to log part utilization", http.StatusBadRequest)
			return
		}

		common.RespondSuccess(w, initTime, "Part utilization logged", part, http.StatusCreated)
	}
}
