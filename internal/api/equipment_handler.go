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

// LogEquipmentStatusHandler handles POST /api/v1/equipment
func LogEquipmentStatusHandler(eqSvc *services.EquipmentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreateEquipmentStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		record, err := eqSvc.LogStatus(r.Context(), &req)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to log equipment status", http.StatusBadRequest)
			return
		}

		common.RespondSuccess(w, initTime, "Equipment status logged", record, http.StatusCreated)
	}
}

// ListEquipmentHandler handles GET /api/v1/equipment
func ListEquipmentHandler(eqSvc *services.EquipmentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		deploymentID := r.URL.Query().Get("deployment_id")

		records, err := eqSvc.GetRecords(r.Context(), deploymentID)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list equipment records")
			return
		}

		common.RespondSuccess(w, initTime, "Equipment records listed", records)
	}
}

// EquipmentHistoryHandler handles GET /api/v1/equipment/{category}/{serial_number}/history
func EquipmentHistoryHandler(eqSvc *services.EquipmentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		category := chi.URLParam(r, "category")
		serial := chi.URLParam(r, "serial_number")
		if category == "" || serial == "" {
			common.RespondError(w, initTime, nil, "Missing category or serial_number", http.StatusBadRequest)
			return
		}

		records, err := eqSvc.GetHistory(r.Context(), category, serial)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch equipment history")
			return
		}

		common.RespondSuccess(w, initTime, "Equipment history fetched", records)
	}
}
