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

// LogFlightHandler handles POST /api/v1/flights
func LogFlightHandler(fltSvc *services.FlightsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreateFlightRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		flight, err := fltSvc.LogFlight(r.Context(), &req)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to log flight", http.StatusBadRequest)
			return
		}

		common.RespondSuccess(w, initTime, "Flight logged", flight, http.StatusCreated)
	}
}

// ListFlightsHandler handles GET /api/v1/flights
func ListFlightsHandler(fltSvc *services.FlightsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		deploymentID := r.URL.Query().Get("deployment_id")

		flights, err := fltSvc.GetFlights(r.Context(), deploymentID)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list flights")
			return
		}

		common.RespondSuccess(w, initTime, "Flights listed", flights)
	}
}

// DeleteFlightHandler handles DELETE /api/v1/flights/{flight_id}
func DeleteFlightHandler(fltSvc *services.FlightsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		flightID := chi.URLParam(r, "flight_id")
		if flightID == "" {
			common.RespondError(w, initTime, nil, "Missing flight_id", http.StatusBadRequest)
			return
		}

		deploymentID := r.URL.Query().Get("deployment_id")

		if err := fltSvc.DeleteFlight(r.Context(), flightID, deploymentID); err != nil {
			common.RespondError(w, initTime, err, "Failed to delete flight")
			return
		}

		common.RespondSuccess(w, initTime, "Flight deleted", nil)
	}
}

// FlightTotalsHandler handles GET /api/v1/deployments/{deployment_id}/flight-totals
func FlightTotalsHandler(fltSvc *services.FlightsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		deploymentID := chi.URLParam(r, "deployment_id")
		if deploymentID == "" {
			common.RespondError(w, initTime, nil, "Missing deployment_id", http.StatusBadRequest)
			return
		}

		totals, err := fltSvc.GetTotals(r.Context(), deploymentID)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to sum flight totals")
			return
		}

		common.RespondSuccess(w, initTime, "Flight totals computed", totals)
	}
}
