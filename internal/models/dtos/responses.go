package dtos

import "deployment-ops/quartermaster/internal/stats"

// APIResponse is the standard envelope for every JSON endpoint.
type APIResponse struct {
	Status       string      `json:"status"`
	Message      string      `json:"message,omitempty"`
	ResponseTime string      `json:"response_time,omitempty"`
	Data         interface{} `json:"data,omitempty"`
}

// MetricsSummary is the composed dashboard aggregate for a deployment scope.
// It is recomputed from raw records on every request (subject to caching) and
// never persisted.
type MetricsSummary struct {
	MissionReliability float64            `json:"mission_reliability"`
	TaskingRating      float64            `json:"tasking_rating"`
	FlightsTo95MRR     int                `json:"flights_to_95_mrr"`
	ByStatus           map[string]int     `json:"by_status"`
	AvailabilityRating float64            `json:"availability_rating"`
	Availability       AvailabilityDetail `json:"availability"`
	Totals             stats.FlightTotals `json:"totals"`
	FlightCount        int                `json:"flight_count"`
}

// AvailabilityDetail carries the reconstruction counters behind the rating.
type AvailabilityDetail struct {
	TotalDays     int  `json:"total_days"`
	AvailableDays int  `json:"available_days"`
	Undefined     bool `json:"undefined,omitempty"`
	Truncated     bool `json:"truncated,omitempty"`
}

// DeploymentResponse is the read shape for deployment listings.
type DeploymentResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Location  string `json:"location"`
	Status    string `json:"status"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}
