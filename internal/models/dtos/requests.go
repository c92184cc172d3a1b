package dtos

import "time"

// CreateDeploymentRequest is the form payload for opening a deployment.
type CreateDeploymentRequest struct {
	Name      string     `json:"name"`
	Location  string     `json:"location"`
	StartDate *time.Time `json:"start_date"`
}

// CreateFlightRequest is the flight log form payload.
type CreateFlightRequest struct {
	DeploymentID     string    `json:"deployment_id"`
	Date             time.Time `json:"date"`
	Status           string    `json:"status"`
	ResponsibleParty string    `json:"responsible_party"`
	ReasonForDelay   string    `json:"reason_for_delay"`
	Hours            float64   `json:"hours"`
	TOIs             int       `json:"tois"`
	Contraband       int       `json:"contraband"`
	Detainees        int       `json:"detainees"`
}

// CreateEquipmentStatusRequest is the daily equipment readiness form payload.
type CreateEquipmentStatusRequest struct {
	DeploymentID string    `json:"deployment_id"`
	Date         time.Time `json:"date"`
	Category     string    `json:"category"`
	Equipment    string    `json:"equipment"`
	SerialNumber string    `json:"serial_number"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes"`
}

// CreateInventoryKitRequest is the inventory kit form payload.
type CreateInventoryKitRequest struct {
	DeploymentID string `json:"deployment_id"`
	Name         string `json:"name"`
	Location     string `json:"location"`
	Quantity     int    `json:"quantity"`
	Condition    string `json:"condition"`
}

// CreateShipmentRequest is the shipment tracking form payload.
type CreateShipmentRequest struct {
	DeploymentID   string     `json:"deployment_id"`
	TrackingNumber string     `json:"tracking_number"`
	Carrier        string     `json:"carrier"`
	Origin         string     `json:"origin"`
	Destination    string     `json:"destination"`
	Status         string     `json:"status"`
	ETA            *time.Time `json:"eta"`
}

// CreatePartUtilizationRequest logs hours against a part in a kit.
type CreatePartUtilizationRequest struct {
	KitID      string  `json:"kit_id"`
	PartNumber string  `json:"part_number"`
	Serial     string  `json:"serial"`
	HoursUsed  float64 `json:"hours_used"`
}
