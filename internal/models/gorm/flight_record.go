package gorm

import "time"

type FlightRecord struct {
	ID               string    `gorm:"column:id;primaryKey;type:uuid"`
	DeploymentID     *string   `gorm:"column:deployment_id;type:uuid;index"`
	Date             time.Time `gorm:"column:date;index"`
	Status           string    `gorm:"column:status"`
	ResponsibleParty string    `gorm:"column:responsible_party"`
	ReasonForDelay   string    `gorm:"column:reason_for_delay"`
	Hours            float64   `gorm:"column:hours"`
	TOIs             int       `gorm:"column:tois"`
	Contraband       int       `gorm:"column:contraband"`
	Detainees        int       `gorm:"column:detainees"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (FlightRecord) TableName() string {
	return "flight_records"
}
