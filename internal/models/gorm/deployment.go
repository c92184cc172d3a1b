package gorm

import "time"

type Deployment struct {
	ID        string     `gorm:"column:id;primaryKey;type:uuid"`
	Name      string     `gorm:"column:name"`
	Location  string     `gorm:"column:location"`
	Status    string     `gorm:"column:status;default:Active"`
	StartDate *time.Time `gorm:"column:start_date"`
	EndDate   *time.Time `gorm:"column:end_date"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Flights   []FlightRecord          `gorm:"foreignKey:DeploymentID"`
	Equipment []EquipmentStatusRecord `gorm:"foreignKey:DeploymentID"`
}

// TableName specifies the table name for GORM
func (Deployment) TableName() string {
	return "deployments"
}
