package gorm

import "time"

type EquipmentStatusRecord struct {
	ID           string    `gorm:"column:id;primaryKey;type:uuid"`
	DeploymentID *string   `gorm:"column:deployment_id;type:uuid;index"`
	Date         time.Time `gorm:"column:date;index"`
	Category     string    `gorm:"column:category"`
	Equipment    string    `gorm:"column:equipment"`
	SerialNumber string    `gorm:"column:serial_number"`
	Status       string    `gorm:"column:status"`
	Notes        string    `gorm:"column:notes"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (EquipmentStatusRecord) TableName() string {
	return "equipment_status_records"
}
