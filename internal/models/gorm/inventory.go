package gorm

import "time"

type InventoryKit struct {
	ID           string    `gorm:"column:id;primaryKey;type:uuid"`
	DeploymentID *string   `gorm:"column:deployment_id;type:uuid;index"`
	Name         string    `gorm:"column:name"`
	Location     string    `gorm:"column:location"`
	Quantity     int       `gorm:"column:quantity"`
	Condition    string    `gorm:"column:condition"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Parts []PartUtilization `gorm:"foreignKey:KitID"`
}

// TableName specifies the table name for GORM
func (InventoryKit) TableName() string {
	return "inventory_kits"
}

type Shipment struct {
	ID             string     `gorm:"column:id;primaryKey;type:uuid"`
	DeploymentID   *string    `gorm:"column:deployment_id;type:uuid;index"`
	TrackingNumber string     `gorm:"column:tracking_number;uniqueIndex"`
	Carrier        string     `gorm:"column:carrier"`
	Origin         string     `gorm:"column:origin"`
	Destination    string     `gorm:"column:destination"`
	Status         string     `gorm:"column:status"`
	ETA            *time.Time `gorm:"column:eta"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Shipment) TableName() string {
	return "shipments"
}

type PartUtilization struct {
	ID         string    `gorm:"column:id;primaryKey;type:uuid"`
	KitID      *string   `gorm:"column:kit_id;type:uuid;index"`
	PartNumber string    `gorm:"column:part_number"`
	Serial     string    `gorm:"column:serial"`
	HoursUsed  float64   `gorm:"column:hours_used"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (PartUtilization) TableName() string {
	return "part_utilizations"
}
