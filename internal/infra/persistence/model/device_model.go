package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceModelModel mirrors the 'device_models' table, the catalog of phone models of a store.
type DeviceModelModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(150);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Tenant *TenantModel `gorm:"foreignKey:TenantID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (DeviceModelModel) TableName() string {
	return "device_models"
}

// DeviceModelStockRow is the projection used when listing models with their stock count.
type DeviceModelStockRow struct {
	ID             uuid.UUID
	TenantID       uuid.UUID
	Name           string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	AvailableCount int64
}
