package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table. SaleID is set while the product is sold.
type ProductModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TenantID       uuid.UUID       `gorm:"type:uuid;not null;index:idx_products_tenant_sold"`
	ModelID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Color          string          `gorm:"type:varchar(50);not null"`
	Storage        string          `gorm:"type:varchar(50);not null"`
	BatteryPercent *int            `gorm:"type:smallint"`
	IMEI           *string         `gorm:"column:imei;type:varchar(20)"`
	Price          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Sold           bool            `gorm:"not null;index:idx_products_tenant_sold"`
	SaleID         *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	DeviceModel *DeviceModelModel `gorm:"foreignKey:ModelID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
