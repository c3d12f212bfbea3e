package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// SaleItemData is one product snapshot inside the sale's JSON items column.
type SaleItemData struct {
	ProductID uuid.UUID       `json:"productId"`
	ModelID   uuid.UUID       `json:"modelId"`
	ModelName string          `json:"modelName"`
	Color     string          `json:"color"`
	Storage   string          `json:"storage"`
	Price     decimal.Decimal `json:"price"`
}

// SaleModel mirrors the 'sales' table. Items are frozen at sale time.
type SaleModel struct {
	ID            uuid.UUID                         `gorm:"type:uuid;primaryKey"`
	TenantID      uuid.UUID                         `gorm:"type:uuid;not null;index:idx_sales_tenant_sold_at"`
	CustomerID    uuid.UUID                         `gorm:"type:uuid;not null;index"`
	Items         datatypes.JSONSlice[SaleItemData] `gorm:"not null"`
	PaymentMethod string                            `gorm:"type:varchar(20);not null"`
	TotalValue    decimal.Decimal                   `gorm:"type:numeric(12,2);not null"`
	Note          *string                           `gorm:"type:text"`
	SoldAt        time.Time                         `gorm:"not null;index:idx_sales_tenant_sold_at"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Customer *CustomerModel `gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (SaleModel) TableName() string {
	return "sales"
}

// All lists every persisted model in migration order.
func All() []any {
	return []any{
		&TenantModel{},
		&UserModel{},
		&DeviceModelModel{},
		&CustomerModel{},
		&ProductModel{},
		&SaleModel{},
	}
}
