package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeviceModel is a catalog entry (e.g. "iPhone 15") grouping a store's stock items.
type DeviceModel struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DeviceModelStock is a model with the number of its unsold products.
type DeviceModelStock struct {
	DeviceModel
	AvailableCount int64
}

// Product is a single sellable stock item. Sold is a single-assignment gate:
// it flips to true exactly once per sale and back only when that sale is deleted.
type Product struct {
	ID             uuid.UUID
	TenantID       uuid.UUID
	ModelID        uuid.UUID
	ModelName      string // filled on reads
	Color          string
	Storage        string
	BatteryPercent *int
	IMEI           *string
	Price          decimal.Decimal
	Sold           bool
	SaleID         *uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Available reports whether the product can be added to a sale.
func (p *Product) Available() bool {
	return !p.Sold
}
