package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tenant is a store. Its slug is the URL segment that scopes every store request
// and never changes after creation. Tenants are deactivated, never deleted.
type Tenant struct {
	ID        uuid.UUID
	Slug      string
	Name      string
	LogoURL   *string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TenantStats aggregates a store's catalog and sales for the admin console.
type TenantStats struct {
	TotalModels     int64
	TotalProducts   int64 // unsold only
	TotalCustomers  int64
	TotalSales      int64
	TotalSalesValue decimal.Decimal
}

// TenantRef addresses a tenant either by slug or by id.
type TenantRef struct {
	Slug string
	ID   uuid.UUID
}

// IsZero reports whether the reference addresses nothing.
func (r TenantRef) IsZero() bool {
	return r.Slug == "" && r.ID == uuid.Nil
}
