package repository

import (
	"context"

	"cellcontrol/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleFilter narrows a sale listing. A nil Period means all time.
type SaleFilter struct {
	Period *entity.Period
	Page   Page
}

// SaleTotals is the count and value of the sales in a window.
type SaleTotals struct {
	Count int64
	Value decimal.Decimal
}

// SaleRepository persists sales and their immutable item snapshots.
type SaleRepository interface {
	// List returns sales newest first, with CustomerName filled.
	List(ctx context.Context, tenantID uuid.UUID, filter SaleFilter) ([]*entity.Sale, error)

	// FindByID returns the sale with CustomerName filled.
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.Sale, error)

	Create(ctx context.Context, tenantID uuid.UUID, sale *entity.Sale) error

	// UpdateDetails changes payment method and note only.
	UpdateDetails(ctx context.Context, tenantID uuid.UUID, sale *entity.Sale) error

	Delete(ctx context.Context, tenantID, id uuid.UUID) error

	// Totals counts and sums the sales inside period (all time when nil).
	Totals(ctx context.Context, tenantID uuid.UUID, period *entity.Period) (SaleTotals, error)
}
