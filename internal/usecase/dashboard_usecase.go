package usecase

import (
	"context"

	"cellcontrol/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TopModelsLimit caps the best sellers ranking.
const TopModelsLimit = 10

// TopModel is one row of the best sellers ranking.
type TopModel struct {
	ModelID  uuid.UUID
	Name     string
	Quantity int64
	Value    decimal.Decimal
}

// StoreDashboard summarizes one store. Sales figures respect the period.
type StoreDashboard struct {
	TotalModels    int64
	TotalProducts  int64
	TotalCustomers int64
	TotalSales     int64
	SalesValue     decimal.Decimal
	InStock        []*entity.DeviceModelStock
	OutOfStock     []*entity.DeviceModel
	TopModels      []*TopModel
}

// DashboardUsecase aggregates a store's figures.
type DashboardUsecase interface {
	// StoreDashboard computes the summary; a nil period means all time.
	StoreDashboard(ctx context.Context, tenantID uuid.UUID, period *entity.Period) (*StoreDashboard, error)
}
