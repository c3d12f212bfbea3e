package usecase

import (
	"context"

	"cellcontrol/internal/domain/entity"
	"cellcontrol/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateSaleInput selects products, in order, for one customer.
type CreateSaleInput struct {
	CustomerID    uuid.UUID
	ProductIDs    []uuid.UUID
	PaymentMethod entity.PaymentMethod
	Note          *string
}

// UpdateSaleInput edits the mutable sale fields. At least one must be set.
type UpdateSaleInput struct {
	PaymentMethod *entity.PaymentMethod
	Note          *string
}

// SaleUsecase records and reverts point-of-sale transactions.
type SaleUsecase interface {
	List(ctx context.Context, tenantID uuid.UUID, filter repository.SaleFilter) ([]*entity.Sale, error)
	Get(ctx context.Context, tenantID, id uuid.UUID) (*entity.Sale, error)

	// Create converts the selected products into a sale atomically.
	Create(ctx context.Context, tenant *entity.Tenant, input *CreateSaleInput) (*entity.Sale, error)

	Update(ctx context.Context, tenantID, id uuid.UUID, input *UpdateSaleInput) (*entity.Sale, error)

	// Delete removes the sale and returns its products to stock atomically.
	Delete(ctx context.Context, tenant *entity.Tenant, id uuid.UUID) error
}
