package usecase

import (
	"context"

	"cellcontrol/internal/domain/entity"
	"cellcontrol/internal/domain/repository"

	"github.com/google/uuid"
)

// ModelInput carries a device model's editable fields.
type ModelInput struct {
	Name string
}

// ModelUsecase manages a store's device models.
type ModelUsecase interface {
	List(ctx context.Context, tenantID uuid.UUID, page repository.Page) ([]*entity.DeviceModelStock, error)
	Get(ctx context.Context, tenantID, id uuid.UUID) (*entity.DeviceModelStock, error)
	Create(ctx context.Context, tenantID uuid.UUID, input *ModelInput) (*entity.DeviceModel, error)
	Update(ctx context.Context, tenantID, id uuid.UUID, input *ModelInput) (*entity.DeviceModel, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// CreateProductInput is a new stock item. Price is raw user input ("4.500,00" or "4500.00").
type CreateProductInput struct {
	ModelID        uuid.UUID
	Color          string
	Storage        string
	BatteryPercent *int
	IMEI           *string
	Price          string
}

// UpdateProductInput changes only the fields that are set.
type UpdateProductInput struct {
	ModelID        *uuid.UUID
	Color          *string
	Storage        *string
	BatteryPercent *int
	// ClearBattery removes a recorded battery reading. It excludes BatteryPercent.
	ClearBattery bool
	IMEI         *string
	Price        *string
}

// ProductUsecase manages a store's stock items.
type ProductUsecase interface {
	List(ctx context.Context, tenantID uuid.UUID, filter repository.ProductFilter) ([]*entity.Product, error)
	Get(ctx context.Context, tenantID, id uuid.UUID) (*entity.Product, error)
	Create(ctx context.Context, tenantID uuid.UUID, input *CreateProductInput) (*entity.Product, error)
	Update(ctx context.Context, tenantID, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// CreateCustomerInput is a new customer. CPF and WhatsApp may carry any mask.
type CreateCustomerInput struct {
	Name     string
	CPF      string
	WhatsApp string
	Email    *string
	Phone    *string
	Address  *string
}

// UpdateCustomerInput changes only the fields that are set.
type UpdateCustomerInput struct {
	Name     *string
	CPF      *string
	WhatsApp *string
	Email    *string
	Phone    *string
	Address  *string
}

// CustomerUsecase manages a store's customers.
type CustomerUsecase interface {
	List(ctx context.Context, tenantID uuid.UUID, filter repository.CustomerFilter) ([]*entity.Customer, error)
	Get(ctx context.Context, tenantID, id uuid.UUID) (*entity.Customer, error)
	Create(ctx context.Context, tenantID uuid.UUID, input *CreateCustomerInput) (*entity.Customer, error)
	Update(ctx context.Context, tenantID, id uuid.UUID, input *UpdateCustomerInput) (*entity.Customer, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}
