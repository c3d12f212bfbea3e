package repository

import (
	"context"

	"cellcontrol/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceModelRepository persists a tenant's catalog of device models.
// Every method takes the owning tenant id; ids from other tenants behave as missing.
type DeviceModelRepository interface {
	// List returns the tenant's models ordered by name, each with its unsold product count.
	List(ctx context.Context, tenantID uuid.UUID, page Page) ([]*entity.DeviceModelStock, error)

	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.DeviceModel, error)

	// FindByName matches case-insensitively. Used by the bulk importer.
	FindByName(ctx context.Context, tenantID uuid.UUID, name string) (*entity.DeviceModel, error)

	Create(ctx context.Context, tenantID uuid.UUID, m *entity.DeviceModel) error

	Update(ctx context.Context, tenantID uuid.UUID, m *entity.DeviceModel) error

	// Delete returns ErrModelInUse when products still reference the model.
	Delete(ctx context.Context, tenantID, id uuid.UUID) error

	Count(ctx context.Context, tenantID uuid.UUID) (int64, error)
}

// ProductFilter narrows a product listing.
type ProductFilter struct {
	ModelID *uuid.UUID
	Sold    *bool
	Page    Page
}

// ProductRepository persists stock items.
type ProductRepository interface {
	// List returns products newest first, with ModelName filled.
	List(ctx context.Context, tenantID uuid.UUID, filter ProductFilter) ([]*entity.Product, error)

	// FindByID returns the product with ModelName filled.
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.Product, error)

	// Create returns ErrModelNotFound when the model is not part of the tenant.
	Create(ctx context.Context, tenantID uuid.UUID, p *entity.Product) error

	// Update persists the descriptive fields. The sold flag only moves through MarkSold and Restore.
	Update(ctx context.Context, tenantID uuid.UUID, p *entity.Product) error

	Delete(ctx context.Context, tenantID, id uuid.UUID) error

	// MarkSold flips an available product to sold and links it to saleID.
	// Returns ErrProductUnavailable when the product was already sold.
	MarkSold(ctx context.Context, tenantID, productID, saleID uuid.UUID) error

	// Restore returns every product sold through saleID to stock. Missing rows are skipped.
	Restore(ctx context.Context, tenantID, saleID uuid.UUID, productIDs []uuid.UUID) (int64, error)

	// CountAvailable counts unsold products.
	CountAvailable(ctx context.Context, tenantID uuid.UUID) (int64, error)
}

// CustomerFilter narrows a customer listing. Query matches name or CPF substrings.
type CustomerFilter struct {
	Query string
	Page  Page
}

// CustomerRepository persists a tenant's customers.
type CustomerRepository interface {
	List(ctx context.Context, tenantID uuid.UUID, filter CustomerFilter) ([]*entity.Customer, error)

	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.Customer, error)

	Create(ctx context.Context, tenantID uuid.UUID, c *entity.Customer) error

	Update(ctx context.Context, tenantID uuid.UUID, c *entity.Customer) error

	// Delete returns ErrCustomerInUse when sales still reference the customer.
	Delete(ctx context.Context, tenantID, id uuid.UUID) error

	Count(ctx context.Context, tenantID uuid.UUID) (int64, error)
}
