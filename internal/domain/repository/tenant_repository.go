package repository

import (
	"context"

	"cellcontrol/internal/domain/entity"

	"github.com/google/uuid"
)

// TenantRepository persists stores. Tenants are never hard-deleted.
type TenantRepository interface {
	// Create persists a new tenant. Returns ErrDuplicateSlug when the slug is taken.
	Create(ctx context.Context, tenant *entity.Tenant) error

	// FindByID reads from the primary so activation changes are seen immediately.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tenant, error)

	// FindBySlug reads from the primary so activation changes are seen immediately.
	FindBySlug(ctx context.Context, slug string) (*entity.Tenant, error)

	// List returns every tenant ordered by name.
	List(ctx context.Context) ([]*entity.Tenant, error)

	// Update persists name, logo and active flag. The slug is immutable.
	Update(ctx context.Context, tenant *entity.Tenant) error

	// Stats aggregates the store-level counters of one tenant.
	Stats(ctx context.Context, tenantID uuid.UUID) (*entity.TenantStats, error)
}
