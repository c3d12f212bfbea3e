package usecase

import (
	"context"

	"cellcontrol/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateTenantInput provisions a store. Slug defaults to the name.
type CreateTenantInput struct {
	Name    string
	Slug    string
	LogoURL *string
}

// UpdateTenantInput changes only the fields that are set. The slug is immutable.
type UpdateTenantInput struct {
	Name    *string
	Active  *bool
	LogoURL *string
}

// TenantWithStats is a store together with its counters.
type TenantWithStats struct {
	Tenant *entity.Tenant
	Stats  *entity.TenantStats
}

// StoreQRCode is a PNG pointing at the store login page.
type StoreQRCode struct {
	PNG      []byte
	LoginURL string
}

// CreateUserInput provisions an operator account.
type CreateUserInput struct {
	Email    string
	Name     string
	Password string
	Role     entity.Role
	TenantID *uuid.UUID
}

// UpdateUserInput changes only the fields that are set.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
	Active   *bool
}

// UserWithTenant is a user together with the name of its store.
type UserWithTenant struct {
	User       *entity.User
	TenantName *string
	TenantSlug *string
}

// AdminDashboard is the platform-wide summary.
type AdminDashboard struct {
	TotalTenants    int64
	ActiveTenants   int64
	TotalUsers      int64
	TotalSales      int64
	TotalSalesValue decimal.Decimal
	Tenants         []*TenantWithStats
}

// AdminUsecase is the super admin console.
type AdminUsecase interface {
	Dashboard(ctx context.Context) (*AdminDashboard, error)

	ListTenants(ctx context.Context) ([]*TenantWithStats, error)
	GetTenant(ctx context.Context, id uuid.UUID) (*TenantWithStats, error)
	CreateTenant(ctx context.Context, input *CreateTenantInput) (*entity.Tenant, error)
	UpdateTenant(ctx context.Context, id uuid.UUID, input *UpdateTenantInput) (*entity.Tenant, error)
	TenantQRCode(ctx context.Context, id uuid.UUID) (*StoreQRCode, error)

	ListUsers(ctx context.Context) ([]*UserWithTenant, error)
	CreateUser(ctx context.Context, input *CreateUserInput) (*UserWithTenant, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*UserWithTenant, error)
	// DeleteUser removes an account. actor cannot delete itself.
	DeleteUser(ctx context.Context, actor *entity.Session, id uuid.UUID) error
}
