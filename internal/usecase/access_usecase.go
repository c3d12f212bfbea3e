package usecase

import (
	"context"

	"cellcontrol/internal/domain/entity"
)

// StoreInfo is the public view of a store used by the login page.
type StoreInfo struct {
	Exists  bool
	Name    string
	Slug    string
	LogoURL *string
}

// AccessUsecase resolves tenants and applies the access policy.
type AccessUsecase interface {
	// Resolve finds a tenant by slug or id. An inactive tenant is reported as
	// inactive only to its own admin; everyone else gets not found.
	Resolve(ctx context.Context, ref entity.TenantRef, viewer *entity.Session) (*entity.Tenant, error)

	// VerifyStore is the anonymous store lookup.
	VerifyStore(ctx context.Context, slug string) (*StoreInfo, error)

	// AuthorizeStore returns the tenant a session may operate under slug.
	AuthorizeStore(ctx context.Context, session *entity.Session, slug string) (*entity.Tenant, error)

	// AuthorizeAdmin allows super admins only.
	AuthorizeAdmin(ctx context.Context, session *entity.Session) error
}
