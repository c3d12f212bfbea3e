// Package policy decides whether a session may reach an operation.
package policy

import (
	"cellcontrol/internal/domain/entity"
	domainerrors "cellcontrol/internal/domain/errors"
)

// Scope classifies the operation being requested.
type Scope int

const (
	// ScopePublic needs no session (store verify, login).
	ScopePublic Scope = iota
	// ScopeAuthenticated needs any valid session (auth/me).
	ScopeAuthenticated
	// ScopeAdmin is the provisioning console.
	ScopeAdmin
	// ScopeStore is everything under /tenants/{slug}.
	ScopeStore
)

// StorePath is where a tenant admin is sent when they address a foreign store.
func StorePath(slug string) string {
	return "/tenants/" + slug
}

// Decide applies the access rules in order. For ScopeStore, own is the
// tenant bound to the session (resolved from the token's tenant id, never
// from targetSlug), so a foreign store is rejected without looking it up.
func Decide(session *entity.Session, scope Scope, targetSlug string, own *entity.Tenant) error {
	if scope == ScopePublic {
		return nil
	}
	if session == nil {
		return domainerrors.ErrUnauthorized
	}

	switch scope {
	case ScopeAuthenticated:
		return nil
	case ScopeAdmin:
		if session.IsSuperAdmin() {
			return nil
		}

		return domainerrors.ErrForbidden
	case ScopeStore:
		return decideStore(session, targetSlug, own)
	default:
		return domainerrors.ErrForbidden
	}
}

func decideStore(session *entity.Session, targetSlug string, own *entity.Tenant) error {
	if session.Role != entity.RoleTenantAdmin || session.TenantID == nil || own == nil || own.ID != *session.TenantID {
		return domainerrors.ErrForbidden
	}
	if own.Slug != targetSlug {
		return domainerrors.ErrWrongTenant.WithRedirect(StorePath(own.Slug))
	}
	if !own.Active {
		return domainerrors.ErrTenantInactive
	}

	return nil
}
