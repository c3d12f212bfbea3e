package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is the identity carried by a verified token. Tenant data is
// denormalized at issuance; staleness is bounded by ExpiresAt.
type Session struct {
	UserID    uuid.UUID
	Role      Role
	TenantID  *uuid.UUID
	Email     string
	Name      string
	ExpiresAt time.Time
}

// IsSuperAdmin reports whether the session belongs to a super admin.
func (s *Session) IsSuperAdmin() bool {
	return s != nil && s.Role == RoleSuperAdmin
}

// IsTenantAdminOf reports whether the session is a tenant admin bound to tenantID.
func (s *Session) IsTenantAdminOf(tenantID uuid.UUID) bool {
	return s != nil && s.Role == RoleTenantAdmin && s.TenantID != nil && *s.TenantID == tenantID
}
