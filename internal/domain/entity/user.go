package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an operator account. SuperAdmins have no TenantID; TenantAdmins always have one.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         string
	Role         Role
	TenantID     *uuid.UUID
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BelongsTo reports whether the user is bound to the given tenant.
func (u *User) BelongsTo(tenantID uuid.UUID) bool {
	return u.TenantID != nil && *u.TenantID == tenantID
}
