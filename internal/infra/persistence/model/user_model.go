package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. TenantID is null for super admins.
type UserModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	Name         string     `gorm:"type:varchar(150);not null"`
	Role         string     `gorm:"type:varchar(20);not null;index"`
	TenantID     *uuid.UUID `gorm:"type:uuid;index"`
	Active       bool       `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Tenant *TenantModel `gorm:"foreignKey:TenantID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
