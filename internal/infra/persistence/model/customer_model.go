package model

import (
	"time"

	"github.com/google/uuid"
)

// CustomerModel mirrors the 'customers' table. CPF and WhatsApp hold digits only.
type CustomerModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(150);not null"`
	CPF       string    `gorm:"column:cpf;type:varchar(11);not null"`
	WhatsApp  string    `gorm:"column:whatsapp;type:varchar(11);not null"`
	Email     *string   `gorm:"type:varchar(255)"`
	Phone     *string   `gorm:"type:varchar(20)"`
	Address   *string   `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Tenant *TenantModel `gorm:"foreignKey:TenantID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
