package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a store's buyer. CPF and WhatsApp are stored as digits only.
type Customer struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	Name      string
	CPF       string
	WhatsApp  string
	Email     *string
	Phone     *string
	Address   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
