// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import "cellcontrol/internal/errors"

// Domain-specific persistence errors. The usecase layer maps them to AppErrors.
var (
	ErrTenantNotFound     = errors.New("tenant not found")
	ErrDuplicateSlug      = errors.New("tenant slug already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateEmail     = errors.New("user email already exists")
	ErrModelNotFound      = errors.New("model not found")
	ErrModelInUse         = errors.New("model has products")
	ErrProductNotFound    = errors.New("product not found")
	ErrProductUnavailable = errors.New("product already sold")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrCustomerInUse      = errors.New("customer has sales")
	ErrSaleNotFound       = errors.New("sale not found")
)

// MaxPageSize caps Page.Limit.
const MaxPageSize = 500

// Page is an optional limit/offset window. A zero Limit means unlimited.
type Page struct {
	Limit  int
	Offset int
}

// Normalize clamps the window to sane bounds.
func (p Page) Normalize() Page {
	if p.Limit < 0 {
		p.Limit = 0
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	if p.Offset < 0 {
		p.Offset = 0
	}

	return p
}
