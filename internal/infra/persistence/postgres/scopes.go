package postgres

import (
	"cellcontrol/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// newID returns a time-ordered UUIDv7, falling back to a random v4.
func newID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return id
}

// paginate applies a limit/offset window. A zero limit leaves the query unbounded.
func paginate(page repository.Page) func(db *gorm.DB) *gorm.DB {
	page = page.Normalize()

	return func(db *gorm.DB) *gorm.DB {
		if page.Offset > 0 {
			db = db.Offset(page.Offset)
		}
		if page.Limit > 0 {
			db = db.Limit(page.Limit)
		}

		return db
	}
}

// scopedTo restricts a query to one tenant's rows of table.
func scopedTo(table string, tenantID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(table+".tenant_id = ?", tenantID)
	}
}
