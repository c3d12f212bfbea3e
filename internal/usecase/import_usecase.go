package usecase

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// ImportKind selects what a bulk file contains.
type ImportKind string

const (
	ImportAuto      ImportKind = "auto"
	ImportModels    ImportKind = "models"
	ImportProducts  ImportKind = "products"
	ImportCustomers ImportKind = "customers"
)

// ImportFormat is the file encoding.
type ImportFormat string

const (
	FormatCSV  ImportFormat = "csv"
	FormatJSON ImportFormat = "json"
)

// ImportInput is one uploaded file.
type ImportInput struct {
	TenantID uuid.UUID
	Kind     ImportKind
	Format   ImportFormat // empty means detect from content
	File     io.Reader
}

// ImportDetails counts created records per kind.
type ImportDetails struct {
	Models       int
	Products     int
	Customers    int
	SkippedCount int
}

// ImportResult reports per-row outcomes. Bad rows never abort the file.
type ImportResult struct {
	Success      bool
	Kind         ImportKind
	TotalRecords int
	Imported     int
	Errors       []string
	Details      ImportDetails
}

// ImportUsecase loads catalog data in bulk.
type ImportUsecase interface {
	Import(ctx context.Context, input *ImportInput) (*ImportResult, error)
}
