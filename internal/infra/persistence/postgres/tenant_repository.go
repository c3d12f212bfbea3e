package postgres

import (
	"context"
	"time"

	"cellcontrol/internal/domain/entity"
	domainerrors "cellcontrol/internal/domain/errors"
	"cellcontrol/internal/domain/repository"
	"cellcontrol/internal/errors"
	"cellcontrol/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// tenantRepository implements the repository.TenantRepository interface.
type tenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository is the constructor for tenantRepository.
func NewTenantRepository(db *gorm.DB) repository.TenantRepository {
	return &tenantRepository{db: db}
}

// Create persists a new tenant.
func (repo *tenantRepository) Create(ctx context.Context, tenant *entity.Tenant) error {
	if tenant.ID == uuid.Nil {
		tenant.ID = newID()
	}
	tenantM := fromTenantDomain(tenant)

	if err := repo.db.WithContext(ctx).Create(tenantM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSlug
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create tenant")
	}

	tenant.CreatedAt = tenantM.CreatedAt
	tenant.UpdatedAt = tenantM.UpdatedAt

	return nil
}

// FindByID retrieves a tenant by id from the primary.
func (repo *tenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tenant, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindBySlug retrieves a tenant by slug from the primary.
func (repo *tenantRepository) FindBySlug(ctx context.Context, slug string) (*entity.Tenant, error) {
	return repo.findOne(ctx, "slug = ?", slug)
}

func (repo *tenantRepository) findOne(ctx context.Context, query string, arg any) (*entity.Tenant, error) {
	var tenantM model.TenantModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where(query, arg).
		First(&tenantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTenantNotFound
		}

		return nil, errors.Wrap(err, "failed to find tenant")
	}

	return toTenantDomain(&tenantM), nil
}

// List returns every tenant ordered by name.
func (repo *tenantRepository) List(ctx context.Context) ([]*entity.Tenant, error) {
	var tenantModels []*model.TenantModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&tenantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tenants")
	}

	tenants := make([]*entity.Tenant, 0, len(tenantModels))
	for _, tenantM := range tenantModels {
		tenants = append(tenants, toTenantDomain(tenantM))
	}

	return tenants, nil
}

// Update persists the mutable tenant fields.
func (repo *tenantRepository) Update(ctx context.Context, tenant *entity.Tenant) error {
	tenant.UpdatedAt = time.Now().UTC()
	result := repo.db.WithContext(ctx).
		Model(&model.TenantModel{}).
		Where("id = ?", tenant.ID).
		Select("name", "logo_url", "active", "updated_at").
		Updates(fromTenantDomain(tenant))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update tenant")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTenantNotFound
	}

	return nil
}

// Stats aggregates the store-level counters of one tenant.
func (repo *tenantRepository) Stats(ctx context.Context, tenantID uuid.UUID) (*entity.TenantStats, error) {
	stats := &entity.TenantStats{}
	db := repo.db.WithContext(ctx)

	var err error
	if stats.TotalModels, err = NewDeviceModelRepository(db).Count(ctx, tenantID); err != nil {
		return nil, err
	}
	if stats.TotalProducts, err = NewProductRepository(db).CountAvailable(ctx, tenantID); err != nil {
		return nil, err
	}
	if stats.TotalCustomers, err = NewCustomerRepository(db).Count(ctx, tenantID); err != nil {
		return nil, err
	}

	totals, err := NewSaleRepository(db).Totals(ctx, tenantID, nil)
	if err != nil {
		return nil, err
	}
	stats.TotalSales = totals.Count
	stats.TotalSalesValue = totals.Value

	return stats, nil
}

// --- Mapper Functions ---

func toTenantDomain(data *model.TenantModel) *entity.Tenant {
	if data == nil {
		return nil
	}

	return &entity.Tenant{
		ID:        data.ID,
		Slug:      data.Slug,
		Name:      data.Name,
		LogoURL:   data.LogoURL,
		Active:    data.Active,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromTenantDomain(data *entity.Tenant) *model.TenantModel {
	if data == nil {
		return nil
	}

	return &model.TenantModel{
		ID:        data.ID,
		Slug:      data.Slug,
		Name:      data.Name,
		LogoURL:   data.LogoURL,
		Active:    data.Active,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
